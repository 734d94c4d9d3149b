package routes

import (
	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers/reply"
	"Agora/internal/api/middleware"
	"Agora/internal/core/replies"
)

// RegisterReplyRoutes registers forum reply endpoints on the router.
// Reply creation requires an authenticated caller; reads are open.
func RegisterReplyRoutes(r chi.Router, service replies.Service, auth *middleware.AuthMiddleware) {
	createHandler := reply.NewCreateHandler(service)
	listHandler := reply.NewListHandler(service)

	r.Get("/api/topics/{topicID}/replies", listHandler.HandleListByTopic)
	r.With(auth.RequireAuth).Post("/api/replies", createHandler.HandleCreate)
}
