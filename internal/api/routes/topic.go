package routes

import (
	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers/topic"
	"Agora/internal/api/middleware"
	"Agora/internal/core/topics"
)

// RegisterTopicRoutes registers forum topic endpoints on the router.
// Topic creation requires an authenticated caller; reads are open.
func RegisterTopicRoutes(r chi.Router, service topics.Service, auth *middleware.AuthMiddleware) {
	createHandler := topic.NewCreateHandler(service)
	listHandler := topic.NewListHandler(service)

	r.Get("/api/categories/{categoryID}/topics", listHandler.HandleListByCategory)
	r.With(auth.RequireAuth).Post("/api/topics", createHandler.HandleCreate)
}
