package routes

import (
	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers/listing"
	"Agora/internal/api/middleware"
	"Agora/internal/core/listings"
)

// RegisterListingRoutes registers classifieds listing endpoints on the
// router. Listing creation is open to anonymous callers; a caller identity
// is attached when present but not required.
func RegisterListingRoutes(r chi.Router, service listings.Service, auth *middleware.AuthMiddleware) {
	createHandler := listing.NewCreateHandler(service)
	listHandler := listing.NewListHandler(service)

	r.Get("/api/categories/{categoryID}/listings", listHandler.HandleListByCategory)
	r.With(auth.OptionalAuth).Post("/api/listings", createHandler.HandleCreate)
}
