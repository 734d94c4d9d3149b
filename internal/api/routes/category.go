package routes

import (
	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers/category"
	"Agora/internal/core/categories"
)

// RegisterCategoryRoutes registers category endpoints on the router.
// Categories are read-only for callers; they are seeded at startup.
func RegisterCategoryRoutes(r chi.Router, service categories.Service) {
	listHandler := category.NewListHandler(service)

	r.Get("/api/categories", listHandler.HandleList)
}
