// Package category provides HTTP handlers for the category read API.
package category

import (
	"encoding/json"
	"log"
	"net/http"

	"Agora/internal/core/categories"
)

// ListHandler handles category listing requests
type ListHandler struct {
	service categories.Service
}

// NewListHandler creates a new handler for listing categories
func NewListHandler(service categories.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList returns all categories in insertion order
// GET /api/categories
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	got, err := h.service.ListCategories(r.Context())
	if err != nil {
		log.Printf("Failed to list categories: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
		return
	}

	if got == nil {
		got = []*categories.Category{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(got); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
