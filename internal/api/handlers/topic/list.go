package topic

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Agora/internal/core/topics"
)

// ListHandler handles topic retrieval for categories
type ListHandler struct {
	service topics.Service
}

// NewListHandler creates a new handler for fetching a category's topics
func NewListHandler(service topics.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleListByCategory returns a category's topics in insertion order.
// Unknown categories return an empty array, never an error.
// GET /api/categories/{categoryID}/topics
func (h *ListHandler) HandleListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryID")
	if categoryID == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "categoryID is required")
		return
	}

	got, err := h.service.ListByCategory(r.Context(), categoryID)
	if err != nil {
		log.Printf("Failed to list topics for category %s: %v", categoryID, err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
		return
	}

	if got == nil {
		got = []*topics.Topic{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(got); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
