// Package listing provides HTTP handlers for the classifieds listing API.
package listing

import (
	"encoding/json"
	"log"
	"net/http"

	"Agora/internal/core/listings"
)

// CreateHandler handles listing creation requests
type CreateHandler struct {
	service listings.Service
}

// NewCreateHandler creates a new handler for creating listings
func NewCreateHandler(service listings.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate creates a new listing
// POST /api/listings
//
// Request body: { "categoryId": "...", "title": "...", "description": "...", "price": 100.0 }
// Response: { "id": "..." }
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req listings.CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	resp, err := h.service.CreateListing(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
