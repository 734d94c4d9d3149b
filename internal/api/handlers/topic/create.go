// Package topic provides HTTP handlers for the forum topic API.
package topic

import (
	"encoding/json"
	"log"
	"net/http"

	"Agora/internal/core/topics"
)

// CreateHandler handles topic creation requests
type CreateHandler struct {
	service topics.Service
}

// NewCreateHandler creates a new handler for creating topics
func NewCreateHandler(service topics.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate creates a new topic. The author is the authenticated caller
// from the request context, never a body field.
// POST /api/topics
//
// Request body: { "categoryId": "...", "title": "...", "content": "..." }
// Response: { "id": "..." }
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req topics.CreateTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	resp, err := h.service.CreateTopic(r.Context(), req)
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
