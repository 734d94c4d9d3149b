// Package reply provides HTTP handlers for the forum reply API.
package reply

import (
	"encoding/json"
	"log"
	"net/http"

	"Agora/internal/core/replies"
)

// CreateHandler handles reply creation requests
type CreateHandler struct {
	service replies.Service
}

// NewCreateHandler creates a new handler for creating replies
func NewCreateHandler(service replies.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate creates a new reply within a topic. The author is the
// authenticated caller from the request context, never a body field.
// POST /api/replies
//
// Request body: { "topicId": "...", "content": "..." }
// Response: { "id": "..." }
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req replies.CreateReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	resp, err := h.service.CreateReply(r.Context(), req)
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
