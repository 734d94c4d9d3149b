package reply

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Agora/internal/core/replies"
)

// ListHandler handles reply retrieval for topics
type ListHandler struct {
	service replies.Service
}

// NewListHandler creates a new handler for fetching a topic's replies
func NewListHandler(service replies.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleListByTopic returns a topic's replies in creation order.
// Unknown topics return an empty array, never an error.
// GET /api/topics/{topicID}/replies
func (h *ListHandler) HandleListByTopic(w http.ResponseWriter, r *http.Request) {
	topicID := chi.URLParam(r, "topicID")
	if topicID == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "topicID is required")
		return
	}

	got, err := h.service.ListByTopic(r.Context(), topicID)
	if err != nil {
		log.Printf("Failed to list replies for topic %s: %v", topicID, err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
		return
	}

	if got == nil {
		got = []*replies.Reply{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(got); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
