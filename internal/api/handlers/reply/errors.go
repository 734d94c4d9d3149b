package reply

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Agora/internal/core/identity"
	"Agora/internal/core/replies"
)

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, status int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   errorType,
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identity.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
	case replies.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", err.Error())
	case replies.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidInput", err.Error())
	default:
		log.Printf("Reply handler error: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
