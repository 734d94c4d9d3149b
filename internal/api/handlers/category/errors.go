package category

import (
	"encoding/json"
	"log"
	"net/http"
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
