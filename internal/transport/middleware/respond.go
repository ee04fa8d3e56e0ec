package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the API's failure envelope. Middleware rejects requests
// before any handler runs, so it cannot use the rest package's helpers.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{Success: false, Message: message})
}
