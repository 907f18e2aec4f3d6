package middleware

import (
	"encoding/json"
	"net/http"
)

// errorJSON writes the JSON error body every failed request carries:
// {"error": "..."}.
func errorJSON(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
