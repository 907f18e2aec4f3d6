package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// respondJSON writes v with the given status.
func respondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// respondError writes the contract's failure body: {"error": "..."}.
func respondError(w http.ResponseWriter, code int, msg string) {
	respondJSON(w, code, map[string]string{"error": msg})
}

// respondSuccess acknowledges a mutation with no resource body.
func respondSuccess(w http.ResponseWriter) {
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// pathID pulls the {id} route variable.
func pathID(r *http.Request) string {
	return mux.Vars(r)["id"]
}
