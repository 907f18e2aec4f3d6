package middleware

import (
	"log"
	"net/http"
	"os"
)

// PartnerKeyMiddleware guards the read-only partner surface with a static
// API key. Partners only ever read; any non-GET is refused outright.
func PartnerKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := os.Getenv("PARTNER_API_KEY")
		if key == "" || r.Header.Get("x-api-key") != key {
			log.Printf("[SECURITY] blocked partner request: invalid API key path=%s", r.URL.Path)
			errorJSON(w, http.StatusUnauthorized, "invalid or missing API key")
			return
		}
		if r.Method != http.MethodGet {
			errorJSON(w, http.StatusForbidden, "partner access is read-only")
			return
		}
		next.ServeHTTP(w, r)
	})
}
