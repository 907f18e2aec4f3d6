package middleware

import (
	"net/http"
	"slices"

	"p9e.in/crewcall/models"
)

// RequireRole wraps a handler and ensures the JWT's role is one of roles.
// Super admins pass every role gate.
func RequireRole(roles []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := GetRole(r)
		if role == "" {
			errorJSON(w, http.StatusUnauthorized, "missing credentials")
			return
		}
		if role == models.RoleSuperAdmin || slices.Contains(roles, role) {
			next.ServeHTTP(w, r)
			return
		}
		errorJSON(w, http.StatusForbidden, "forbidden")
	})
}

// RequireAdmin gates admin-only surfaces.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole([]string{models.RoleAdmin}, next)
}

// RequireStaff gates surfaces for anyone who runs events.
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole([]string{models.RoleAdmin, models.RoleManager}, next)
}
