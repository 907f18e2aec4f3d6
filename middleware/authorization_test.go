package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"p9e.in/crewcall/models"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	claims := &Claims{UserID: "user-1", Role: role}
	return req.WithContext(context.WithValue(req.Context(), userClaimsKey, claims))
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		req        *http.Request
		wantStatus int
	}{
		{"role allowed", []string{models.RoleManager}, requestWithRole(models.RoleManager), http.StatusOK},
		{"role denied", []string{models.RoleAdmin}, requestWithRole(models.RoleVendor), http.StatusForbidden},
		{"super admin passes any gate", []string{models.RoleManager}, requestWithRole(models.RoleSuperAdmin), http.StatusOK},
		{"no claims", []string{models.RoleAdmin}, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireRole(tt.allowed, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, tt.req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, expected %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireStaff(t *testing.T) {
	for role, expected := range map[string]int{
		models.RoleAdmin:   http.StatusOK,
		models.RoleManager: http.StatusOK,
		models.RoleVendor:  http.StatusForbidden,
	} {
		handler := RequireStaff(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWithRole(role))
		if rec.Code != expected {
			t.Errorf("role %q: status = %d, expected %d", role, rec.Code, expected)
		}
	}
}
