package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"p9e.in/crewcall/handlers"
	"p9e.in/crewcall/middleware"
	"p9e.in/crewcall/models"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/register", handlers.Register).Methods("POST")
	r.HandleFunc("/login", handlers.Login).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/profile", handlers.Profile).Methods("GET")
	api.HandleFunc("/change-password", handlers.ChangePassword).Methods("POST")

	registerVendorRoutes(api)
	registerRegionRoutes(api)
	registerEventRoutes(api)
	registerTimeclockRoutes(api)
	registerAvailabilityRoutes(api)
	registerAttestationRoutes(api)

	// =====================================================
	// Admin Routes
	// =====================================================
	admin := api.PathPrefix("/admin").Subrouter()
	registerAdminRoutes(admin)

	// =====================================================
	// Partner API (read-only with API key)
	// =====================================================
	partner := r.PathPrefix("/api/v1/partner").Subrouter()
	partner.Use(middleware.PartnerKeyMiddleware)
	registerPartnerRoutes(partner)

	return r
}

func registerVendorRoutes(api *mux.Router) {
	staff := []string{models.RoleAdmin, models.RoleManager}

	api.Handle("/vendors", middleware.RequireRole(staff,
		http.HandlerFunc(handlers.GetAllVendors))).Methods("GET")
	api.Handle("/vendors/{id}", middleware.RequireRole(staff,
		http.HandlerFunc(handlers.GetVendor))).Methods("GET")
}

func registerRegionRoutes(api *mux.Router) {
	api.HandleFunc("/regions", handlers.GetAllRegions).Methods("GET")
	api.HandleFunc("/regions/resolve", handlers.ResolveRegion).Methods("GET")
	api.HandleFunc("/regions/{id}", handlers.GetRegion).Methods("GET")

	// Region management is admin-only.
	api.Handle("/regions", middleware.RequireAdmin(
		http.HandlerFunc(handlers.CreateRegion))).Methods("POST")
	api.Handle("/regions/{id}", middleware.RequireAdmin(
		http.HandlerFunc(handlers.UpdateRegion))).Methods("PUT")
	api.Handle("/regions/{id}", middleware.RequireAdmin(
		http.HandlerFunc(handlers.DeleteRegion))).Methods("DELETE")
}

func registerEventRoutes(api *mux.Router) {
	api.HandleFunc("/events", handlers.GetAllEvents).Methods("GET")
	api.HandleFunc("/events/{id}", handlers.GetEvent).Methods("GET")
	api.Handle("/events", middleware.RequireStaff(
		http.HandlerFunc(handlers.CreateEvent))).Methods("POST")
	api.Handle("/events/{id}", middleware.RequireStaff(
		http.HandlerFunc(handlers.UpdateEvent))).Methods("PUT")
	api.Handle("/events/{id}", middleware.RequireStaff(
		http.HandlerFunc(handlers.DeleteEvent))).Methods("DELETE")

	// Team assembly
	api.HandleFunc("/events/{id}/team", handlers.GetEventTeam).Methods("GET")
	api.Handle("/events/{id}/team", middleware.RequireStaff(
		http.HandlerFunc(handlers.InviteTeamMember))).Methods("POST")
	api.Handle("/events/{id}/team/batch", middleware.RequireStaff(
		http.HandlerFunc(handlers.BatchInviteTeamMembers))).Methods("POST")
	api.HandleFunc("/team/{id}/respond", handlers.RespondTeamInvite).Methods("POST")
	api.Handle("/team/{id}", middleware.RequireStaff(
		http.HandlerFunc(handlers.RemoveTeamMember))).Methods("DELETE")
}

func registerTimeclockRoutes(api *mux.Router) {
	api.HandleFunc("/timeclock/punch", handlers.PunchClock).Methods("POST")
	api.HandleFunc("/events/{id}/timeclock", handlers.GetTimeEntries).Methods("GET")
	api.HandleFunc("/events/{id}/timesheet", handlers.GetTimesheet).Methods("GET")
}

func registerAvailabilityRoutes(api *mux.Router) {
	api.Handle("/availability/request", middleware.RequireStaff(
		http.HandlerFunc(handlers.RequestAvailability))).Methods("POST")
	api.Handle("/availability/status", middleware.RequireStaff(
		http.HandlerFunc(handlers.GetAvailabilityStatus))).Methods("POST")
	api.HandleFunc("/availability/respond", handlers.SubmitAvailability).Methods("POST")
	api.HandleFunc("/availability/mine", handlers.GetMyAvailability).Methods("GET")
}

func registerAttestationRoutes(api *mux.Router) {
	api.HandleFunc("/attestations", handlers.CreateAttestation).Methods("POST")
	api.HandleFunc("/attestations/{id}", handlers.GetAttestation).Methods("GET")
	api.HandleFunc("/attestations/{id}/export", handlers.ExportAttestation).Methods("GET")
	api.HandleFunc("/events/{id}/attestations", handlers.GetEventAttestations).Methods("GET")
	api.HandleFunc("/events/{id}/attestations/export", handlers.ExportEventAttestations).Methods("GET")
	api.HandleFunc("/signatures/upload", handlers.UploadSignature).Methods("POST")
}

// registerAdminRoutes registers admin-only routes
func registerAdminRoutes(admin *mux.Router) {
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/users", handlers.GetAllUsers).Methods("GET")
	admin.HandleFunc("/users", handlers.Register).Methods("POST")
	admin.HandleFunc("/users/{id}", handlers.GetUserByID).Methods("GET")
	admin.HandleFunc("/users/{id}", handlers.UpdateUser).Methods("PUT")
	admin.HandleFunc("/users/{id}", handlers.DeleteUser).Methods("DELETE")

	admin.HandleFunc("/manager-links", handlers.CreateManagerLink).Methods("POST")
	admin.HandleFunc("/manager-links/{id}", handlers.DeleteManagerLink).Methods("DELETE")
}

// registerPartnerRoutes registers partner API routes (read-only exports)
func registerPartnerRoutes(partner *mux.Router) {
	partner.HandleFunc("/regions", handlers.GetAllRegions).Methods("GET")
	partner.HandleFunc("/events/{id}/attestations/export", handlers.ExportEventAttestations).Methods("GET")
}
