package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"p9e.in/crewcall/config"
	"p9e.in/crewcall/middleware"
	"p9e.in/crewcall/models"
)

type availabilityRequestReq struct {
	UserIDs []uuid.UUID `json:"userIds"`
	EventID *uuid.UUID  `json:"eventId,omitempty"`
	Message string      `json:"message,omitempty"`
}

// RequestAvailability asks a set of vendors for their availability.
func RequestAvailability(w http.ResponseWriter, r *http.Request) {
	var req availabilityRequestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(req.UserIDs) == 0 {
		respondError(w, http.StatusBadRequest, "userIds is required")
		return
	}

	user := middleware.GetUser(r)
	requests := make([]models.AvailabilityRequest, 0, len(req.UserIDs))
	for _, id := range req.UserIDs {
		if id == uuid.Nil {
			continue
		}
		requests = append(requests, models.AvailabilityRequest{
			UserID:      id,
			EventID:     req.EventID,
			RequestedBy: user.ID,
			Message:     req.Message,
		})
	}
	if err := config.DB.Create(&requests).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{"requested": len(requests)})
}

type availabilityResponseReq struct {
	RequestID *uuid.UUID  `json:"requestId,omitempty"`
	StartDate models.Date `json:"startDate"`
	EndDate   models.Date `json:"endDate"`
	Note      string      `json:"note,omitempty"`
}

// SubmitAvailability records the vendor's own declaration of the date range
// they are open to work.
func SubmitAvailability(w http.ResponseWriter, r *http.Request) {
	var req availabilityResponseReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		respondError(w, http.StatusBadRequest, "startDate and endDate are required")
		return
	}
	if req.EndDate.Before(req.StartDate) {
		respondError(w, http.StatusBadRequest, "endDate must not precede startDate")
		return
	}

	user := middleware.GetUser(r)
	resp := models.AvailabilityResponse{
		UserID:      user.ID,
		RequestID:   req.RequestID,
		RespondedAt: time.Now(),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Note:        req.Note,
	}
	if err := config.DB.Create(&resp).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

type availabilityStatusRow struct {
	UserID uuid.UUID                    `json:"userId"`
	State  string                       `json:"state"`
	Latest *models.AvailabilityResponse `json:"latest,omitempty"`
}

// GetAvailabilityStatus reports, for each requested vendor, whether their
// latest response is still active today. The staleness rule lives in
// AvailabilityResponse.ActiveOn; this handler never re-implements it.
func GetAvailabilityStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserIDs []uuid.UUID `json:"userIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.UserIDs) == 0 {
		respondError(w, http.StatusBadRequest, "userIds is required")
		return
	}

	today := models.Today()
	rows := make([]availabilityStatusRow, 0, len(req.UserIDs))
	for _, id := range req.UserIDs {
		latest := latestAvailability(id)
		row := availabilityStatusRow{
			UserID: id,
			State:  models.AvailabilityStateOn(latest, today),
		}
		if row.State == models.AvailabilityResponded {
			row.Latest = latest
		}
		rows = append(rows, row)
	}
	respondJSON(w, http.StatusOK, rows)
}

// GetMyAvailability lists the authenticated vendor's own responses.
func GetMyAvailability(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	var responses []models.AvailabilityResponse
	if err := config.DB.
		Where("user_id = ?", user.ID).
		Order("responded_at DESC").
		Find(&responses).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, responses)
}
