package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"p9e.in/crewcall/config"
	"p9e.in/crewcall/middleware"
	"p9e.in/crewcall/models"
)

type attestationReq struct {
	EventID      uuid.UUID        `json:"eventId"`
	Date         models.Date      `json:"date"`
	SignatureURL string           `json:"signatureUrl"`
	Metadata     datatypes.JSON   `json:"metadata,omitempty"`
	CapturedAt   *models.JSONTime `json:"capturedAt,omitempty"`
}

// CreateAttestation records a worker's signature over their shift times.
// The form id ties the signature to the user/event/day punch slice.
func CreateAttestation(w http.ResponseWriter, r *http.Request) {
	var req attestationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.EventID == uuid.Nil || req.SignatureURL == "" {
		respondError(w, http.StatusBadRequest, "eventId and signatureUrl are required")
		return
	}

	var event models.Event
	if err := config.DB.First(&event, "id = ?", req.EventID).Error; err != nil {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}

	user := middleware.GetUser(r)
	day := req.Date
	if day.IsZero() {
		day = event.Date
	}
	capturedAt := models.JSONTime(time.Now())
	if req.CapturedAt != nil {
		capturedAt = *req.CapturedAt
	}

	sig := models.AttestationSignature{
		FormID:       models.AttestationFormID(user.ID, event.ID, day),
		UserID:       user.ID,
		EventID:      event.ID,
		SignatureURL: req.SignatureURL,
		Metadata:     req.Metadata,
		CapturedAt:   capturedAt,
	}
	if err := config.DB.Create(&sig).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, sig)
}

// GetEventAttestations lists the signatures captured for an event.
func GetEventAttestations(w http.ResponseWriter, r *http.Request) {
	var event models.Event
	if err := config.DB.First(&event, "id = ?", pathID(r)).Error; err != nil {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}
	user := middleware.GetUser(r)
	if !canViewEvent(user, &event) {
		respondError(w, http.StatusForbidden, "not allowed to view this event")
		return
	}

	var sigs []models.AttestationSignature
	if err := config.DB.Preload("User").
		Where("event_id = ?", event.ID).
		Order("created_at").
		Find(&sigs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, sigs)
}

// GetAttestation fetches one signature record for audit.
func GetAttestation(w http.ResponseWriter, r *http.Request) {
	var sig models.AttestationSignature
	if err := config.DB.Preload("User").First(&sig, "id = ?", pathID(r)).Error; err != nil {
		respondError(w, http.StatusNotFound, "attestation not found")
		return
	}
	var event models.Event
	if err := config.DB.First(&event, "id = ?", sig.EventID).Error; err != nil {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}
	user := middleware.GetUser(r)
	if sig.UserID != user.ID && !canViewEvent(user, &event) {
		respondError(w, http.StatusForbidden, "not allowed to view this attestation")
		return
	}
	respondJSON(w, http.StatusOK, sig)
}
