package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"p9e.in/crewcall/config"
	"p9e.in/crewcall/middleware"
	"p9e.in/crewcall/models"
	"p9e.in/crewcall/utils"
)

type punchReq struct {
	EventID   uuid.UUID        `json:"eventId"`
	Kind      string           `json:"kind"`
	PunchedAt *models.JSONTime `json:"punchedAt,omitempty"`
	Latitude  *float64         `json:"latitude,omitempty"`
	Longitude *float64         `json:"longitude,omitempty"`
}

// PunchClock appends one entry to the time log. The log is append-only;
// corrections happen by adding entries, never by editing.
func PunchClock(w http.ResponseWriter, r *http.Request) {
	var req punchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.EventID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "eventId is required")
		return
	}
	if !utils.IsPunchKind(req.Kind) {
		respondError(w, http.StatusBadRequest, "kind must be clock_in, clock_out, meal_start or meal_end")
		return
	}

	var event models.Event
	if err := config.DB.First(&event, "id = ?", req.EventID).Error; err != nil {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}

	user := middleware.GetUser(r)
	punchedAt := models.JSONTime(time.Now())
	if req.PunchedAt != nil {
		punchedAt = *req.PunchedAt
	}

	entry := models.TimeEntry{
		UserID:    user.ID,
		EventID:   req.EventID,
		Kind:      req.Kind,
		PunchedAt: punchedAt,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// timesheetSubject resolves whose sheet is being read: workers read their
// own; admins, the event creator and linked managers may read others'.
func timesheetSubject(r *http.Request, event *models.Event) (uuid.UUID, bool) {
	user := middleware.GetUser(r)
	raw := r.URL.Query().Get("user")
	if raw == "" {
		return user.ID, true
	}
	subject, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	if subject == user.ID || user.IsAdmin() || event.CreatedBy == user.ID {
		return subject, true
	}
	if user.Role == models.RoleManager && models.Oversees(config.DB, user.ID, subject) {
		return subject, true
	}
	return uuid.Nil, false
}

// GetTimeEntries lists the raw punches for an event, optionally scoped to a
// user and a calendar day.
func GetTimeEntries(w http.ResponseWriter, r *http.Request) {
	var event models.Event
	if err := config.DB.First(&event, "id = ?", pathID(r)).Error; err != nil {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}
	subject, allowed := timesheetSubject(r, &event)
	if !allowed {
		respondError(w, http.StatusForbidden, "not allowed to read this time log")
		return
	}

	query := config.DB.Where("event_id = ? AND user_id = ?", event.ID, subject)
	if day := r.URL.Query().Get("date"); day != "" {
		if d, err := time.Parse("2006-01-02", day); err == nil {
			query = query.Where("punched_at >= ? AND punched_at < ?", d, d.AddDate(0, 0, 1))
		}
		// An unparseable date degrades to the unscoped list.
	}

	var entries []models.TimeEntry
	if err := query.Order("punched_at").Find(&entries).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

type timesheetResp struct {
	UserID        uuid.UUID `json:"userId"`
	EventID       uuid.UUID `json:"eventId"`
	WorkedMinutes int       `json:"workedMinutes"`
	MealMinutes   int       `json:"mealMinutes"`
	NetMinutes    int       `json:"netMinutes"`
	Worked        string    `json:"worked"`
	Meal          string    `json:"meal"`
	Open          bool      `json:"open"`
}

// GetTimesheet reconstructs worked and meal durations for one user on one
// event by pairing the punch log chronologically.
func GetTimesheet(w http.ResponseWriter, r *http.Request) {
	var event models.Event
	if err := config.DB.First(&event, "id = ?", pathID(r)).Error; err != nil {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}
	subject, allowed := timesheetSubject(r, &event)
	if !allowed {
		respondError(w, http.StatusForbidden, "not allowed to read this timesheet")
		return
	}

	var entries []models.TimeEntry
	if err := config.DB.
		Where("event_id = ? AND user_id = ?", event.ID, subject).
		Order("punched_at").
		Find(&entries).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	sheet := utils.BuildTimesheet(punchesOf(entries))
	respondJSON(w, http.StatusOK, timesheetResp{
		UserID:        subject,
		EventID:       event.ID,
		WorkedMinutes: int(sheet.Worked.Minutes()),
		MealMinutes:   int(sheet.Meal.Minutes()),
		NetMinutes:    int(sheet.Net().Minutes()),
		Worked:        utils.FormatDuration(sheet.Worked),
		Meal:          utils.FormatDuration(sheet.Meal),
		Open:          sheet.Open,
	})
}

func punchesOf(entries []models.TimeEntry) []utils.Punch {
	punches := make([]utils.Punch, len(entries))
	for i, e := range entries {
		punches[i] = utils.Punch{Kind: e.Kind, At: e.PunchedAt.Time()}
	}
	return punches
}
