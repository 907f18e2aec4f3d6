package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"p9e.in/crewcall/config"
	"p9e.in/crewcall/middleware"
	"p9e.in/crewcall/models"
)

// canViewEvent gates event visibility: admins see everything, creators see
// their own, vendors see events they are on the team of, and managers see
// events staffed by any worker linked to them.
func canViewEvent(user models.User, event *models.Event) bool {
	if user.IsAdmin() {
		return true
	}
	if event.CreatedBy == user.ID {
		return true
	}

	var member models.TeamMember
	if err := config.DB.Where("event_id = ? AND user_id = ?", event.ID, user.ID).
		First(&member).Error; err == nil {
		return true
	}

	if user.Role == models.RoleManager {
		var count int64
		config.DB.Model(&models.TeamMember{}).
			Joins("JOIN manager_links ON manager_links.worker_id = team_members.user_id").
			Where("team_members.event_id = ? AND manager_links.manager_id = ?", event.ID, user.ID).
			Count(&count)
		return count > 0
	}
	return false
}

// canManageEvent gates mutation: admins and the creator.
func canManageEvent(user models.User, event *models.Event) bool {
	return user.IsAdmin() || event.CreatedBy == user.ID
}

func GetAllEvents(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	params := models.ParseListParams(r)

	query := config.DB.Model(&models.Event{})
	switch {
	case user.IsAdmin():
		// no scoping
	case user.Role == models.RoleManager:
		query = query.Where(
			`created_by = ?
			 OR id IN (SELECT event_id FROM team_members WHERE user_id = ?)
			 OR id IN (SELECT event_id FROM team_members
			           JOIN manager_links ON manager_links.worker_id = team_members.user_id
			           WHERE manager_links.manager_id = ?)`,
			user.ID, user.ID, user.ID)
	default:
		query = query.Where(
			"created_by = ? OR id IN (SELECT event_id FROM team_members WHERE user_id = ?)",
			user.ID, user.ID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	var events []models.Event
	if err := query.Order("date DESC").
		Limit(params.Limit).Offset(params.Offset()).
		Find(&events).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
		"data":  events,
	})
}

func GetEvent(w http.ResponseWriter, r *http.Request) {
	var event models.Event
	if err := config.DB.Preload("Team.User").First(&event, "id = ?", pathID(r)).Error; err != nil {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}
	user := middleware.GetUser(r)
	if !canViewEvent(user, &event) {
		respondError(w, http.StatusForbidden, "not allowed to view this event")
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if event.Name == "" || event.Date.IsZero() {
		respondError(w, http.StatusBadRequest, "name and date are required")
		return
	}

	user := middleware.GetUser(r)
	event.ID = uuid.Nil
	event.CreatedBy = user.ID
	event.ConfirmedStaff = 0

	if err := config.DB.Create(&event).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, event)
}

func UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var event models.Event
	if err := config.DB.First(&event, "id = ?", pathID(r)).Error; err != nil {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}
	user := middleware.GetUser(r)
	if !canManageEvent(user, &event) {
		respondError(w, http.StatusForbidden, "not allowed to modify this event")
		return
	}

	id, creator, confirmed := event.ID, event.CreatedBy, event.ConfirmedStaff
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	// Ownership and the derived confirmed count cannot be rewritten.
	event.ID, event.CreatedBy, event.ConfirmedStaff = id, creator, confirmed

	if err := config.DB.Save(&event).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func DeleteEvent(w http.ResponseWriter, r *http.Request) {
	var event models.Event
	if err := config.DB.First(&event, "id = ?", pathID(r)).Error; err != nil {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}
	user := middleware.GetUser(r)
	if !canManageEvent(user, &event) {
		respondError(w, http.StatusForbidden, "not allowed to delete this event")
		return
	}
	if err := config.DB.Delete(&event).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete event")
		return
	}
	respondSuccess(w)
}
