package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"p9e.in/crewcall/config"
	"p9e.in/crewcall/middleware"
	"p9e.in/crewcall/models"
)

type inviteReq struct {
	UserID    uuid.UUID `json:"userId"`
	RoleOnDay string    `json:"roleOnDay,omitempty"`
}

// teamConflict makes invites idempotent: re-inviting an existing
// (event, user) pair refreshes the row instead of duplicating it.
var teamConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
	DoUpdates: clause.AssignmentColumns([]string{"status", "role_on_day", "invited_by", "updated_at"}),
}

// InviteTeamMember adds a vendor to an event's team as "invited".
func InviteTeamMember(w http.ResponseWriter, r *http.Request) {
	event, user, ok := loadManagedEvent(w, r)
	if !ok {
		return
	}

	var req inviteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "userId is required")
		return
	}
	var vendor models.User
	if err := config.DB.First(&vendor, "id = ?", req.UserID).Error; err != nil {
		respondError(w, http.StatusNotFound, "vendor not found")
		return
	}

	member := models.TeamMember{
		EventID:   event.ID,
		UserID:    req.UserID,
		Status:    models.TeamInvited,
		RoleOnDay: req.RoleOnDay,
		InvitedBy: user.ID,
	}
	if err := config.DB.Clauses(teamConflict).Create(&member).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	syncConfirmedCount(event.ID)
	respondJSON(w, http.StatusCreated, member)
}

// BatchInviteTeamMembers invites a list of vendors in one call, idempotently.
func BatchInviteTeamMembers(w http.ResponseWriter, r *http.Request) {
	event, user, ok := loadManagedEvent(w, r)
	if !ok {
		return
	}

	var reqs []inviteReq
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if len(reqs) == 0 {
		respondError(w, http.StatusBadRequest, "empty invite list")
		return
	}

	members := make([]models.TeamMember, 0, len(reqs))
	for _, req := range reqs {
		if req.UserID == uuid.Nil {
			continue
		}
		members = append(members, models.TeamMember{
			EventID:   event.ID,
			UserID:    req.UserID,
			Status:    models.TeamInvited,
			RoleOnDay: req.RoleOnDay,
			InvitedBy: user.ID,
		})
	}
	if err := config.DB.Clauses(teamConflict).Create(&members).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	syncConfirmedCount(event.ID)
	respondJSON(w, http.StatusOK, map[string]interface{}{"invited": len(members)})
}

type respondReq struct {
	Status string `json:"status"`
}

// RespondTeamInvite lets the invited vendor confirm or decline.
func RespondTeamInvite(w http.ResponseWriter, r *http.Request) {
	var member models.TeamMember
	if err := config.DB.First(&member, "id = ?", pathID(r)).Error; err != nil {
		respondError(w, http.StatusNotFound, "invitation not found")
		return
	}

	user := middleware.GetUser(r)
	if member.UserID != user.ID && !user.IsAdmin() {
		respondError(w, http.StatusForbidden, "not your invitation")
		return
	}

	var req respondReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Status != models.TeamConfirmed && req.Status != models.TeamDeclined {
		respondError(w, http.StatusBadRequest, "status must be confirmed or declined")
		return
	}

	now := time.Now()
	member.Status = req.Status
	member.RespondedAt = &now
	if err := config.DB.Save(&member).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	syncConfirmedCount(member.EventID)
	respondJSON(w, http.StatusOK, member)
}

// GetEventTeam lists an event's team with member details.
func GetEventTeam(w http.ResponseWriter, r *http.Request) {
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

	var team []models.TeamMember
	if err := config.DB.Preload("User").
		Where("event_id = ?", event.ID).
		Order("created_at").
		Find(&team).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, team)
}

// RemoveTeamMember drops an invitation.
func RemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	var member models.TeamMember
	if err := config.DB.First(&member, "id = ?", pathID(r)).Error; err != nil {
		respondError(w, http.StatusNotFound, "team member not found")
		return
	}
	var event models.Event
	if err := config.DB.First(&event, "id = ?", member.EventID).Error; err != nil {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}
	user := middleware.GetUser(r)
	if !canManageEvent(user, &event) {
		respondError(w, http.StatusForbidden, "not allowed to modify this event")
		return
	}
	if err := config.DB.Delete(&member).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to remove team member")
		return
	}
	syncConfirmedCount(member.EventID)
	respondSuccess(w)
}

// loadManagedEvent fetches the {id} event and checks the caller may manage
// it, writing the error response itself when not.
func loadManagedEvent(w http.ResponseWriter, r *http.Request) (*models.Event, models.User, bool) {
	var event models.Event
	if err := config.DB.First(&event, "id = ?", pathID(r)).Error; err != nil {
		respondError(w, http.StatusNotFound, "event not found")
		return nil, models.User{}, false
	}
	user := middleware.GetUser(r)
	if !canManageEvent(user, &event) {
		respondError(w, http.StatusForbidden, "not allowed to modify this event")
		return nil, models.User{}, false
	}
	return &event, user, true
}

// syncConfirmedCount recomputes the event's confirmed head count from the
// membership rows. Derived, never trusted from input.
func syncConfirmedCount(eventID uuid.UUID) {
	config.DB.Model(&models.Event{}).Where("id = ?", eventID).
		Update("confirmed_staff", gorm.Expr(
			"(SELECT COUNT(*) FROM team_members WHERE event_id = ? AND status = ?)",
			eventID, models.TeamConfirmed))
}
