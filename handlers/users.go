package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"p9e.in/crewcall/config"
	"p9e.in/crewcall/models"
)

// GetAllUsers lists every active account, paginated. Admin surface.
func GetAllUsers(w http.ResponseWriter, r *http.Request) {
	params := models.ParseListParams(r)

	query := config.DB.Model(&models.User{}).Where("is_active = ?", true)
	if role := r.URL.Query().Get("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	var users []models.User
	if err := query.Order("name").
		Limit(params.Limit).Offset(params.Offset()).
		Find(&users).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
		"data":  users,
	})
}

func GetUserByID(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", pathID(r)).Error; err != nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func UpdateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", pathID(r)).Error; err != nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}

	id, hash := user.ID, user.PasswordHash
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	// Password changes go through /change-password, not here.
	user.ID, user.PasswordHash = id, hash
	if !models.ValidRole(user.Role) {
		respondError(w, http.StatusBadRequest, "invalid role")
		return
	}

	if err := config.DB.Save(&user).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func DeleteUser(w http.ResponseWriter, r *http.Request) {
	result := config.DB.Where("id = ?", pathID(r)).Delete(&models.User{})
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	respondSuccess(w)
}

type managerLinkReq struct {
	ManagerID uuid.UUID `json:"managerId"`
	WorkerID  uuid.UUID `json:"workerId"`
}

// CreateManagerLink attaches a worker to a manager's roster. Idempotent on
// the (manager, worker) pair.
func CreateManagerLink(w http.ResponseWriter, r *http.Request) {
	var req managerLinkReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.ManagerID == uuid.Nil || req.WorkerID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "managerId and workerId are required")
		return
	}

	var manager models.User
	if err := config.DB.First(&manager, "id = ?", req.ManagerID).Error; err != nil {
		respondError(w, http.StatusNotFound, "manager not found")
		return
	}
	if manager.Role != models.RoleManager && !manager.IsAdmin() {
		respondError(w, http.StatusBadRequest, "linked user is not a manager")
		return
	}

	link := models.ManagerLink{ManagerID: req.ManagerID, WorkerID: req.WorkerID}
	if err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "manager_id"}, {Name: "worker_id"}},
		DoNothing: true,
	}).Create(&link).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, link)
}

func DeleteManagerLink(w http.ResponseWriter, r *http.Request) {
	result := config.DB.Where("id = ?", pathID(r)).Delete(&models.ManagerLink{})
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete link")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "link not found")
		return
	}
	respondSuccess(w)
}
