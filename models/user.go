// models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Role names. Vendors are the assignable worker identities; managers run
// events and oversee linked vendors; admins see everything.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleVendor     = "vendor"
)

// ValidRole reports whether the role name is one we issue tokens for.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleVendor:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"size:15" json:"phone,omitempty"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:30;not null;default:vendor" json:"role"`

	// Optional location. Missing or junk coordinates are tolerated
	// everywhere; they only mean "no computable distance".
	City      *string  `gorm:"size:100" json:"city,omitempty"`
	State     *string  `gorm:"size:100" json:"state,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Skills pq.StringArray `gorm:"type:text[]" json:"skills,omitempty"`

	IsActive  bool `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}

// IsAdmin covers both admin tiers.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// ManagerLink associates a manager with a vendor they oversee. Event
// visibility for managers flows through these links.
type ManagerLink struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ManagerID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_manager_worker" json:"managerId"`
	WorkerID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_manager_worker" json:"workerId"`
	Manager   *User     `gorm:"foreignKey:ManagerID" json:"-"`
	Worker    *User     `gorm:"foreignKey:WorkerID" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ml *ManagerLink) BeforeCreate(tx *gorm.DB) (err error) {
	if ml.ID == uuid.Nil {
		ml.ID = uuid.New()
	}
	return
}

// Oversees reports whether the manager has a link to the given worker.
func Oversees(db *gorm.DB, managerID, workerID uuid.UUID) bool {
	var link ManagerLink
	err := db.Where("manager_id = ? AND worker_id = ?", managerID, workerID).
		First(&link).Error
	return err == nil
}
