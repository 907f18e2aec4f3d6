package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team membership statuses.
const (
	TeamInvited   = "invited"
	TeamConfirmed = "confirmed"
	TeamDeclined  = "declined"
)

// ValidTeamStatus reports whether s is a recognized membership status.
func ValidTeamStatus(s string) bool {
	switch s {
	case TeamInvited, TeamConfirmed, TeamDeclined:
		return true
	}
	return false
}

// TeamMember associates an event with a vendor. Keyed uniquely on
// (event, user): re-inviting an existing member updates the row rather than
// duplicating it.
type TeamMember struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EventID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_event_user" json:"eventId"`
	Event   *Event    `gorm:"foreignKey:EventID" json:"-"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_event_user" json:"userId"`
	User    *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Status      string     `gorm:"size:20;not null;default:invited" json:"status"`
	RoleOnDay   string     `gorm:"size:100" json:"roleOnDay,omitempty"`
	InvitedBy   uuid.UUID  `gorm:"type:uuid" json:"invitedBy"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (tm *TeamMember) BeforeCreate(tx *gorm.DB) (err error) {
	if tm.ID == uuid.Nil {
		tm.ID = uuid.New()
	}
	return
}
