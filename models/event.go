package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Event is a staffed occasion: a date, a time window, a venue and required
// versus confirmed head counts. Owned by its creator.
type Event struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:200;not null" json:"name"`
	Date Date      `gorm:"not null;index" json:"date"`

	// Time window as "15:04" strings. Malformed values degrade to "--:--"
	// wherever they are displayed; they never fail a request.
	StartTime string `gorm:"size:5" json:"startTime,omitempty"`
	EndTime   string `gorm:"size:5" json:"endTime,omitempty"`

	// Venue is a JSON object: {name, address, lat, lng}.
	Venue datatypes.JSON `gorm:"type:jsonb" json:"venue,omitempty"`

	RegionID *uuid.UUID `gorm:"type:uuid;index" json:"regionId,omitempty"`
	Region   *Region    `gorm:"foreignKey:RegionID" json:"-"`

	RequiredStaff  int `gorm:"default:0" json:"requiredStaff"`
	ConfirmedStaff int `gorm:"default:0" json:"confirmedStaff"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index" json:"createdBy"`
	Creator   *User     `gorm:"foreignKey:CreatedBy" json:"-"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Team []TeamMember `gorm:"foreignKey:EventID" json:"team,omitempty"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}

// FormatTimeOfDay normalizes an "HH:MM" string for display, degrading to
// the "--:--" placeholder when it does not parse.
func FormatTimeOfDay(s string) string {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "--:--"
	}
	return t.Format("15:04")
}
