package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeEntry is one punch in the append-only time log. Entries are never
// updated or deleted; worked and meal durations are reconstructed by pairing
// entries chronologically.
type TimeEntry struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	User    *User     `gorm:"foreignKey:UserID" json:"-"`
	EventID uuid.UUID `gorm:"type:uuid;not null;index" json:"eventId"`
	Event   *Event    `gorm:"foreignKey:EventID" json:"-"`

	// Kind is one of clock_in, clock_out, meal_start, meal_end.
	Kind      string   `gorm:"size:20;not null" json:"kind"`
	PunchedAt JSONTime `gorm:"not null;index" json:"punchedAt"`

	// Where the punch happened, when the device shared it.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// AttestationFormID derives the identifier that ties a day's punches for a
// worker on an event to its attestation record.
func AttestationFormID(userID, eventID uuid.UUID, day Date) string {
	return fmt.Sprintf("%s:%s:%s", userID, eventID, day)
}
