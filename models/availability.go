package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityRequest asks a vendor which dates they are open to work.
type AvailabilityRequest struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	User        *User      `gorm:"foreignKey:UserID" json:"-"`
	EventID     *uuid.UUID `gorm:"type:uuid;index" json:"eventId,omitempty"`
	RequestedBy uuid.UUID  `gorm:"type:uuid;not null" json:"requestedBy"`
	Message     string     `gorm:"size:500" json:"message,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (ar *AvailabilityRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if ar.ID == uuid.Nil {
		ar.ID = uuid.New()
	}
	return
}

// AvailabilityResponse is a vendor's declaration of the date range they are
// open to work, stamped with when it was submitted.
type AvailabilityResponse struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	User        *User      `gorm:"foreignKey:UserID" json:"-"`
	RequestID   *uuid.UUID `gorm:"type:uuid;index" json:"requestId,omitempty"`
	RespondedAt time.Time  `gorm:"not null" json:"respondedAt"`
	StartDate   Date       `gorm:"not null" json:"startDate"`
	EndDate     Date       `gorm:"not null" json:"endDate"`
	Note        string     `gorm:"size:500" json:"note,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (av *AvailabilityResponse) BeforeCreate(tx *gorm.DB) (err error) {
	if av.ID == uuid.Nil {
		av.ID = uuid.New()
	}
	return
}

// ActiveOn reports whether the response still speaks for the given day:
// the day must fall inside [StartDate, EndDate], inclusive on both ends.
// A response whose covered range is wholly in the past is stale and must
// read as "pending", not "responded". Every surface that shows a responded
// badge goes through this check.
func (av *AvailabilityResponse) ActiveOn(day Date) bool {
	if av == nil {
		return false
	}
	return !day.Before(av.StartDate) && !day.After(av.EndDate)
}

// AvailabilityState labels for invitation surfaces.
const (
	AvailabilityResponded = "responded"
	AvailabilityPending   = "pending"
)

// AvailabilityStateOn collapses a vendor's latest response into the badge
// the UI shows on the given day.
func AvailabilityStateOn(latest *AvailabilityResponse, day Date) string {
	if latest.ActiveOn(day) {
		return AvailabilityResponded
	}
	return AvailabilityPending
}
