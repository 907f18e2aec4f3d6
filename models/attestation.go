package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AttestationSignature links a worker's attested shift (via the derived
// form id, see AttestationFormID) to a captured signature image. Fetched for
// audit and export; never mutated after capture.
type AttestationSignature struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FormID  string    `gorm:"size:150;not null;index" json:"formId"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	User    *User     `gorm:"foreignKey:UserID" json:"-"`
	EventID uuid.UUID `gorm:"type:uuid;not null;index" json:"eventId"`
	Event   *Event    `gorm:"foreignKey:EventID" json:"-"`

	SignatureURL string `gorm:"size:500;not null" json:"signatureUrl"`
	// Metadata carries capture context: device, IP, user agent.
	Metadata datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`

	CapturedAt JSONTime  `gorm:"not null" json:"capturedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (as *AttestationSignature) BeforeCreate(tx *gorm.DB) (err error) {
	if as.ID == uuid.Nil {
		as.ID = uuid.New()
	}
	return
}
