package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"p9e.in/crewcall/utils"
)

// Region is a named geographic catchment: a center point with a radius, or
// an explicit polygon boundary. Regions scope vendor result sets; they are
// filter keys, not ownership boundaries.
type Region struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Code        string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Description string    `gorm:"size:255" json:"description,omitempty"`

	CenterLat float64 `gorm:"not null" json:"centerLat"`
	CenterLng float64 `gorm:"not null" json:"centerLng"`
	// RadiusKm of 0 means the default catchment radius.
	RadiusKm float64 `json:"radiusKm"`
	// Boundary is an optional polygon: JSON array of {lat, lng}. When at
	// least 3 vertices are present it replaces the radius test.
	Boundary datatypes.JSON `gorm:"type:jsonb" json:"boundary,omitempty"`

	IsActive  bool           `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (rg *Region) BeforeCreate(tx *gorm.DB) (err error) {
	if rg.ID == uuid.Nil {
		rg.ID = uuid.New()
	}
	return
}

// Catchment converts the row into the geometric form the geo helpers work
// on. A malformed boundary degrades to the radius test; it never errors.
func (rg *Region) Catchment() utils.Catchment {
	c := utils.Catchment{
		Center:   utils.Coordinate{Lat: rg.CenterLat, Lng: rg.CenterLng},
		RadiusKm: rg.RadiusKm,
	}
	if len(rg.Boundary) > 0 {
		var poly []utils.Coordinate
		if err := json.Unmarshal(rg.Boundary, &poly); err == nil && len(poly) >= 3 {
			c.Boundary = poly
		}
	}
	return c
}

// Contains reports whether the point falls inside this region's catchment.
func (rg *Region) Contains(pt utils.Coordinate) bool {
	return rg.Catchment().Contains(pt)
}
