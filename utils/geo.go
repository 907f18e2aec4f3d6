package utils

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// DefaultCatchmentKm is applied when a region has no explicit radius.
const DefaultCatchmentKm = 50.0

// Coordinate represents a geographic coordinate with latitude and longitude
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinate lies in the WGS84 range.
func (c Coordinate) Valid() bool {
	if c.Lat < -90 || c.Lat > 90 {
		return false
	}
	if c.Lng < -180 || c.Lng > 180 {
		return false
	}
	return true
}

// ParseLatLng builds a Coordinate from optional columns. Missing or
// out-of-range values degrade to "no coordinate" rather than an error,
// so callers never drop a record over bad location data.
func ParseLatLng(lat, lng *float64) (Coordinate, bool) {
	if lat == nil || lng == nil {
		return Coordinate{}, false
	}
	c := Coordinate{Lat: *lat, Lng: *lng}
	if !c.Valid() || (*lat == 0 && *lng == 0) {
		return Coordinate{}, false
	}
	return c, true
}

// DistanceKm returns the great-circle distance between two points in
// kilometers (haversine).
func DistanceKm(a, b Coordinate) float64 {
	p1 := orb.Point{a.Lng, a.Lat}
	p2 := orb.Point{b.Lng, b.Lat}
	return geo.DistanceHaversine(p1, p2) / 1000.0
}

// Catchment is the area a region covers: a circle around Center unless a
// polygon Boundary with at least 3 vertices is present, in which case the
// polygon wins.
type Catchment struct {
	Center   Coordinate
	RadiusKm float64
	Boundary []Coordinate
}

// Radius returns the effective radius, falling back to DefaultCatchmentKm.
func (c Catchment) Radius() float64 {
	if c.RadiusKm > 0 {
		return c.RadiusKm
	}
	return DefaultCatchmentKm
}

// Contains reports whether the point falls inside the catchment.
func (c Catchment) Contains(pt Coordinate) bool {
	if len(c.Boundary) >= 3 {
		return IsPointInPolygon(pt, c.Boundary)
	}
	return DistanceKm(pt, c.Center) <= c.Radius()
}

// NearestContaining returns the index of the catchment containing pt whose
// center is nearest, or -1 when no catchment contains it. Nearest-center is
// the tie-break when catchments overlap, so resolution does not depend on
// list order.
func NearestContaining(pt Coordinate, catchments []Catchment) int {
	best := -1
	bestDist := math.MaxFloat64
	for i, c := range catchments {
		if !c.Contains(pt) {
			continue
		}
		if d := DistanceKm(pt, c.Center); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// IsPointInPolygon checks if a point is inside a polygon using ray casting.
func IsPointInPolygon(point Coordinate, polygon []Coordinate) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {
		xi, yi := polygon[i].Lng, polygon[i].Lat
		xj, yj := polygon[j].Lng, polygon[j].Lat

		intersect := ((yi > point.Lat) != (yj > point.Lat)) &&
			(point.Lng < (xj-xi)*(point.Lat-yi)/(yj-yi)+xi)

		if intersect {
			inside = !inside
		}
		j = i
	}

	return inside
}

// PolygonCentroid returns the vertex average of a polygon, used as the
// center of polygon-bounded regions.
func PolygonCentroid(coordinates []Coordinate) Coordinate {
	if len(coordinates) == 0 {
		return Coordinate{}
	}

	var sumLat, sumLng float64
	for _, coord := range coordinates {
		sumLat += coord.Lat
		sumLng += coord.Lng
	}

	return Coordinate{
		Lat: sumLat / float64(len(coordinates)),
		Lng: sumLng / float64(len(coordinates)),
	}
}

// LessDistance orders optional distances ascending with "no distance" last.
// Equal or both-missing pairs fall through to the caller's secondary order.
func LessDistance(a, b *float64) (less, decided bool) {
	switch {
	case a != nil && b != nil:
		if *a == *b {
			return false, false
		}
		return *a < *b, true
	case a != nil:
		return true, true
	case b != nil:
		return false, true
	default:
		return false, false
	}
}
