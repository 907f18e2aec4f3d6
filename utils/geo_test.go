package utils

import "testing"

func coordPtr(v float64) *float64 { return &v }

func TestDistanceKm(t *testing.T) {
	center := Coordinate{Lat: 40.0, Lng: -74.0}

	near := DistanceKm(center, Coordinate{Lat: 40.3, Lng: -74.2})
	if near < 35 || near > 40 {
		t.Errorf("DistanceKm near point = %.2f km, expected ~37 km", near)
	}

	far := DistanceKm(center, Coordinate{Lat: 41.5, Lng: -74.0})
	if far < 165 || far > 169 {
		t.Errorf("DistanceKm far point = %.2f km, expected ~167 km", far)
	}

	if d := DistanceKm(center, center); d != 0 {
		t.Errorf("DistanceKm identical points = %.4f, expected 0", d)
	}
}

func TestCatchmentContains(t *testing.T) {
	c := Catchment{Center: Coordinate{Lat: 40.0, Lng: -74.0}, RadiusKm: 50}

	tests := []struct {
		name     string
		point    Coordinate
		expected bool
	}{
		{"point inside radius", Coordinate{Lat: 40.3, Lng: -74.2}, true},
		{"point far outside radius", Coordinate{Lat: 41.5, Lng: -74.0}, false},
		{"center itself", Coordinate{Lat: 40.0, Lng: -74.0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.point); got != tt.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestCatchmentDefaultRadius(t *testing.T) {
	c := Catchment{Center: Coordinate{Lat: 40.0, Lng: -74.0}}
	if c.Radius() != DefaultCatchmentKm {
		t.Errorf("Radius() = %v, expected default %v", c.Radius(), DefaultCatchmentKm)
	}
	// ~37 km out, inside the 50 km default.
	if !c.Contains(Coordinate{Lat: 40.3, Lng: -74.2}) {
		t.Error("point within default catchment not contained")
	}
}

func TestCatchmentPolygonWins(t *testing.T) {
	// Tight square around the origin; radius would otherwise admit more.
	c := Catchment{
		Center:   Coordinate{Lat: 0, Lng: 0},
		RadiusKm: 1000,
		Boundary: []Coordinate{
			{Lat: -1, Lng: -1}, {Lat: -1, Lng: 1}, {Lat: 1, Lng: 1}, {Lat: 1, Lng: -1},
		},
	}
	if !c.Contains(Coordinate{Lat: 0.5, Lng: 0.5}) {
		t.Error("point inside polygon not contained")
	}
	if c.Contains(Coordinate{Lat: 2, Lng: 2}) {
		t.Error("point outside polygon contained despite radius")
	}
}

func TestNearestContaining(t *testing.T) {
	catchments := []Catchment{
		{Center: Coordinate{Lat: 40.0, Lng: -74.0}, RadiusKm: 100},
		{Center: Coordinate{Lat: 40.5, Lng: -74.0}, RadiusKm: 100},
	}

	tests := []struct {
		name     string
		point    Coordinate
		expected int
	}{
		// Both catchments contain these; nearest center wins regardless
		// of list order.
		{"closer to first", Coordinate{Lat: 40.1, Lng: -74.0}, 0},
		{"closer to second", Coordinate{Lat: 40.45, Lng: -74.0}, 1},
		{"outside all", Coordinate{Lat: 50.0, Lng: -74.0}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearestContaining(tt.point, catchments); got != tt.expected {
				t.Errorf("NearestContaining(%v) = %d, expected %d", tt.point, got, tt.expected)
			}
		})
	}
}

func TestIsPointInPolygon(t *testing.T) {
	square := []Coordinate{
		{Lat: 0, Lng: 0}, {Lat: 0, Lng: 10}, {Lat: 10, Lng: 10}, {Lat: 10, Lng: 0},
	}

	tests := []struct {
		name     string
		point    Coordinate
		polygon  []Coordinate
		expected bool
	}{
		{"inside square", Coordinate{Lat: 5, Lng: 5}, square, true},
		{"outside square", Coordinate{Lat: 15, Lng: 5}, square, false},
		{"degenerate polygon", Coordinate{Lat: 5, Lng: 5}, square[:2], false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPointInPolygon(tt.point, tt.polygon); got != tt.expected {
				t.Errorf("IsPointInPolygon(%v) = %v, expected %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestPolygonCentroid(t *testing.T) {
	square := []Coordinate{
		{Lat: 0, Lng: 0}, {Lat: 0, Lng: 10}, {Lat: 10, Lng: 10}, {Lat: 10, Lng: 0},
	}
	c := PolygonCentroid(square)
	if c.Lat != 5 || c.Lng != 5 {
		t.Errorf("PolygonCentroid = %v, expected (5, 5)", c)
	}
	if empty := PolygonCentroid(nil); empty != (Coordinate{}) {
		t.Errorf("PolygonCentroid(nil) = %v, expected zero value", empty)
	}
}

func TestParseLatLng(t *testing.T) {
	tests := []struct {
		name string
		lat  *float64
		lng  *float64
		ok   bool
	}{
		{"valid pair", coordPtr(40.7), coordPtr(-74.0), true},
		{"missing lat", nil, coordPtr(-74.0), false},
		{"missing lng", coordPtr(40.7), nil, false},
		{"both missing", nil, nil, false},
		{"latitude out of range", coordPtr(91.0), coordPtr(0.0), false},
		{"longitude out of range", coordPtr(0.0), coordPtr(181.0), false},
		{"null island treated as unset", coordPtr(0.0), coordPtr(0.0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseLatLng(tt.lat, tt.lng)
			if ok != tt.ok {
				t.Errorf("ParseLatLng(%v, %v) ok = %v, expected %v", tt.lat, tt.lng, ok, tt.ok)
			}
		})
	}
}

func TestLessDistance(t *testing.T) {
	a, b := coordPtr(5), coordPtr(10)

	if less, decided := LessDistance(a, b); !decided || !less {
		t.Error("smaller distance should sort first")
	}
	if less, decided := LessDistance(b, a); !decided || less {
		t.Error("larger distance should sort last")
	}
	if less, decided := LessDistance(a, nil); !decided || !less {
		t.Error("having a distance should sort before having none")
	}
	if less, decided := LessDistance(nil, a); !decided || less {
		t.Error("missing distance should sort after a present one")
	}
	if _, decided := LessDistance(nil, nil); decided {
		t.Error("two missing distances should fall through to the secondary order")
	}
	if _, decided := LessDistance(a, coordPtr(5)); decided {
		t.Error("equal distances should fall through to the secondary order")
	}
}
