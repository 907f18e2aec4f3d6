package handlers

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"p9e.in/crewcall/models"
)

func f64(v float64) *float64 { return &v }

func vendorNamed(name string, lat, lng *float64) models.User {
	return models.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     name + "@example.com",
		Role:      models.RoleVendor,
		Latitude:  lat,
		Longitude: lng,
	}
}

func TestBuildVendorViewsRegionFilter(t *testing.T) {
	region := &models.Region{
		Name:      "Metro",
		Code:      "metro",
		CenterLat: 40.0,
		CenterLng: -74.0,
		RadiusKm:  50,
	}

	near := vendorNamed("Near Worker", f64(40.1), f64(-74.0))       // ~11 km
	farther := vendorNamed("Farther Worker", f64(40.3), f64(-74.2)) // ~37 km
	outside := vendorNamed("Outside Worker", f64(41.5), f64(-74.0)) // ~167 km
	noCoords := vendorNamed("Anywhere Worker", nil, nil)

	views := buildVendorViews(
		[]models.User{noCoords, outside, farther, near},
		region, nil, models.Today(),
	)

	if len(views) != 3 {
		t.Fatalf("got %d views, expected 3 (out-of-catchment vendor excluded)", len(views))
	}
	if views[0].Name != near.Name || views[1].Name != farther.Name {
		t.Errorf("order = %q, %q; expected nearest first", views[0].Name, views[1].Name)
	}
	if views[2].Name != noCoords.Name {
		t.Errorf("last view = %q, expected the coordinate-less vendor", views[2].Name)
	}
	if views[2].DistanceKm != nil {
		t.Errorf("coordinate-less vendor DistanceKm = %v, expected nil", *views[2].DistanceKm)
	}
	if views[0].DistanceKm == nil || views[1].DistanceKm == nil {
		t.Fatal("in-catchment vendors should carry a distance")
	}
	if *views[0].DistanceKm >= *views[1].DistanceKm {
		t.Errorf("distances not ascending: %.2f then %.2f", *views[0].DistanceKm, *views[1].DistanceKm)
	}
}

func TestBuildVendorViewsAlphabetical(t *testing.T) {
	vendors := []models.User{
		vendorNamed("carol", nil, nil),
		vendorNamed("Alice", f64(40.0), f64(-74.0)),
		vendorNamed("bob", nil, nil),
	}

	views := buildVendorViews(vendors, nil, nil, models.Today())

	if len(views) != 3 {
		t.Fatalf("got %d views, expected 3 (no region filter drops nobody)", len(views))
	}
	got := []string{views[0].Name, views[1].Name, views[2].Name}
	expected := []string{"Alice", "bob", "carol"}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("order = %v, expected case-insensitive alphabetical %v", got, expected)
		}
	}
	for _, v := range views {
		if v.DistanceKm != nil {
			t.Errorf("vendor %q has a distance with no region filter", v.Name)
		}
	}
}

func TestBuildVendorViewsAvailabilityBadge(t *testing.T) {
	today := models.DateOf(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	available := vendorNamed("Available Worker", nil, nil)
	silent := vendorNamed("Silent Worker", nil, nil)

	responses := map[uuid.UUID]*models.AvailabilityResponse{
		available.ID: {
			UserID:    available.ID,
			StartDate: models.DateOf(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)),
			EndDate:   models.DateOf(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)),
		},
	}
	latest := func(id uuid.UUID) *models.AvailabilityResponse { return responses[id] }

	views := buildVendorViews([]models.User{available, silent}, nil, latest, today)

	for _, v := range views {
		switch v.Name {
		case available.Name:
			if v.Availability != models.AvailabilityResponded {
				t.Errorf("%q availability = %q, expected %q", v.Name, v.Availability, models.AvailabilityResponded)
			}
		case silent.Name:
			if v.Availability != models.AvailabilityPending {
				t.Errorf("%q availability = %q, expected %q", v.Name, v.Availability, models.AvailabilityPending)
			}
		}
	}
}
