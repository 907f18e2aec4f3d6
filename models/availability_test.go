package models

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return Date(parsed)
}

func TestAvailabilityResponseActiveOn(t *testing.T) {
	resp := &AvailabilityResponse{
		StartDate: Date(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)),
		EndDate:   Date(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)),
	}

	tests := []struct {
		name     string
		day      string
		expected bool
	}{
		{"day before window", "2026-03-09", false},
		{"first day inclusive", "2026-03-10", true},
		{"middle of window", "2026-03-15", true},
		{"last day inclusive", "2026-03-20", true},
		{"day after window", "2026-03-21", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resp.ActiveOn(mustDate(t, tt.day)); got != tt.expected {
				t.Errorf("ActiveOn(%s) = %v, expected %v", tt.day, got, tt.expected)
			}
		})
	}
}

func TestAvailabilityResponseActiveOnNil(t *testing.T) {
	var resp *AvailabilityResponse
	if resp.ActiveOn(Today()) {
		t.Error("nil response reported active")
	}
}

func TestAvailabilityStateOn(t *testing.T) {
	day := Date(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	current := &AvailabilityResponse{
		StartDate: Date(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)),
		EndDate:   Date(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)),
	}
	stale := &AvailabilityResponse{
		StartDate: Date(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:   Date(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)),
	}

	if got := AvailabilityStateOn(current, day); got != AvailabilityResponded {
		t.Errorf("current response state = %q, expected %q", got, AvailabilityResponded)
	}
	if got := AvailabilityStateOn(stale, day); got != AvailabilityPending {
		t.Errorf("stale response state = %q, expected %q", got, AvailabilityPending)
	}
	if got := AvailabilityStateOn(nil, day); got != AvailabilityPending {
		t.Errorf("no response state = %q, expected %q", got, AvailabilityPending)
	}
}
