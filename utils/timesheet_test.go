package utils

import (
	"testing"
	"time"
)

func punchAt(kind string, hour, min int) Punch {
	return Punch{Kind: kind, At: time.Date(2026, 3, 14, hour, min, 0, 0, time.UTC)}
}

func TestBuildTimesheet(t *testing.T) {
	tests := []struct {
		name    string
		punches []Punch
		worked  time.Duration
		meal    time.Duration
		open    bool
	}{
		{
			name:    "no punches",
			punches: nil,
		},
		{
			name: "single shift",
			punches: []Punch{
				punchAt(PunchClockIn, 9, 0),
				punchAt(PunchClockOut, 17, 0),
			},
			worked: 8 * time.Hour,
		},
		{
			name: "shift with meal break",
			punches: []Punch{
				punchAt(PunchClockIn, 9, 0),
				punchAt(PunchMealStart, 12, 0),
				punchAt(PunchMealEnd, 12, 30),
				punchAt(PunchClockOut, 17, 0),
			},
			worked: 8 * time.Hour,
			meal:   30 * time.Minute,
		},
		{
			name: "split shift pairs chronologically",
			punches: []Punch{
				punchAt(PunchClockIn, 9, 0),
				punchAt(PunchClockOut, 12, 0),
				punchAt(PunchClockIn, 14, 0),
				punchAt(PunchClockOut, 18, 0),
			},
			worked: 7 * time.Hour,
		},
		{
			name: "out-of-order input is sorted before pairing",
			punches: []Punch{
				punchAt(PunchClockOut, 17, 0),
				punchAt(PunchClockIn, 9, 0),
			},
			worked: 8 * time.Hour,
		},
		{
			name: "orphan clock-out is skipped",
			punches: []Punch{
				punchAt(PunchClockOut, 8, 0),
				punchAt(PunchClockIn, 9, 0),
				punchAt(PunchClockOut, 17, 0),
			},
			worked: 8 * time.Hour,
		},
		{
			name: "trailing clock-in leaves the sheet open",
			punches: []Punch{
				punchAt(PunchClockIn, 9, 0),
				punchAt(PunchClockOut, 12, 0),
				punchAt(PunchClockIn, 13, 0),
			},
			worked: 3 * time.Hour,
			open:   true,
		},
		{
			name: "unmatched meal start contributes nothing",
			punches: []Punch{
				punchAt(PunchClockIn, 9, 0),
				punchAt(PunchMealStart, 12, 0),
				punchAt(PunchClockOut, 17, 0),
			},
			worked: 8 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := BuildTimesheet(tt.punches)
			if sheet.Worked != tt.worked {
				t.Errorf("Worked = %v, expected %v", sheet.Worked, tt.worked)
			}
			if sheet.Meal != tt.meal {
				t.Errorf("Meal = %v, expected %v", sheet.Meal, tt.meal)
			}
			if sheet.Open != tt.open {
				t.Errorf("Open = %v, expected %v", sheet.Open, tt.open)
			}
			if net := sheet.Net(); net != tt.worked-tt.meal {
				t.Errorf("Net() = %v, expected %v", net, tt.worked-tt.meal)
			}
		})
	}
}

func TestIsPunchKind(t *testing.T) {
	for _, kind := range []string{PunchClockIn, PunchClockOut, PunchMealStart, PunchMealEnd} {
		if !IsPunchKind(kind) {
			t.Errorf("IsPunchKind(%q) = false", kind)
		}
	}
	if IsPunchKind("coffee_break") {
		t.Error("IsPunchKind accepted an unknown kind")
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(time.Date(2026, 3, 14, 9, 5, 0, 0, time.UTC)); got != "09:05" {
		t.Errorf("FormatClock = %q, expected %q", got, "09:05")
	}
	if got := FormatClock(time.Time{}); got != "--:--" {
		t.Errorf("FormatClock(zero) = %q, expected %q", got, "--:--")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0:00"},
		{30 * time.Minute, "0:30"},
		{8 * time.Hour, "8:00"},
		{7*time.Hour + 30*time.Minute, "7:30"},
		{25*time.Hour + 5*time.Minute, "25:05"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.expected {
			t.Errorf("FormatDuration(%v) = %q, expected %q", tt.d, got, tt.expected)
		}
	}
}
