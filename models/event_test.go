package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestFormatTimeOfDay(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"09:30", "09:30"},
		{"23:59", "23:59"},
		{"", "--:--"},
		{"9:3", "--:--"},
		{"25:00", "--:--"},
		{"noonish", "--:--"},
	}

	for _, tt := range tests {
		if got := FormatTimeOfDay(tt.input); got != tt.expected {
			t.Errorf("FormatTimeOfDay(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestAttestationFormID(t *testing.T) {
	userID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	eventID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	day := mustDate(t, "2026-03-14")

	got := AttestationFormID(userID, eventID, day)
	expected := "11111111-1111-1111-1111-111111111111:22222222-2222-2222-2222-222222222222:2026-03-14"
	if got != expected {
		t.Errorf("AttestationFormID = %q, expected %q", got, expected)
	}
}
