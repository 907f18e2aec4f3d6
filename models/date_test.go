package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"plain date", `"2026-03-14"`, "2026-03-14", false},
		{"rfc3339 timestamp truncated", `"2026-03-14T18:30:00Z"`, "2026-03-14", false},
		{"garbage", `"not-a-date"`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && d.String() != tt.expected {
				t.Errorf("Unmarshal(%s) = %s, expected %s", tt.input, d, tt.expected)
			}
		})
	}
}

func TestDateMarshalJSON(t *testing.T) {
	d := Date(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2026-03-14"` {
		t.Errorf("Marshal = %s, expected %q", b, `"2026-03-14"`)
	}
}

func TestDateOf(t *testing.T) {
	d := DateOf(time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC))
	if d.String() != "2026-03-14" {
		t.Errorf("DateOf = %s, expected 2026-03-14", d)
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan(time.Time): %v", err)
	}
	if d.String() != "2026-03-14" {
		t.Errorf("Scan(time.Time) = %s, expected 2026-03-14", d)
	}

	if err := d.Scan("2026-04-01"); err != nil {
		t.Fatalf("Scan(string): %v", err)
	}
	if d.String() != "2026-04-01" {
		t.Errorf("Scan(string) = %s, expected 2026-04-01", d)
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if !d.IsZero() {
		t.Error("Scan(nil) should reset to zero date")
	}

	if err := d.Scan(42); err == nil {
		t.Error("Scan(int) should fail")
	}
}
