package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestJSONTimeUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"rfc3339", `"2026-03-14T09:00:00Z"`, false},
		{"rfc3339 with offset", `"2026-03-14T09:00:00-05:00"`, false},
		{"fractional seconds no zone", `"2026-03-14T09:00:00.123456"`, false},
		{"no zone", `"2026-03-14T09:00:00"`, false},
		{"date only", `"2026-03-14"`, true},
		{"garbage", `"yesterday"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var jt JSONTime
			err := json.Unmarshal([]byte(tt.input), &jt)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && jt.Time().IsZero() {
				t.Errorf("Unmarshal(%s) produced a zero time", tt.input)
			}
		})
	}
}

func TestJSONTimeMarshalJSON(t *testing.T) {
	jt := JSONTime(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	b, err := json.Marshal(jt)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2026-03-14T09:00:00Z"` {
		t.Errorf("Marshal = %s, expected RFC3339", b)
	}
}
