package utils

import (
	"fmt"
	"sort"
	"time"
)

// Punch kinds, as recorded in the time-entry log.
const (
	PunchClockIn   = "clock_in"
	PunchClockOut  = "clock_out"
	PunchMealStart = "meal_start"
	PunchMealEnd   = "meal_end"
)

// IsPunchKind reports whether s is one of the recognized punch kinds.
func IsPunchKind(s string) bool {
	switch s {
	case PunchClockIn, PunchClockOut, PunchMealStart, PunchMealEnd:
		return true
	}
	return false
}

// Punch is a single entry in the append-only time log.
type Punch struct {
	Kind string
	At   time.Time
}

// Timesheet is the reconstruction of a day's punches: total worked time from
// paired clock in/out, total meal time from paired meal start/end, and
// whether a shift is still open (trailing clock-in with no clock-out).
type Timesheet struct {
	Worked time.Duration
	Meal   time.Duration
	Open   bool
}

// Net is worked time minus meal breaks, floored at zero.
func (t Timesheet) Net() time.Duration {
	if t.Meal >= t.Worked {
		return 0
	}
	return t.Worked - t.Meal
}

// BuildTimesheet pairs punches chronologically. Each clock-in pairs with the
// next clock-out; a clock-out with no open clock-in is skipped, as is a
// trailing unmatched clock-in (it contributes no duration but marks the
// sheet open). Meal punches pair the same way. Pairs never contribute a
// negative duration.
func BuildTimesheet(punches []Punch) Timesheet {
	sorted := make([]Punch, len(punches))
	copy(sorted, punches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].At.Before(sorted[j].At)
	})

	var sheet Timesheet
	var workStart, mealStart *time.Time

	for i := range sorted {
		p := sorted[i]
		switch p.Kind {
		case PunchClockIn:
			if workStart == nil {
				workStart = &sorted[i].At
			}
		case PunchClockOut:
			if workStart != nil && !p.At.Before(*workStart) {
				sheet.Worked += p.At.Sub(*workStart)
				workStart = nil
			}
		case PunchMealStart:
			if mealStart == nil {
				mealStart = &sorted[i].At
			}
		case PunchMealEnd:
			if mealStart != nil && !p.At.Before(*mealStart) {
				sheet.Meal += p.At.Sub(*mealStart)
				mealStart = nil
			}
		}
	}

	sheet.Open = workStart != nil
	return sheet
}

// FormatClock renders a timestamp as "HH:MM" for display, degrading to
// "--:--" for a zero time instead of failing.
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.Format("15:04")
}

// FormatDuration renders a duration as "H:MM".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%d:%02d", h, m)
}
