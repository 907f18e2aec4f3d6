package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day component. Availability
// windows and event dates compare as calendar dates, never as timestamps,
// so boundary days count as inside a range.
type Date time.Time

const dateLayout = "2006-01-02"

// DateOf truncates a timestamp to its calendar date in the timestamp's
// location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// Today returns the current calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// UnmarshalJSON accepts "2006-01-02" and, for clients that send full
// timestamps, anything RFC3339-shaped (the time-of-day is discarded).
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		*d = Date(t)
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("Date.UnmarshalJSON: cannot parse %q: %w", s, err)
	}
	*d = DateOf(t)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(dateLayout))
}

func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before and After compare calendar dates.
func (d Date) Before(other Date) bool {
	return time.Time(d).Before(time.Time(other))
}

func (d Date) After(other Date) bool {
	return time.Time(d).After(time.Time(other))
}

// Value implements driver.Valuer so GORM stores Date as a SQL DATE.
func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// Scan implements sql.Scanner, truncating whatever the driver hands back.
func (d *Date) Scan(src interface{}) error {
	if src == nil {
		*d = Date(time.Time{})
		return nil
	}
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return fmt.Errorf("Date.Scan: cannot parse %q: %w", v, err)
		}
		*d = Date(t)
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("Date.Scan: unsupported type %T", src)
	}
}

// GormDataType tells GORM the column type.
func (Date) GormDataType() string {
	return "date"
}
