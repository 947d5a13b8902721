// Package biztime centralizes time handling. All storage and domain
// computation use UTC; implicit local timezone is prohibited.
package biztime

import (
	"fmt"
	"time"
)

// Location returns the business timezone. Everything runs in UTC.
func Location() *time.Location {
	return time.UTC
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts a time in any zone to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// ParseDateUTC parses a date string (YYYY-MM-DD) as UTC midnight.
func ParseDateUTC(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate renders a timestamp as YYYY-MM-DD in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
