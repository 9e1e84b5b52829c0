package models

import (
	"fmt"
	"time"
)

// DateLayout is the canonical textual form for calendar dates, both in
// API payloads and in the storage slots.
const DateLayout = "2006-01-02"

// ParseCalendarDate normalizes a stored date representation into a local
// midnight value. Bare YYYY-MM-DD strings are interpreted as local
// midnight rather than UTC so the calendar day never shifts across
// timezones. Full ISO-8601 timestamps are accepted too and truncated to
// the local calendar day. Anything else is rejected.
func ParseCalendarDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	if t, err := time.ParseInLocation(DateLayout, value, time.Local); err == nil {
		return t, true
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return Midnight(t.Local()), true
	}

	return time.Time{}, false
}

// Midnight truncates a time to local midnight of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// DateKey formats a date as a zero-padded YYYY-MM-DD string, stable for
// map lookups in the calendar grid.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}
