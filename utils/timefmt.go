package utils

import (
	"fmt"
	"time"
)

const clockLayout = "15:04"

// ParseClock parses an "HH:MM" 24h wall-clock value.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: must be HH:MM", s)
	}
	return t, nil
}

// NormalizeClock reformats a clock value to zero-padded "HH:MM" so that
// stored times compare consistently.
func NormalizeClock(s string) (string, error) {
	t, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	return t.Format(clockLayout), nil
}

// ClockAMPM renders an "HH:MM" value for display, e.g. "13:30" -> "01:30 PM".
// Invalid input is returned unchanged.
func ClockAMPM(s string) string {
	t, err := ParseClock(s)
	if err != nil {
		return s
	}
	return t.Format("03:04 PM")
}

// ParseDate parses a "YYYY-MM-DD" calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: must be YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate renders a date for user-facing messages, e.g. "January 05, 2026".
func FormatDate(t time.Time) string {
	return t.Format("January 02, 2006")
}
