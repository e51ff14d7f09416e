package models

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ErrInvalidFormat marks malformed date/time strings. Format validation runs
// before any semantic checks.
var ErrInvalidFormat = errors.New("invalid format")

// ParseDate validates and parses a "YYYY-MM-DD" date string in local time.
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q, expected YYYY-MM-DD", ErrInvalidFormat, date)
	}
	return t, nil
}

// ParseClock validates a "HH:MM" 24-hour time string and returns the offset
// from midnight.
func ParseClock(clock string) (time.Duration, error) {
	t, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return 0, fmt.Errorf("%w: time %q, expected HH:MM", ErrInvalidFormat, clock)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// FormatClock renders an offset from midnight as "HH:MM".
func FormatClock(d time.Duration) string {
	minutes := int(d.Minutes())
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidDate reports whether date is a well-formed "YYYY-MM-DD" string.
func ValidDate(date string) bool {
	_, err := ParseDate(date)
	return err == nil
}

// ValidClock reports whether clock is a well-formed "HH:MM" string.
func ValidClock(clock string) bool {
	_, err := ParseClock(clock)
	return err == nil
}
