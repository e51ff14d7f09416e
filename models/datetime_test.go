package models

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-06")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Weekday() != time.Monday {
		t.Fatalf("expected a Monday, got %s", d.Weekday())
	}

	for _, bad := range []string{"", "06-01-2025", "2025-1-6", "2025-01-32", "yesterday"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("expected ErrInvalidFormat for %q, got %v", bad, err)
		}
	}
}

func TestParseClock(t *testing.T) {
	d, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("ParseClock: %v", err)
	}
	if d != 9*time.Hour+30*time.Minute {
		t.Fatalf("unexpected offset %v", d)
	}

	for _, bad := range []string{"", "09:60", "25:00", "9am"} {
		if _, err := ParseClock(bad); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("expected ErrInvalidFormat for %q, got %v", bad, err)
		}
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, clock := range []string{"00:00", "09:30", "13:05", "23:30"} {
		d, err := ParseClock(clock)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", clock, err)
		}
		if got := FormatClock(d); got != clock {
			t.Fatalf("round trip %q -> %q", clock, got)
		}
	}
}

func TestWeekdayKey(t *testing.T) {
	if got := WeekdayKey(time.Monday); got != "monday" {
		t.Fatalf("WeekdayKey(Monday) = %q", got)
	}
	if got := WeekdayKey(time.Sunday); got != "sunday" {
		t.Fatalf("WeekdayKey(Sunday) = %q", got)
	}
}
