package models

import "time"

// TimeRange is a start/end time-of-day pair within a single calendar day.
// Both values are "HH:MM" 24-hour strings with start < end.
type TimeRange struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// WeeklyTemplate is a named weekly recurring availability pattern: one ordered
// list of time ranges per weekday, plus optional blackout days and a cutoff
// date after which no slots are ever generated.
type WeeklyTemplate struct {
	ID                string                 `bson:"id" json:"id"`
	Name              string                 `bson:"name" json:"name"`
	Days              map[string][]TimeRange `bson:"days" json:"days"`                                       // keyed by lowercase weekday name
	BlackoutDays      []string               `bson:"blackoutDays,omitempty" json:"blackoutDays,omitempty"`   // "YYYY-MM-DD"
	BookingCutoffDate string                 `bson:"bookingCutoffDate,omitempty" json:"bookingCutoffDate,omitempty"` // inclusive, "YYYY-MM-DD"
	CreatedAt         time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time              `bson:"updatedAt" json:"updatedAt"`
}

// WeekdayKey returns the template map key for a weekday ("monday".."sunday").
func WeekdayKey(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}

// IsBlackout reports whether date is listed in the template's blackout days.
func (t *WeeklyTemplate) IsBlackout(date string) bool {
	for _, d := range t.BlackoutDays {
		if d == date {
			return true
		}
	}
	return false
}

// RangesFor returns the ordered time ranges configured for the given date's
// weekday. A day with no entry yields no slots.
func (t *WeeklyTemplate) RangesFor(date time.Time) []TimeRange {
	return t.Days[WeekdayKey(date.Weekday())]
}
