// File: services/availability/slots.go
package availability

import (
	"time"

	"bookerly/models"
)

// SlotID builds the deterministic identifier for a generated slot. Repeated
// generations for the same (date, start) always produce the same ID, so
// external callers can reference slots idempotently.
func SlotID(date, startTime string) string {
	return date + "T" + startTime
}

// GenerateSlots expands the template's time ranges for the given date into
// fixed-length slots. Each range is walked forward in slotMinutes increments;
// a remainder shorter than a full slot at the end of a range is dropped, not
// rounded. The result is a pure function of its inputs.
func GenerateSlots(tpl *models.WeeklyTemplate, date time.Time, slotMinutes int) []models.GeneratedSlot {
	if slotMinutes <= 0 {
		return nil
	}
	step := time.Duration(slotMinutes) * time.Minute
	dateStr := date.Format(models.DateLayout)

	var slots []models.GeneratedSlot
	for _, rng := range tpl.RangesFor(date) {
		start, err := models.ParseClock(rng.Start)
		if err != nil {
			continue
		}
		end, err := models.ParseClock(rng.End)
		if err != nil || end <= start {
			continue
		}
		for cur := start; cur+step <= end; cur += step {
			startClock := models.FormatClock(cur)
			slots = append(slots, models.GeneratedSlot{
				ID:        SlotID(dateStr, startClock),
				StartTime: startClock,
				EndTime:   models.FormatClock(cur + step),
			})
		}
	}
	return slots
}
