package models

// GeneratedSlot is an ephemeral, derived 30-minute bookable interval computed
// from a template range. It is never persisted; the ID is deterministic over
// (date, start time) so repeated generations reference the same slot.
type GeneratedSlot struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
}

// DayAvailability summarizes one calendar day for the month view.
// TotalSlots counts every slot the template generates for the day;
// AvailableSlots counts the ones that survive the booked and advance-notice
// filters. The asymmetry (capacity vs. currently bookable) is intentional.
type DayAvailability struct {
	Date           string `json:"date"`
	Available      bool   `json:"available"`
	TotalSlots     int    `json:"totalSlots"`
	AvailableSlots int    `json:"availableSlots"`
}
