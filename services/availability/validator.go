// File: services/availability/validator.go
package availability

import (
	"context"
	"fmt"

	"bookerly/models"
)

// ValidateSlot re-derives the generation checks for a single candidate
// (date, time) pair. It closes the UX race between "show available slots" and
// "commit a booking", but it is advisory only: the storage layer's
// conditional write is what actually prevents a double booking.
func (s *DefaultAvailabilityService) ValidateSlot(ctx context.Context, linkID, date, clock string) (*SlotValidation, error) {
	return s.ValidateSlotExcluding(ctx, linkID, date, clock, "")
}

// ValidateSlotExcluding validates the candidate slot while treating the
// booking identified by ignoreBookingID as absent. Reschedules pass the
// booking being moved so its current slot does not block the check.
func (s *DefaultAvailabilityService) ValidateSlotExcluding(ctx context.Context, linkID, date, clock, ignoreBookingID string) (*SlotValidation, error) {
	// Format checks come before any semantic checks.
	day, err := models.ParseDate(date)
	if err != nil {
		return nil, err
	}
	if _, err := models.ParseClock(clock); err != nil {
		return nil, err
	}

	link, tpl, err := s.resolve(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if !link.IsActive {
		return nil, Reject(ReasonLinkInactive)
	}

	now := s.now().Now()
	if isPast(day, now) {
		return nil, Reject(ReasonPastDate)
	}
	if dayExcluded(tpl, date) {
		return nil, Reject(ReasonDateExcluded)
	}

	// The requested time must align exactly with a generated slot boundary;
	// arbitrary times are rejected even when they fall inside a range.
	var matched bool
	for _, slot := range GenerateSlots(tpl, day, link.SlotDurationMinutes) {
		if slot.StartTime == clock {
			matched = true
			break
		}
	}
	if !matched {
		return nil, Reject(ReasonNotInSchedule)
	}

	bookings, err := s.Bookings.ListForLinkAndDate(ctx, linkID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	for _, b := range bookings {
		if b.Time == clock && b.ID != ignoreBookingID {
			return nil, Reject(ReasonAlreadyBooked)
		}
	}

	offset, _ := models.ParseClock(clock)
	if !meetsAdvanceNotice(link, day.Add(offset), now) {
		return nil, RejectNotice(link.AdvanceHours)
	}

	return &SlotValidation{Link: link, Template: tpl}, nil
}
