// File: services/availability/interface.go
package availability

import (
	"context"

	bookingRepo "bookerly/database/repository/booking"
	linkRepo "bookerly/database/repository/link"
	templateRepo "bookerly/database/repository/template"
	"bookerly/models"
)

// SlotValidation is the successful outcome of a validation: it carries the
// resolved link and template so the caller can proceed to the atomic insert
// without re-fetching either.
type SlotValidation struct {
	Link     *models.BookingLink
	Template *models.WeeklyTemplate
}

// AvailabilityService computes availability views and validates candidate
// slots for a booking link.
type AvailabilityService interface {
	// MonthAvailability returns one summary per calendar day, ordered.
	MonthAvailability(ctx context.Context, linkID string, year, month int) ([]models.DayAvailability, error)
	// AvailableTimeSlots returns the open slots for one day, ordered.
	AvailableTimeSlots(ctx context.Context, linkID, date string) ([]models.GeneratedSlot, error)
	// ValidateSlot re-runs the generation checks against one candidate
	// (date, time) pair. The check is advisory: the storage layer still
	// performs its own atomic slot-free check at insert time.
	ValidateSlot(ctx context.Context, linkID, date, clock string) (*SlotValidation, error)
	// ValidateSlotExcluding behaves like ValidateSlot but ignores a booking
	// that already holds the slot, for reschedule flows where the booking
	// being moved may target its own current slot.
	ValidateSlotExcluding(ctx context.Context, linkID, date, clock, ignoreBookingID string) (*SlotValidation, error)
}

// MonthCache caches month-availability views. Implementations may be nil-safe
// no-ops; the default is Redis-backed with a short TTL.
type MonthCache interface {
	Get(ctx context.Context, linkID string, year, month int) ([]models.DayAvailability, bool)
	Set(ctx context.Context, linkID string, year, month int, days []models.DayAvailability)
	Invalidate(ctx context.Context, linkID string)
}

// DefaultAvailabilityService is the concrete implementation. It holds no
// state between requests; every call is a pure function of the fetched data
// and the clock.
type DefaultAvailabilityService struct {
	Links     linkRepo.LinkRepository
	Templates templateRepo.TemplateRepository
	Bookings  bookingRepo.BookingRepository
	Clock     Clock
	Cache     MonthCache // optional
}

func (s *DefaultAvailabilityService) now() Clock {
	if s.Clock == nil {
		return SystemClock()
	}
	return s.Clock
}
