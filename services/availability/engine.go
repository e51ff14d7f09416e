// File: services/availability/engine.go
package availability

import (
	"context"
	"fmt"
	"time"

	"bookerly/models"
)

// dayExcluded applies the day-granularity filters: blackout days and the
// booking cutoff. The cutoff date itself is still bookable (end-of-day
// inclusive); only strictly later dates are excluded. Dates are fixed-width
// ISO strings, so string comparison is chronological.
func dayExcluded(tpl *models.WeeklyTemplate, date string) bool {
	if tpl.IsBlackout(date) {
		return true
	}
	if tpl.BookingCutoffDate != "" && date > tpl.BookingCutoffDate {
		return true
	}
	return false
}

// isPast reports whether date falls strictly before the current calendar day
// (local midnight).
func isPast(date time.Time, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return date.Before(today)
}

// meetsAdvanceNotice applies the advance-notice window for a single slot.
// A no-op when the link does not require advance booking.
func meetsAdvanceNotice(link *models.BookingLink, slotStart time.Time, now time.Time) bool {
	if !link.RequireAdvanceBooking {
		return true
	}
	required := time.Duration(link.AdvanceHours * float64(time.Hour))
	return slotStart.Sub(now) >= required
}

// resolve fetches the link and its template. A dangling template reference
// surfaces as a plain not-found error, never a panic.
func (s *DefaultAvailabilityService) resolve(ctx context.Context, linkID string) (*models.BookingLink, *models.WeeklyTemplate, error) {
	link, err := s.Links.GetByID(ctx, linkID)
	if err != nil {
		return nil, nil, fmt.Errorf("booking link %s: %w", linkID, err)
	}
	tpl, err := s.Templates.GetByID(ctx, link.TemplateID)
	if err != nil {
		return nil, nil, fmt.Errorf("template %s for link %s: %w", link.TemplateID, linkID, err)
	}
	return link, tpl, nil
}

// MonthAvailability runs the day summary for every day of the calendar month
// and returns them in order. TotalSlots counts the template's full capacity
// for the day; AvailableSlots counts what survives the booked and
// advance-notice filters.
func (s *DefaultAvailabilityService) MonthAvailability(ctx context.Context, linkID string, year, month int) ([]models.DayAvailability, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month %d", month)
	}
	if s.Cache != nil {
		if days, ok := s.Cache.Get(ctx, linkID, year, month); ok {
			return days, nil
		}
	}

	link, tpl, err := s.resolve(ctx, linkID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.Bookings.ListForLinkAndMonth(ctx, linkID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	bookedByDate := make(map[string]map[string]bool)
	for _, b := range bookings {
		if bookedByDate[b.Date] == nil {
			bookedByDate[b.Date] = make(map[string]bool)
		}
		bookedByDate[b.Date][b.Time] = true
	}

	now := s.now().Now()
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]models.DayAvailability, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := first.AddDate(0, 0, d-1)
		dateStr := date.Format(models.DateLayout)

		if dayExcluded(tpl, dateStr) || isPast(date, now) {
			days = append(days, models.DayAvailability{Date: dateStr})
			continue
		}

		slots := GenerateSlots(tpl, date, link.SlotDurationMinutes)
		open := filterSlots(slots, date, bookedByDate[dateStr], link, now)
		days = append(days, models.DayAvailability{
			Date:           dateStr,
			Available:      len(open) > 0,
			TotalSlots:     len(slots),
			AvailableSlots: len(open),
		})
	}

	if s.Cache != nil {
		s.Cache.Set(ctx, linkID, year, month, days)
	}
	return days, nil
}

// AvailableTimeSlots returns the open slots for one day. An excluded or past
// day yields an empty list rather than an error.
func (s *DefaultAvailabilityService) AvailableTimeSlots(ctx context.Context, linkID, date string) ([]models.GeneratedSlot, error) {
	day, err := models.ParseDate(date)
	if err != nil {
		return nil, err
	}

	link, tpl, err := s.resolve(ctx, linkID)
	if err != nil {
		return nil, err
	}

	now := s.now().Now()
	if dayExcluded(tpl, date) || isPast(day, now) {
		return []models.GeneratedSlot{}, nil
	}

	bookings, err := s.Bookings.ListForLinkAndDate(ctx, linkID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	booked := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		booked[b.Time] = true
	}

	slots := GenerateSlots(tpl, day, link.SlotDurationMinutes)
	return filterSlots(slots, day, booked, link, now), nil
}

// filterSlots applies the already-booked and advance-notice filters, in that
// order, preserving slot order.
func filterSlots(slots []models.GeneratedSlot, day time.Time, booked map[string]bool, link *models.BookingLink, now time.Time) []models.GeneratedSlot {
	open := make([]models.GeneratedSlot, 0, len(slots))
	for _, slot := range slots {
		if booked[slot.StartTime] {
			continue
		}
		offset, err := models.ParseClock(slot.StartTime)
		if err != nil {
			continue
		}
		if !meetsAdvanceNotice(link, day.Add(offset), now) {
			continue
		}
		open = append(open, slot)
	}
	return open
}
