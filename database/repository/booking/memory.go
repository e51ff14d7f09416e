// File: database/repository/booking/memory.go
package bookingRepo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"bookerly/database/repository"
	"bookerly/models"
)

// memoryBookingRepo mirrors the Mongo adapter's semantics in process memory.
// The mutex stands in for the unique index: slot checks and writes happen
// under one critical section, so concurrent inserts race safely.
type memoryBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking // keyed by booking ID
}

// NewMemoryBookingRepo constructs an in-memory BookingRepository.
func NewMemoryBookingRepo() BookingRepository {
	return &memoryBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *memoryBookingRepo) slotHolder(linkID, date, tm string) (string, bool) {
	for id, b := range r.bookings {
		if b.BookingLinkID == linkID && b.Date == date && b.Time == tm && !b.IsCancelled() {
			return id, true
		}
	}
	return "", false
}

func (r *memoryBookingRepo) InsertIfSlotFree(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.slotHolder(booking.BookingLinkID, booking.Date, booking.Time); taken {
		return repository.ErrSlotTaken
	}
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *memoryBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (r *memoryBookingRepo) GetByCancelToken(ctx context.Context, token string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.CancelToken == token {
			out := b
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryBookingRepo) ListForLinkAndDate(ctx context.Context, linkID, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.BookingLinkID == linkID && b.Date == date && !b.IsCancelled() {
			out = append(out, b)
		}
	}
	sortBookings(out)
	return out, nil
}

func (r *memoryBookingRepo) ListForLinkAndMonth(ctx context.Context, linkID string, year, month int) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BookingLinkID == linkID && strings.HasPrefix(b.Date, prefix) && !b.IsCancelled() {
			out = append(out, b)
		}
	}
	sortBookings(out)
	return out, nil
}

func (r *memoryBookingRepo) Cancel(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok || b.IsCancelled() {
		return repository.ErrNotFound
	}
	b.Status = models.BookingStatusCancelled
	b.UpdatedAt = time.Now()
	r.bookings[id] = b
	return nil
}

func (r *memoryBookingRepo) RescheduleIfSlotFree(ctx context.Context, id, newDate, newTime string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok || b.IsCancelled() {
		return repository.ErrNotFound
	}
	if holder, taken := r.slotHolder(b.BookingLinkID, newDate, newTime); taken && holder != id {
		return repository.ErrSlotTaken
	}
	b.Date = newDate
	b.Time = newTime
	b.UpdatedAt = time.Now()
	r.bookings[id] = b
	return nil
}

func sortBookings(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date < bookings[j].Date
		}
		return bookings[i].Time < bookings[j].Time
	})
}
