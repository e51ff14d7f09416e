// File: services/notify/interface.go
package notify

import (
	"context"

	"bookerly/models"
)

// Task type names shared between the enqueuing side and the worker.
const (
	TypeBookingConfirmation = "booking:confirmation"
	TypeBookingReminder     = "booking:reminder"
)

// Payload is the wire form of a booking notification task.
type Payload struct {
	BookingID string `json:"bookingId"`
	LinkID    string `json:"linkId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// Notifier schedules booking notifications. Enqueue failures are logged by
// callers and never block the booking flow.
type Notifier interface {
	EnqueueConfirmation(ctx context.Context, b *models.Booking) error
	// EnqueueReminder schedules a reminder ahead of the slot start; bookings
	// too close to their slot get no reminder.
	EnqueueReminder(ctx context.Context, b *models.Booking) error
}

// PayloadFor builds the task payload for a booking.
func PayloadFor(b *models.Booking) Payload {
	return Payload{
		BookingID: b.ID,
		LinkID:    b.BookingLinkID,
		Date:      b.Date,
		Time:      b.Time,
		Name:      b.Name,
		Email:     b.Email,
	}
}
