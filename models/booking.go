package models

import "time"

// Booking statuses. A cancelled booking is terminal and can never be
// resurrected or rescheduled.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a confirmed booking record. At most one booking with
// status != cancelled may exist per (bookingLinkId, date, time); the storage
// layer enforces this with a conditional write.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	BookingLinkID string    `bson:"bookingLinkId" json:"bookingLinkId"`
	Date          string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time          string    `bson:"time" json:"time"` // "HH:MM", slot start
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status        string    `bson:"status" json:"status"`
	CancelToken   string    `bson:"cancelToken" json:"-"` // self-service cancel/reschedule secret
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsCancelled reports whether the booking reached its terminal state.
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}
