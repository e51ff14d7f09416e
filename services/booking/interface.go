// File: services/booking/interface.go
package booking

import (
	"context"

	bookingRepo "bookerly/database/repository/booking"
	"bookerly/models"
	"bookerly/services/availability"
	"bookerly/services/notify"
)

// CreateBookingRequest carries everything needed to commit a booking.
type CreateBookingRequest struct {
	BookingLinkID string `json:"bookingLinkId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Notes         string `json:"notes"`
}

// BookingService covers the public booking lifecycle: commit, self-service
// lookup, cancel, and reschedule via the cancellation token.
type BookingService interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	GetByCancelToken(ctx context.Context, token string) (*models.Booking, error)
	CancelBooking(ctx context.Context, token string) (*models.Booking, error)
	RescheduleBooking(ctx context.Context, token, newDate, newTime string) (*models.Booking, error)
}

// DefaultBookingService is the concrete implementation.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	Availability availability.AvailabilityService
	Cache        availability.MonthCache // optional, invalidated on every commit
	Notifier     notify.Notifier         // optional
}
