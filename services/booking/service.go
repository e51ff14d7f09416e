// File: services/booking/service.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookerly/database/repository"
	"bookerly/models"
	"bookerly/services/availability"
)

// Rejection reasons for the self-service flows.
const (
	ReasonAlreadyCancelled = "this booking has already been cancelled"
)

// CreateBooking validates the candidate slot and commits it. The validation
// is advisory; the repository's conditional insert is the authoritative
// slot-free check, and the loser of a concurrent race gets the same
// already-booked rejection the pre-check would have produced.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	if _, err := s.Availability.ValidateSlot(ctx, req.BookingLinkID, req.Date, req.Time); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &models.Booking{
		ID:            uuid.New().String(),
		BookingLinkID: req.BookingLinkID,
		Date:          req.Date,
		Time:          req.Time,
		Name:          req.Name,
		Email:         req.Email,
		Notes:         req.Notes,
		Status:        models.BookingStatusConfirmed,
		CancelToken:   uuid.New().String(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.InsertIfSlotFree(ctx, b); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, availability.Reject(availability.ReasonAlreadyBooked)
		}
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	s.invalidate(ctx, b.BookingLinkID)
	s.enqueueNotifications(ctx, b)
	return b, nil
}

func (s *DefaultBookingService) GetByCancelToken(ctx context.Context, token string) (*models.Booking, error) {
	return s.Repo.GetByCancelToken(ctx, token)
}

// CancelBooking moves a confirmed booking to its terminal cancelled state.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, token string) (*models.Booking, error) {
	b, err := s.Repo.GetByCancelToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if b.IsCancelled() {
		return nil, availability.Reject(ReasonAlreadyCancelled)
	}

	if err := s.Repo.Cancel(ctx, b.ID); err != nil {
		return nil, fmt.Errorf("failed to cancel booking %s: %w", b.ID, err)
	}

	b.Status = models.BookingStatusCancelled
	b.UpdatedAt = time.Now()
	s.invalidate(ctx, b.BookingLinkID)
	return b, nil
}

// RescheduleBooking rewrites date+time on a confirmed booking. The new slot
// is validated while the old one is still held; the booking's own slot is
// excluded from the conflict check so a no-op reschedule is not rejected as
// already booked.
func (s *DefaultBookingService) RescheduleBooking(ctx context.Context, token, newDate, newTime string) (*models.Booking, error) {
	b, err := s.Repo.GetByCancelToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if b.IsCancelled() {
		return nil, availability.Reject(ReasonAlreadyCancelled)
	}

	if _, err := s.Availability.ValidateSlotExcluding(ctx, b.BookingLinkID, newDate, newTime, b.ID); err != nil {
		return nil, err
	}

	if err := s.Repo.RescheduleIfSlotFree(ctx, b.ID, newDate, newTime); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, availability.Reject(availability.ReasonAlreadyBooked)
		}
		return nil, fmt.Errorf("failed to reschedule booking %s: %w", b.ID, err)
	}

	b.Date = newDate
	b.Time = newTime
	b.UpdatedAt = time.Now()
	s.invalidate(ctx, b.BookingLinkID)
	s.enqueueNotifications(ctx, b)
	return b, nil
}

func (s *DefaultBookingService) invalidate(ctx context.Context, linkID string) {
	if s.Cache != nil {
		s.Cache.Invalidate(ctx, linkID)
	}
}

// enqueueNotifications schedules the confirmation and the pre-slot reminder.
// Delivery failures never fail the booking itself.
func (s *DefaultBookingService) enqueueNotifications(ctx context.Context, b *models.Booking) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.EnqueueConfirmation(ctx, b); err != nil {
		zap.L().Warn("failed to enqueue booking confirmation",
			zap.String("bookingId", b.ID), zap.Error(err))
	}
	if err := s.Notifier.EnqueueReminder(ctx, b); err != nil {
		zap.L().Warn("failed to enqueue booking reminder",
			zap.String("bookingId", b.ID), zap.Error(err))
	}
}
