// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"bookerly/config"
	bookingRepo "bookerly/database/repository/booking"
	"bookerly/models"
	"bookerly/services/notify"
)

// Sender delivers a rendered notification. Actual email/SMS transport is an
// external collaborator; the default implementation logs the delivery.
type Sender interface {
	SendConfirmation(ctx context.Context, p notify.Payload) error
	SendReminder(ctx context.Context, p notify.Payload) error
}

// LogSender is the default Sender.
type LogSender struct{}

func (LogSender) SendConfirmation(ctx context.Context, p notify.Payload) error {
	zap.L().Info("booking confirmed",
		zap.String("bookingId", p.BookingID),
		zap.String("email", p.Email),
		zap.String("date", p.Date),
		zap.String("time", p.Time))
	return nil
}

func (LogSender) SendReminder(ctx context.Context, p notify.Payload) error {
	zap.L().Info("booking reminder due",
		zap.String("bookingId", p.BookingID),
		zap.String("email", p.Email),
		zap.String("date", p.Date),
		zap.String("time", p.Time))
	return nil
}

// NotificationWorker consumes booking notification tasks from the queue.
type NotificationWorker struct {
	srv      *asynq.Server
	Bookings bookingRepo.BookingRepository
	Sender   Sender
}

// NewNotificationWorker builds the worker against the configured Redis queue.
func NewNotificationWorker(bookings bookingRepo.BookingRepository, sender Sender) *NotificationWorker {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues:      map[string]int{"default": 1},
		},
	)
	return &NotificationWorker{srv: srv, Bookings: bookings, Sender: sender}
}

// Start runs the worker until Shutdown. Blocking; callers run it in a
// goroutine.
func (w *NotificationWorker) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(notify.TypeBookingConfirmation, w.handleConfirmation)
	mux.HandleFunc(notify.TypeBookingReminder, w.handleReminder)
	return w.srv.Run(mux)
}

// Shutdown stops the worker and waits for in-flight tasks.
func (w *NotificationWorker) Shutdown() {
	w.srv.Shutdown()
}

func (w *NotificationWorker) handleConfirmation(ctx context.Context, task *asynq.Task) error {
	var p notify.Payload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		zap.L().Error("invalid confirmation payload", zap.Error(err))
		return err
	}
	return w.Sender.SendConfirmation(ctx, p)
}

// handleReminder re-checks the booking before delivering: a reminder for a
// booking cancelled or rescheduled after enqueueing is dropped silently.
func (w *NotificationWorker) handleReminder(ctx context.Context, task *asynq.Task) error {
	var p notify.Payload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		zap.L().Error("invalid reminder payload", zap.Error(err))
		return err
	}

	b, err := w.Bookings.GetByID(ctx, p.BookingID)
	if err != nil {
		zap.L().Warn("reminder for unknown booking, dropping", zap.String("bookingId", p.BookingID))
		return nil
	}
	if b.Status != models.BookingStatusConfirmed || b.Date != p.Date || b.Time != p.Time {
		return nil
	}
	return w.Sender.SendReminder(ctx, p)
}
