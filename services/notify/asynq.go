// File: services/notify/asynq.go
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"bookerly/config"
	"bookerly/models"
)

// reminderLead is how long before the slot start the reminder fires.
const reminderLead = 24 * time.Hour

// AsynqNotifier enqueues notification tasks onto the Redis-backed queue
// consumed by the cron worker.
type AsynqNotifier struct {
	client *asynq.Client
}

// NewAsynqNotifier builds a notifier using the configured Redis queue.
func NewAsynqNotifier() *AsynqNotifier {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &AsynqNotifier{client: client}
}

// Close releases the underlying queue client.
func (n *AsynqNotifier) Close() error {
	return n.client.Close()
}

func (n *AsynqNotifier) EnqueueConfirmation(ctx context.Context, b *models.Booking) error {
	payload, err := json.Marshal(PayloadFor(b))
	if err != nil {
		return err
	}
	_, err = n.client.EnqueueContext(ctx, asynq.NewTask(TypeBookingConfirmation, payload))
	if err != nil {
		return fmt.Errorf("failed to enqueue confirmation: %w", err)
	}
	return nil
}

func (n *AsynqNotifier) EnqueueReminder(ctx context.Context, b *models.Booking) error {
	day, err := models.ParseDate(b.Date)
	if err != nil {
		return err
	}
	offset, err := models.ParseClock(b.Time)
	if err != nil {
		return err
	}
	fireAt := day.Add(offset).Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(PayloadFor(b))
	if err != nil {
		return err
	}
	_, err = n.client.EnqueueContext(ctx, asynq.NewTask(TypeBookingReminder, payload),
		asynq.ProcessAt(fireAt))
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
