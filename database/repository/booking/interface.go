// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"bookerly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the storage contract for bookings. InsertIfSlotFree
// and RescheduleIfSlotFree are the only writes that touch the slot-uniqueness
// invariant and both must be atomic: the loser of a concurrent race gets
// repository.ErrSlotTaken.
type BookingRepository interface {
	InsertIfSlotFree(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByCancelToken(ctx context.Context, token string) (*models.Booking, error)
	// ListForLinkAndDate returns non-cancelled bookings only, ordered by time.
	ListForLinkAndDate(ctx context.Context, linkID, date string) ([]models.Booking, error)
	ListForLinkAndMonth(ctx context.Context, linkID string, year, month int) ([]models.Booking, error)
	Cancel(ctx context.Context, id string) error
	RescheduleIfSlotFree(ctx context.Context, id, newDate, newTime string) error
}

type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB-backed BookingRepository. Callers
// should run EnsureIndexes once at startup; the partial unique index is what
// makes InsertIfSlotFree atomic.
func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{coll: db.Collection("bookings")}
}
