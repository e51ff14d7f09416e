// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookerly/database/repository"
	"bookerly/models"
)

// InsertIfSlotFree inserts the booking. The partial unique index rejects the
// write with a duplicate-key error when a confirmed booking already holds the
// same (bookingLinkId, date, time), which we surface as ErrSlotTaken.
func (r *MongoBookingRepo) InsertIfSlotFree(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, booking)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoBookingRepo) GetByCancelToken(ctx context.Context, token string) (*models.Booking, error) {
	return r.findOne(ctx, bson.M{"cancelToken": token})
}

func (r *MongoBookingRepo) findOne(ctx context.Context, filter bson.M) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, filter).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *MongoBookingRepo) ListForLinkAndDate(ctx context.Context, linkID, date string) ([]models.Booking, error) {
	filter := bson.M{
		"bookingLinkId": linkID,
		"date":          date,
		"status":        bson.M{"$ne": models.BookingStatusCancelled},
	}
	return r.find(ctx, filter)
}

func (r *MongoBookingRepo) ListForLinkAndMonth(ctx context.Context, linkID string, year, month int) ([]models.Booking, error) {
	// Dates are fixed-width YYYY-MM-DD strings, so lexicographic range
	// comparison matches chronological order.
	from := fmt.Sprintf("%04d-%02d-01", year, month)
	to := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, 0).Format(models.DateLayout)

	filter := bson.M{
		"bookingLinkId": linkID,
		"date":          bson.M{"$gte": from, "$lt": to},
		"status":        bson.M{"$ne": models.BookingStatusCancelled},
	}
	return r.find(ctx, filter)
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	sortOpt := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, sortOpt)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Cancel marks a confirmed booking cancelled. Cancellation is terminal;
// cancelling an already-cancelled booking reports ErrNotFound.
func (r *MongoBookingRepo) Cancel(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.BookingStatusConfirmed}
	update := bson.M{"$set": bson.M{
		"status":    models.BookingStatusCancelled,
		"updatedAt": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// RescheduleIfSlotFree rewrites date+time on a confirmed booking. The unique
// index guards the update the same way it guards inserts, so the old slot is
// held until the rewrite commits.
func (r *MongoBookingRepo) RescheduleIfSlotFree(ctx context.Context, id, newDate, newTime string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.BookingStatusConfirmed}
	update := bson.M{"$set": bson.M{
		"date":      newDate,
		"time":      newTime,
		"updatedAt": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("failed to reschedule booking: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
