// File: database/repository/link/crud.go
package linkRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookerly/database/repository"
	"bookerly/models"
)

func (r *mongoLinkRepo) Create(ctx context.Context, link *models.BookingLink) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, link)
	return err
}

func (r *mongoLinkRepo) GetByID(ctx context.Context, id string) (*models.BookingLink, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoLinkRepo) GetBySlug(ctx context.Context, slug string) (*models.BookingLink, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *mongoLinkRepo) findOne(ctx context.Context, filter bson.M) (*models.BookingLink, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var link models.BookingLink
	err := r.coll.FindOne(ctx, filter).Decode(&link)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *mongoLinkRepo) Update(ctx context.Context, link *models.BookingLink) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": link.ID}, link)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoLinkRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoLinkRepo) List(ctx context.Context) ([]models.BookingLink, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var links []models.BookingLink
	if err := cursor.All(ctx, &links); err != nil {
		return nil, err
	}
	return links, nil
}
