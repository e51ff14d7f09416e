// File: database/repository/link/interface.go
package linkRepo

import (
	"context"

	"bookerly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type LinkRepository interface {
	Create(ctx context.Context, link *models.BookingLink) error
	GetByID(ctx context.Context, id string) (*models.BookingLink, error)
	GetBySlug(ctx context.Context, slug string) (*models.BookingLink, error)
	Update(ctx context.Context, link *models.BookingLink) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.BookingLink, error)
}

type mongoLinkRepo struct {
	coll *mongo.Collection
}

// NewMongoLinkRepo constructs a MongoDB-backed LinkRepository.
func NewMongoLinkRepo(db *mongo.Database) LinkRepository {
	return &mongoLinkRepo{coll: db.Collection("bookingLinks")}
}
