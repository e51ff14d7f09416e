// File: database/repository/template/interface.go
package templateRepo

import (
	"context"

	"bookerly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TemplateRepository interface {
	Create(ctx context.Context, tpl *models.WeeklyTemplate) error
	GetByID(ctx context.Context, id string) (*models.WeeklyTemplate, error)
	Update(ctx context.Context, tpl *models.WeeklyTemplate) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.WeeklyTemplate, error)
}

type mongoTemplateRepo struct {
	coll *mongo.Collection
}

// NewMongoTemplateRepo constructs a MongoDB-backed TemplateRepository.
func NewMongoTemplateRepo(db *mongo.Database) TemplateRepository {
	return &mongoTemplateRepo{coll: db.Collection("templates")}
}
