// File: services/template/service.go
package template

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	templateRepo "bookerly/database/repository/template"
	"bookerly/models"
)

var weekdayKeys = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// TemplateService manages weekly availability templates (admin only).
type TemplateService interface {
	Create(ctx context.Context, tpl *models.WeeklyTemplate) (*models.WeeklyTemplate, error)
	Get(ctx context.Context, id string) (*models.WeeklyTemplate, error)
	Update(ctx context.Context, tpl *models.WeeklyTemplate) (*models.WeeklyTemplate, error)
	// Delete removes the template without touching links that reference it;
	// dangling references are tolerated on the read path.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.WeeklyTemplate, error)
}

// DefaultTemplateService is the concrete implementation.
type DefaultTemplateService struct {
	Repo templateRepo.TemplateRepository
}

func (s *DefaultTemplateService) Create(ctx context.Context, tpl *models.WeeklyTemplate) (*models.WeeklyTemplate, error) {
	if err := validateTemplate(tpl); err != nil {
		return nil, err
	}
	tpl.ID = uuid.New().String()
	now := time.Now()
	tpl.CreatedAt = now
	tpl.UpdatedAt = now
	if err := s.Repo.Create(ctx, tpl); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return tpl, nil
}

func (s *DefaultTemplateService) Get(ctx context.Context, id string) (*models.WeeklyTemplate, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultTemplateService) Update(ctx context.Context, tpl *models.WeeklyTemplate) (*models.WeeklyTemplate, error) {
	if err := validateTemplate(tpl); err != nil {
		return nil, err
	}
	existing, err := s.Repo.GetByID(ctx, tpl.ID)
	if err != nil {
		return nil, err
	}
	tpl.CreatedAt = existing.CreatedAt
	tpl.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, tpl); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return tpl, nil
}

func (s *DefaultTemplateService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultTemplateService) List(ctx context.Context) ([]models.WeeklyTemplate, error) {
	return s.Repo.List(ctx)
}

// validateTemplate checks weekday keys, range ordering, and date formats
// before anything reaches storage.
func validateTemplate(tpl *models.WeeklyTemplate) error {
	if tpl.Name == "" {
		return fmt.Errorf("template name is required")
	}
	for day, ranges := range tpl.Days {
		if !weekdayKeys[day] {
			return fmt.Errorf("unknown weekday %q", day)
		}
		for _, rng := range ranges {
			start, err := models.ParseClock(rng.Start)
			if err != nil {
				return err
			}
			end, err := models.ParseClock(rng.End)
			if err != nil {
				return err
			}
			if end <= start {
				return fmt.Errorf("range %s-%s on %s: start must precede end", rng.Start, rng.End, day)
			}
		}
	}
	for _, d := range tpl.BlackoutDays {
		if !models.ValidDate(d) {
			return fmt.Errorf("invalid blackout day %q, expected YYYY-MM-DD", d)
		}
	}
	if tpl.BookingCutoffDate != "" && !models.ValidDate(tpl.BookingCutoffDate) {
		return fmt.Errorf("invalid cutoff date %q, expected YYYY-MM-DD", tpl.BookingCutoffDate)
	}
	return nil
}
