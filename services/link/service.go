// File: services/link/service.go
package link

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookerly/database/repository"
	linkRepo "bookerly/database/repository/link"
	templateRepo "bookerly/database/repository/template"
	"bookerly/models"
)

// defaultSlotMinutes is the slot length every link uses in this system.
const defaultSlotMinutes = 30

// LinkService manages booking links (admin), plus public resolution by slug.
type LinkService interface {
	Create(ctx context.Context, link *models.BookingLink) (*models.BookingLink, error)
	Get(ctx context.Context, id string) (*models.BookingLink, error)
	// ResolveSlug returns an active link for the public booking page.
	ResolveSlug(ctx context.Context, slug string) (*models.BookingLink, error)
	Update(ctx context.Context, link *models.BookingLink) (*models.BookingLink, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.BookingLink, error)
}

// DefaultLinkService is the concrete implementation.
type DefaultLinkService struct {
	Repo      linkRepo.LinkRepository
	Templates templateRepo.TemplateRepository
}

func (s *DefaultLinkService) Create(ctx context.Context, link *models.BookingLink) (*models.BookingLink, error) {
	if err := validateLink(link); err != nil {
		return nil, err
	}
	// Creation requires the template to exist; later template deletion may
	// still leave the reference dangling, which the read path tolerates.
	if _, err := s.Templates.GetByID(ctx, link.TemplateID); err != nil {
		return nil, fmt.Errorf("template %s: %w", link.TemplateID, err)
	}

	link.ID = uuid.New().String()
	if link.Slug == "" {
		link.Slug = slugify(link.Title) + "-" + link.ID[:8]
	}
	if link.SlotDurationMinutes == 0 {
		link.SlotDurationMinutes = defaultSlotMinutes
	}
	link.IsActive = true
	now := time.Now()
	link.CreatedAt = now
	link.UpdatedAt = now

	if err := s.Repo.Create(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to create booking link: %w", err)
	}
	return link, nil
}

func (s *DefaultLinkService) Get(ctx context.Context, id string) (*models.BookingLink, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultLinkService) ResolveSlug(ctx context.Context, slug string) (*models.BookingLink, error) {
	link, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !link.IsActive {
		// Inactive links are invisible to the public page.
		return nil, fmt.Errorf("booking link %s is inactive: %w", slug, repository.ErrNotFound)
	}
	return link, nil
}

// Update rewrites the link, including deactivation via IsActive=false.
func (s *DefaultLinkService) Update(ctx context.Context, link *models.BookingLink) (*models.BookingLink, error) {
	if err := validateLink(link); err != nil {
		return nil, err
	}
	existing, err := s.Repo.GetByID(ctx, link.ID)
	if err != nil {
		return nil, err
	}
	link.Slug = existing.Slug
	link.CreatedAt = existing.CreatedAt
	if link.SlotDurationMinutes == 0 {
		link.SlotDurationMinutes = existing.SlotDurationMinutes
	}
	link.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to update booking link: %w", err)
	}
	return link, nil
}

func (s *DefaultLinkService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultLinkService) List(ctx context.Context) ([]models.BookingLink, error) {
	return s.Repo.List(ctx)
}

func validateLink(link *models.BookingLink) error {
	if link.Title == "" {
		return fmt.Errorf("link title is required")
	}
	if link.TemplateID == "" {
		return fmt.Errorf("templateId is required")
	}
	if link.AdvanceHours < 0 {
		return fmt.Errorf("advanceHours must be >= 0")
	}
	return nil
}

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
