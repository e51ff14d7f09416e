// File: database/repository/link/memory.go
package linkRepo

import (
	"context"
	"sort"
	"sync"

	"bookerly/database/repository"
	"bookerly/models"
)

type memoryLinkRepo struct {
	mu    sync.RWMutex
	links map[string]models.BookingLink
}

// NewMemoryLinkRepo constructs an in-memory LinkRepository.
func NewMemoryLinkRepo() LinkRepository {
	return &memoryLinkRepo{links: make(map[string]models.BookingLink)}
}

func (r *memoryLinkRepo) Create(ctx context.Context, link *models.BookingLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.links[link.ID] = *link
	return nil
}

func (r *memoryLinkRepo) GetByID(ctx context.Context, id string) (*models.BookingLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	link, ok := r.links[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &link, nil
}

func (r *memoryLinkRepo) GetBySlug(ctx context.Context, slug string) (*models.BookingLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, link := range r.links {
		if link.Slug == slug {
			l := link
			return &l, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryLinkRepo) Update(ctx context.Context, link *models.BookingLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.links[link.ID]; !ok {
		return repository.ErrNotFound
	}
	r.links[link.ID] = *link
	return nil
}

func (r *memoryLinkRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.links[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.links, id)
	return nil
}

func (r *memoryLinkRepo) List(ctx context.Context) ([]models.BookingLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.BookingLink, 0, len(r.links))
	for _, link := range r.links {
		out = append(out, link)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
