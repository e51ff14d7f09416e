// File: database/repository/template/memory.go
package templateRepo

import (
	"context"
	"sort"
	"sync"

	"bookerly/database/repository"
	"bookerly/models"
)

// memoryTemplateRepo is an in-process adapter with the same semantics as the
// Mongo one. It backs tests and single-node deployments without a database.
type memoryTemplateRepo struct {
	mu        sync.RWMutex
	templates map[string]models.WeeklyTemplate
}

// NewMemoryTemplateRepo constructs an in-memory TemplateRepository.
func NewMemoryTemplateRepo() TemplateRepository {
	return &memoryTemplateRepo{templates: make(map[string]models.WeeklyTemplate)}
}

func (r *memoryTemplateRepo) Create(ctx context.Context, tpl *models.WeeklyTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[tpl.ID] = *tpl
	return nil
}

func (r *memoryTemplateRepo) GetByID(ctx context.Context, id string) (*models.WeeklyTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tpl, ok := r.templates[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &tpl, nil
}

func (r *memoryTemplateRepo) Update(ctx context.Context, tpl *models.WeeklyTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[tpl.ID]; !ok {
		return repository.ErrNotFound
	}
	r.templates[tpl.ID] = *tpl
	return nil
}

func (r *memoryTemplateRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.templates, id)
	return nil
}

func (r *memoryTemplateRepo) List(ctx context.Context) ([]models.WeeklyTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.WeeklyTemplate, 0, len(r.templates))
	for _, tpl := range r.templates {
		out = append(out, tpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
