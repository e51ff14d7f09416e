package link

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bookerly/database/repository"
	linkRepo "bookerly/database/repository/link"
	templateRepo "bookerly/database/repository/template"
	"bookerly/models"
)

func newService(t *testing.T) *DefaultLinkService {
	t.Helper()
	templates := templateRepo.NewMemoryTemplateRepo()
	if err := templates.Create(context.Background(), &models.WeeklyTemplate{
		ID:   "tpl-1",
		Name: "mornings",
		Days: map[string][]models.TimeRange{"monday": {{Start: "09:00", End: "10:00"}}},
	}); err != nil {
		t.Fatalf("seed template: %v", err)
	}
	return &DefaultLinkService{Repo: linkRepo.NewMemoryLinkRepo(), Templates: templates}
}

func TestCreate_DefaultsAndSlug(t *testing.T) {
	svc := newService(t)

	link, err := svc.Create(context.Background(), &models.BookingLink{
		Title:      "Intro Call (30 min)",
		TemplateID: "tpl-1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if link.SlotDurationMinutes != 30 {
		t.Fatalf("expected default slot duration, got %d", link.SlotDurationMinutes)
	}
	if !link.IsActive {
		t.Fatal("expected new links active")
	}
	// Slug is derived from the title plus an id fragment for uniqueness.
	if !strings.HasPrefix(link.Slug, "intro-call-30-min-") {
		t.Fatalf("unexpected slug %q", link.Slug)
	}
}

func TestCreate_UnknownTemplateRejected(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), &models.BookingLink{
		Title:      "orphan",
		TemplateID: "missing",
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveSlug(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	link, err := svc.Create(ctx, &models.BookingLink{Title: "intro call", TemplateID: "tpl-1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.ResolveSlug(ctx, link.Slug)
	if err != nil {
		t.Fatalf("ResolveSlug: %v", err)
	}
	if got.ID != link.ID {
		t.Fatalf("resolved %s, want %s", got.ID, link.ID)
	}

	// Deactivated links disappear from public resolution.
	link.IsActive = false
	if _, err := svc.Update(ctx, link); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, err := svc.ResolveSlug(ctx, link.Slug); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected inactive link hidden, got %v", err)
	}
}

func TestUpdate_PreservesSlug(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	link, err := svc.Create(ctx, &models.BookingLink{Title: "intro call", TemplateID: "tpl-1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	slug := link.Slug

	link.Title = "renamed call"
	updated, err := svc.Update(ctx, link)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Slug != slug {
		t.Fatalf("slug changed on update: %q -> %q", slug, updated.Slug)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Intro Call":        "intro-call",
		"  30 Min Chat  ":   "30-min-chat",
		"Café Catch-up!":    "caf-catch-up",
		"already-slugged":   "already-slugged",
		"under_score_title": "under-score-title",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
