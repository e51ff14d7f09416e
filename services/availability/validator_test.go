package availability

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bookerly/database/repository"
	"bookerly/models"
)

func rejectionReason(t *testing.T, err error) string {
	t.Helper()
	var policy *PolicyError
	if !errors.As(err, &policy) {
		t.Fatalf("expected PolicyError, got %v", err)
	}
	return policy.Reason
}

func TestValidateSlot_Accepts(t *testing.T) {
	tpl := mondayTemplate(models.TimeRange{Start: "09:00", End: "10:00"})
	f := newFixture(t, tpl, testLink(false, 0), mondayMorning)

	v, err := f.svc.ValidateSlot(context.Background(), "link-1", "2025-01-06", "09:30")
	if err != nil {
		t.Fatalf("ValidateSlot: %v", err)
	}
	// Acceptance carries the resolved link and template so the caller can
	// commit without re-fetching.
	if v.Link == nil || v.Link.ID != "link-1" {
		t.Fatalf("expected resolved link, got %+v", v.Link)
	}
	if v.Template == nil || v.Template.ID != "tpl-1" {
		t.Fatalf("expected resolved template, got %+v", v.Template)
	}
}

func TestValidateSlot_InactiveLink(t *testing.T) {
	tpl := mondayTemplate(models.TimeRange{Start: "09:00", End: "10:00"})
	link := testLink(false, 0)
	link.IsActive = false
	f := newFixture(t, tpl, link, mondayMorning)

	_, err := f.svc.ValidateSlot(context.Background(), "link-1", "2025-01-06", "09:00")
	if got := rejectionReason(t, err); got != ReasonLinkInactive {
		t.Fatalf("unexpected reason %q", got)
	}
}

func TestValidateSlot_PastDate(t *testing.T) {
	tpl := mondayTemplate(models.TimeRange{Start: "09:00", End: "10:00"})
	f := newFixture(t, tpl, testLink(false, 0), mondayMorning.AddDate(0, 0, 7))

	_, err := f.svc.ValidateSlot(context.Background(), "link-1", "2025-01-06", "09:00")
	if got := rejectionReason(t, err); got != ReasonPastDate {
		t.Fatalf("unexpected reason %q", got)
	}
}

func TestValidateSlot_BlackoutDate(t *testing.T) {
	tpl := mondayTemplate(models.TimeRange{Start: "09:00", End: "10:00"})
	tpl.BlackoutDays = []string{"2025-01-06"}
	f := newFixture(t, tpl, testLink(false, 0), mondayMorning)

	_, err := f.svc.ValidateSlot(context.Background(), "link-1", "2025-01-06", "09:00")
	if got := rejectionReason(t, err); got != ReasonDateExcluded {
		t.Fatalf("unexpected reason %q", got)
	}
}

func TestValidateSlot_UnalignedTime(t *testing.T) {
	tpl := mondayTemplate(models.TimeRange{Start: "09:00", End: "10:00"})
	f := newFixture(t, tpl, testLink(false, 0), mondayMorning)

	// 09:15 falls inside the range but is not a slot boundary.
	_, err := f.svc.ValidateSlot(context.Background(), "link-1", "2025-01-06", "09:15")
	if got := rejectionReason(t, err); got != ReasonNotInSchedule {
		t.Fatalf("unexpected reason %q", got)
	}
}

func TestValidateSlot_AlreadyBooked(t *testing.T) {
	tpl := mondayTemplate(models.TimeRange{Start: "09:00", End: "10:00"})
	f := newFixture(t, tpl, testLink(false, 0), mondayMorning)
	f.book(t, "2025-01-06", "09:00")

	_, err := f.svc.ValidateSlot(context.Background(), "link-1", "2025-01-06", "09:00")
	if got := rejectionReason(t, err); got != ReasonAlreadyBooked {
		t.Fatalf("unexpected reason %q", got)
	}
}

func TestValidateSlot_InsufficientNotice(t *testing.T) {
	tpl := mondayTemplate(models.TimeRange{Start: "09:00", End: "10:00"})
	f := newFixture(t, tpl, testLink(true, 24), mondayMorning)

	_, err := f.svc.ValidateSlot(context.Background(), "link-1", "2025-01-06", "09:30")
	if got := rejectionReason(t, err); !strings.Contains(got, "24 hours") {
		t.Fatalf("expected notice rejection naming the window, got %q", got)
	}
}

func TestValidateSlot_MalformedInputs(t *testing.T) {
	tpl := mondayTemplate(models.TimeRange{Start: "09:00", End: "10:00"})
	f := newFixture(t, tpl, testLink(false, 0), mondayMorning)

	if _, err := f.svc.ValidateSlot(context.Background(), "link-1", "06-01-2025", "09:00"); !errors.Is(err, models.ErrInvalidFormat) {
		t.Fatalf("expected format error for bad date, got %v", err)
	}
	if _, err := f.svc.ValidateSlot(context.Background(), "link-1", "2025-01-06", "9am"); !errors.Is(err, models.ErrInvalidFormat) {
		t.Fatalf("expected format error for bad time, got %v", err)
	}
}

func TestValidateSlot_DanglingTemplateReference(t *testing.T) {
	tpl := mondayTemplate(models.TimeRange{Start: "09:00", End: "10:00"})
	link := testLink(false, 0)
	link.TemplateID = "gone"
	f := newFixture(t, tpl, link, mondayMorning)

	_, err := f.svc.ValidateSlot(context.Background(), "link-1", "2025-01-06", "09:00")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not-found for dangling template, got %v", err)
	}
}

func TestValidateSlotExcluding_OwnBookingIgnored(t *testing.T) {
	tpl := mondayTemplate(models.TimeRange{Start: "09:00", End: "10:00"})
	f := newFixture(t, tpl, testLink(false, 0), mondayMorning)
	f.book(t, "2025-01-06", "09:00")

	// The booking seeded above has ID "bk-2025-01-06-09:00"; excluding it
	// makes its own slot validate clean, as the reschedule flow requires.
	if _, err := f.svc.ValidateSlotExcluding(context.Background(), "link-1", "2025-01-06", "09:00", "bk-2025-01-06-09:00"); err != nil {
		t.Fatalf("expected own slot to validate, got %v", err)
	}
}
