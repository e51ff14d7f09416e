package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"bookerly/database/repository"
	"bookerly/models"
)

func confirmed(id, linkID, date, tm string) *models.Booking {
	return &models.Booking{
		ID:            id,
		BookingLinkID: linkID,
		Date:          date,
		Time:          tm,
		Status:        models.BookingStatusConfirmed,
		CancelToken:   "tok-" + id,
	}
}

func TestInsertIfSlotFree_RejectsOccupiedSlot(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	if err := repo.InsertIfSlotFree(ctx, confirmed("a", "link-1", "2025-01-06", "09:00")); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	err := repo.InsertIfSlotFree(ctx, confirmed("b", "link-1", "2025-01-06", "09:00"))
	if !errors.Is(err, repository.ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	// Same time on a different link or date is an independent slot.
	if err := repo.InsertIfSlotFree(ctx, confirmed("c", "link-2", "2025-01-06", "09:00")); err != nil {
		t.Fatalf("other link: %v", err)
	}
	if err := repo.InsertIfSlotFree(ctx, confirmed("d", "link-1", "2025-01-07", "09:00")); err != nil {
		t.Fatalf("other date: %v", err)
	}
}

func TestInsertIfSlotFree_ConcurrentSingleWinner(t *testing.T) {
	repo := NewMemoryBookingRepo()

	const racers = 16
	errs := make([]error, racers)
	var wg sync.WaitGroup
	wg.Add(racers)
	for i := 0; i < racers; i++ {
		go func(i int) {
			defer wg.Done()
			b := confirmed(fmt.Sprintf("racer-%d", i), "link-1", "2025-01-06", "09:00")
			errs[i] = repo.InsertIfSlotFree(context.Background(), b)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, repository.ErrSlotTaken):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one winner, got %d", winners)
	}
}

func TestCancel_FreesSlotButKeepsRecord(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	if err := repo.InsertIfSlotFree(ctx, confirmed("a", "link-1", "2025-01-06", "09:00")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Cancel(ctx, "a"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// Cancelled bookings release the slot for new inserts.
	if err := repo.InsertIfSlotFree(ctx, confirmed("b", "link-1", "2025-01-06", "09:00")); err != nil {
		t.Fatalf("rebook after cancel: %v", err)
	}

	// The cancelled record survives for history.
	got, err := repo.GetByID(ctx, "a")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != models.BookingStatusCancelled {
		t.Fatalf("expected cancelled, got %q", got.Status)
	}

	// Cancel is not repeatable.
	if err := repo.Cancel(ctx, "a"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double cancel, got %v", err)
	}
}

func TestRescheduleIfSlotFree(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	if err := repo.InsertIfSlotFree(ctx, confirmed("a", "link-1", "2025-01-06", "09:00")); err != nil {
		t.Fatalf("insert a: %v", err)
	}
	if err := repo.InsertIfSlotFree(ctx, confirmed("b", "link-1", "2025-01-06", "09:30")); err != nil {
		t.Fatalf("insert b: %v", err)
	}

	// Moving onto another booking's slot is a conflict.
	if err := repo.RescheduleIfSlotFree(ctx, "a", "2025-01-06", "09:30"); !errors.Is(err, repository.ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
	// Moving onto its own slot is not.
	if err := repo.RescheduleIfSlotFree(ctx, "a", "2025-01-06", "09:00"); err != nil {
		t.Fatalf("reschedule onto own slot: %v", err)
	}
	// A real move updates the record and frees the old slot.
	if err := repo.RescheduleIfSlotFree(ctx, "a", "2025-01-06", "10:00"); err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	got, err := repo.GetByID(ctx, "a")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Date != "2025-01-06" || got.Time != "10:00" {
		t.Fatalf("unexpected slot after move: %s %s", got.Date, got.Time)
	}
	if err := repo.InsertIfSlotFree(ctx, confirmed("c", "link-1", "2025-01-06", "09:00")); err != nil {
		t.Fatalf("booking vacated slot: %v", err)
	}
}

func TestListForLinkAndDate_OrderedAndFiltered(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	for _, b := range []*models.Booking{
		confirmed("late", "link-1", "2025-01-06", "15:00"),
		confirmed("early", "link-1", "2025-01-06", "09:00"),
		confirmed("other-day", "link-1", "2025-01-07", "09:00"),
		confirmed("other-link", "link-2", "2025-01-06", "09:00"),
	} {
		if err := repo.InsertIfSlotFree(ctx, b); err != nil {
			t.Fatalf("insert %s: %v", b.ID, err)
		}
	}
	if err := repo.Cancel(ctx, "late"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	got, err := repo.ListForLinkAndDate(ctx, "link-1", "2025-01-06")
	if err != nil {
		t.Fatalf("ListForLinkAndDate: %v", err)
	}
	if len(got) != 1 || got[0].ID != "early" {
		t.Fatalf("unexpected listing: %+v", got)
	}
}

func TestListForLinkAndMonth(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	for _, b := range []*models.Booking{
		confirmed("jan-2", "link-1", "2025-01-20", "09:00"),
		confirmed("jan-1", "link-1", "2025-01-06", "09:00"),
		confirmed("feb", "link-1", "2025-02-03", "09:00"),
	} {
		if err := repo.InsertIfSlotFree(ctx, b); err != nil {
			t.Fatalf("insert %s: %v", b.ID, err)
		}
	}

	got, err := repo.ListForLinkAndMonth(ctx, "link-1", 2025, 1)
	if err != nil {
		t.Fatalf("ListForLinkAndMonth: %v", err)
	}
	if len(got) != 2 || got[0].ID != "jan-1" || got[1].ID != "jan-2" {
		t.Fatalf("unexpected month listing: %+v", got)
	}
}

func TestGetByCancelToken(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	if err := repo.InsertIfSlotFree(ctx, confirmed("a", "link-1", "2025-01-06", "09:00")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := repo.GetByCancelToken(ctx, "tok-a")
	if err != nil {
		t.Fatalf("GetByCancelToken: %v", err)
	}
	if got.ID != "a" {
		t.Fatalf("token resolved to %s", got.ID)
	}
	if _, err := repo.GetByCancelToken(ctx, "tok-missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
