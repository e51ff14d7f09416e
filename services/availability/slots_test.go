package availability

import (
	"reflect"
	"testing"
	"time"

	"bookerly/models"
)

func mondayTemplate(ranges ...models.TimeRange) *models.WeeklyTemplate {
	return &models.WeeklyTemplate{
		ID:   "tpl-1",
		Name: "weekday mornings",
		Days: map[string][]models.TimeRange{"monday": ranges},
	}
}

// 2025-01-06 is a Monday.
var monday = time.Date(2025, 1, 6, 0, 0, 0, 0, time.Local)

func TestGenerateSlots_SplitsRangeIntoHalfHours(t *testing.T) {
	tpl := mondayTemplate(models.TimeRange{Start: "09:00", End: "10:00"})

	slots := GenerateSlots(tpl, monday, 30)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].StartTime != "09:00" || slots[0].EndTime != "09:30" {
		t.Fatalf("unexpected first slot: %+v", slots[0])
	}
	if slots[1].StartTime != "09:30" || slots[1].EndTime != "10:00" {
		t.Fatalf("unexpected second slot: %+v", slots[1])
	}
}

func TestGenerateSlots_DropsPartialRemainder(t *testing.T) {
	tpl := mondayTemplate(models.TimeRange{Start: "09:00", End: "09:50"})

	slots := GenerateSlots(tpl, monday, 30)
	if len(slots) != 1 {
		t.Fatalf("expected remainder to be dropped, got %d slots", len(slots))
	}
	if slots[0].EndTime != "09:30" {
		t.Fatalf("expected slot to end at 09:30, got %s", slots[0].EndTime)
	}
}

func TestGenerateSlots_EveryDurationExact(t *testing.T) {
	tpl := mondayTemplate(
		models.TimeRange{Start: "08:00", End: "12:15"},
		models.TimeRange{Start: "14:00", End: "17:00"},
	)

	for _, slot := range GenerateSlots(tpl, monday, 30) {
		start, err := models.ParseClock(slot.StartTime)
		if err != nil {
			t.Fatalf("bad start %q: %v", slot.StartTime, err)
		}
		end, err := models.ParseClock(slot.EndTime)
		if err != nil {
			t.Fatalf("bad end %q: %v", slot.EndTime, err)
		}
		if end-start != 30*time.Minute {
			t.Fatalf("slot %s-%s is not 30 minutes", slot.StartTime, slot.EndTime)
		}
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	tpl := mondayTemplate(
		models.TimeRange{Start: "09:00", End: "11:00"},
		models.TimeRange{Start: "13:00", End: "14:00"},
	)

	first := GenerateSlots(tpl, monday, 30)
	second := GenerateSlots(tpl, monday, 30)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated generation diverged:\n%v\n%v", first, second)
	}
}

func TestGenerateSlots_StableIdentifiers(t *testing.T) {
	tpl := mondayTemplate(models.TimeRange{Start: "09:00", End: "10:00"})

	slots := GenerateSlots(tpl, monday, 30)
	if slots[0].ID != "2025-01-06T09:00" {
		t.Fatalf("unexpected slot id %q", slots[0].ID)
	}
	if slots[0].ID != SlotID("2025-01-06", "09:00") {
		t.Fatalf("id does not match SlotID helper")
	}
}

func TestGenerateSlots_DayWithoutEntries(t *testing.T) {
	tpl := mondayTemplate(models.TimeRange{Start: "09:00", End: "10:00"})

	tuesday := monday.AddDate(0, 0, 1)
	if slots := GenerateSlots(tpl, tuesday, 30); len(slots) != 0 {
		t.Fatalf("expected no slots on an unconfigured day, got %d", len(slots))
	}
}

func TestGenerateSlots_IgnoresInvertedRange(t *testing.T) {
	tpl := mondayTemplate(models.TimeRange{Start: "10:00", End: "09:00"})

	if slots := GenerateSlots(tpl, monday, 30); len(slots) != 0 {
		t.Fatalf("expected inverted range to yield nothing, got %d", len(slots))
	}
}
