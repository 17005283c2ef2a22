package schedule

import (
	"reflect"
	"testing"

	"github.com/timely-app/timely/internal/domain"
)

func rule(start, end string, step domain.RecurrenceType) domain.RecurrenceRule {
	return domain.RecurrenceRule{
		Title:     "Standup",
		StartDate: start,
		Time:      "09:00",
		Duration:  15,
		Type:      step,
		EndDate:   end,
	}
}

func expandDates(t *testing.T, r domain.RecurrenceRule) []string {
	t.Helper()
	events, err := Expand(r, "recurring-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dates := make([]string, 0, len(events))
	for _, ev := range events {
		dates = append(dates, ev.Date)
	}
	return dates
}

func TestExpandDaily(t *testing.T) {
	got := expandDates(t, rule("2024-03-04", "2024-03-07", domain.RecurDaily))
	want := []string{"2024-03-04", "2024-03-05", "2024-03-06", "2024-03-07"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("daily expansion = %v, want %v", got, want)
	}
}

func TestExpandDailySingleDay(t *testing.T) {
	// End date equal to the start date is inclusive: exactly one occurrence.
	got := expandDates(t, rule("2024-03-04", "2024-03-04", domain.RecurDaily))
	if len(got) != 1 || got[0] != "2024-03-04" {
		t.Fatalf("expected single occurrence, got %v", got)
	}
}

func TestExpandEndBeforeStart(t *testing.T) {
	events, err := Expand(rule("2024-03-04", "2024-03-01", domain.RecurDaily), "recurring-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty expansion, got %d occurrences", len(events))
	}
}

func TestExpandWeekly(t *testing.T) {
	got := expandDates(t, rule("2024-03-04", "2024-03-25", domain.RecurWeekly))
	want := []string{"2024-03-04", "2024-03-11", "2024-03-18", "2024-03-25"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("weekly expansion = %v, want %v", got, want)
	}
}

func TestExpandMonthlyClampsShortMonths(t *testing.T) {
	// Jan 31 clamps into February but keeps the day-31 anchor afterwards:
	// one occurrence per month through the end date.
	got := expandDates(t, rule("2024-01-31", "2024-04-30", domain.RecurMonthly))
	want := []string{"2024-01-31", "2024-02-29", "2024-03-31", "2024-04-30"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("monthly expansion = %v, want %v", got, want)
	}
}

func TestExpandTagsEveryOccurrence(t *testing.T) {
	events, err := Expand(rule("2024-03-04", "2024-03-06", domain.RecurDaily), "recurring-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, ev := range events {
		if ev.RecurringID != "recurring-7" {
			t.Fatalf("occurrence %s has group %q", ev.Date, ev.RecurringID)
		}
		if ev.RecurringType != domain.RecurDaily {
			t.Fatalf("occurrence %s has type %q", ev.Date, ev.RecurringType)
		}
		if ev.ID != "" {
			t.Fatalf("expander must not assign event ids, got %q", ev.ID)
		}
		if ev.Title != "Standup" || ev.Time != "09:00" || ev.Duration != 15 {
			t.Fatalf("base fields not carried over: %+v", ev)
		}
	}
}

func TestExpandDeterministic(t *testing.T) {
	r := rule("2024-01-31", "2024-06-30", domain.RecurMonthly)
	first, err := Expand(r, "recurring-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Expand(r, "recurring-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expansion must be reproducible for identical inputs")
	}
}

func TestExpandUnknownType(t *testing.T) {
	if _, err := Expand(rule("2024-03-04", "2024-03-07", "hourly"), "recurring-1"); err == nil {
		t.Fatal("expected error for unknown recurrence type")
	}
}

func TestExpandRunawayRange(t *testing.T) {
	if _, err := Expand(rule("2024-01-01", "2100-01-01", domain.RecurDaily), "recurring-1"); err == nil {
		t.Fatal("expected error for expansion above the occurrence cap")
	}
}
