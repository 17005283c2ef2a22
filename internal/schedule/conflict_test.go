package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/timely-app/timely/internal/dateutil"
	"github.com/timely-app/timely/internal/domain"
)

func ev(id, date, clock string, duration int) domain.Event {
	return domain.Event{ID: id, Title: "t", Date: date, Time: clock, Duration: duration}
}

func TestHasConflict(t *testing.T) {
	tests := []struct {
		name      string
		candidate domain.Event
		existing  []domain.Event
		ignoreID  string
		want      bool
	}{
		{
			name:      "overlap on same day",
			candidate: ev("", "2024-03-04", "09:15", 30),
			existing:  []domain.Event{ev("1", "2024-03-04", "09:00", 30)},
			want:      true,
		},
		{
			name:      "candidate contains existing",
			candidate: ev("", "2024-03-04", "08:00", 240),
			existing:  []domain.Event{ev("1", "2024-03-04", "09:00", 30)},
			want:      true,
		},
		{
			name:      "disjoint ranges",
			candidate: ev("", "2024-03-04", "11:00", 30),
			existing:  []domain.Event{ev("1", "2024-03-04", "09:00", 30)},
			want:      false,
		},
		{
			name:      "touching endpoints do not conflict",
			candidate: ev("", "2024-03-04", "09:30", 30),
			existing:  []domain.Event{ev("1", "2024-03-04", "09:00", 30)},
			want:      false,
		},
		{
			name:      "different dates never conflict",
			candidate: ev("", "2024-03-05", "09:00", 30),
			existing:  []domain.Event{ev("1", "2024-03-04", "09:00", 30)},
			want:      false,
		},
		{
			name:      "zero duration candidate never conflicts",
			candidate: ev("", "2024-03-04", "09:10", 0),
			existing:  []domain.Event{ev("1", "2024-03-04", "09:00", 30)},
			want:      false,
		},
		{
			name:      "zero duration existing never conflicts",
			candidate: ev("", "2024-03-04", "09:00", 30),
			existing:  []domain.Event{ev("1", "2024-03-04", "09:10", 0)},
			want:      false,
		},
		{
			name:      "ignored id is skipped",
			candidate: ev("1", "2024-03-04", "09:00", 30),
			existing:  []domain.Event{ev("1", "2024-03-04", "09:00", 30)},
			ignoreID:  "1",
			want:      false,
		},
		{
			name:      "empty time defaults to midnight",
			candidate: ev("", "2024-03-04", "", 30),
			existing:  []domain.Event{ev("1", "2024-03-04", "00:15", 30)},
			want:      true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HasConflict(tc.candidate, tc.existing, tc.ignoreID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("HasConflict = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHasConflictSymmetric(t *testing.T) {
	a := ev("a", "2024-03-04", "09:00", 30)
	b := ev("b", "2024-03-04", "09:15", 30)

	ab, err := HasConflict(a, []domain.Event{b}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ba, err := HasConflict(b, []domain.Event{a}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ab || !ba {
		t.Fatalf("overlap must be symmetric, got %v and %v", ab, ba)
	}
}

func TestHasConflictMalformedCandidate(t *testing.T) {
	_, err := HasConflict(ev("", "not-a-date", "09:00", 30), nil, "")
	if !errors.Is(err, dateutil.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestEventRange(t *testing.T) {
	start, end, err := EventRange(ev("1", "2024-03-04", "09:00", 90))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := end.Sub(start); got != 90*time.Minute {
		t.Fatalf("unexpected span %v", got)
	}
	if start.Hour() != 9 || start.Minute() != 0 {
		t.Fatalf("unexpected start %v", start)
	}
}
