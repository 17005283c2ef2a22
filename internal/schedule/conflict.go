// Package schedule holds the pure calendar logic: conflict detection,
// recurrence expansion and the month/year grid math. Nothing in here
// mutates state or touches storage.
package schedule

import (
	"time"

	"github.com/timely-app/timely/internal/dateutil"
	"github.com/timely-app/timely/internal/domain"
)

// EventRange computes the half-open [start, end) span an event occupies on
// its wall date. Malformed date or time strings surface as dateutil errors.
func EventRange(ev domain.Event) (start, end time.Time, err error) {
	start, err = dateutil.Combine(ev.Date, ev.Time)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end = start.Add(time.Duration(ev.Duration) * time.Minute)
	return start, end, nil
}

// Overlaps reports whether two half-open ranges intersect. Touching
// endpoints do not count, and an empty range never overlaps anything.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	if !aStart.Before(aEnd) || !bStart.Before(bEnd) {
		return false
	}
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// HasConflict reports whether the candidate's time range overlaps any event
// in events on the same wall date. The event whose id equals ignoreID is
// skipped, so an event being edited never conflicts with its own previous
// version. Events on other dates are never compared: conflict detection is
// deliberately same-day only.
//
// The error is non-nil only when the candidate itself is malformed. Stored
// events that fail to parse are skipped, not propagated; they cannot
// meaningfully overlap anything.
func HasConflict(candidate domain.Event, events []domain.Event, ignoreID string) (bool, error) {
	cStart, cEnd, err := EventRange(candidate)
	if err != nil {
		return false, err
	}
	for _, ev := range events {
		if ignoreID != "" && ev.ID == ignoreID {
			continue
		}
		if ev.Date != candidate.Date {
			continue
		}
		s, e, err := EventRange(ev)
		if err != nil {
			continue
		}
		if Overlaps(s, e, cStart, cEnd) {
			return true, nil
		}
	}
	return false, nil
}
