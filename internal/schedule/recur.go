package schedule

import (
	"fmt"

	"github.com/timely-app/timely/internal/dateutil"
	"github.com/timely-app/timely/internal/domain"
)

// maxOccurrences caps a single expansion so a runaway end date cannot
// produce an unbounded batch.
const maxOccurrences = 1000

// Expand materializes a recurrence rule into concrete occurrences, one per
// step from the rule's start date through its end date inclusive. Every
// occurrence carries the given group id and the rule's step type; none has
// an event id yet — the store assigns those on insert.
//
// The result is deterministic for identical inputs. An end date before the
// start date yields an empty slice, not an error. Monthly stepping clamps
// to the end of shorter months while keeping the start's day-of-month as
// the anchor, so Jan 31 steps through Feb 29 (leap) and back to Mar 31.
func Expand(rule domain.RecurrenceRule, groupID string) ([]domain.Event, error) {
	if !rule.Type.Valid() {
		return nil, fmt.Errorf("unknown recurrence type %q", rule.Type)
	}
	start, err := dateutil.ParseDate(rule.StartDate)
	if err != nil {
		return nil, fmt.Errorf("recurrence start: %w", err)
	}
	end, err := dateutil.ParseDate(rule.EndDate)
	if err != nil {
		return nil, fmt.Errorf("recurrence end: %w", err)
	}

	var out []domain.Event
	for i := 0; ; i++ {
		var cur = start
		switch rule.Type {
		case domain.RecurDaily:
			cur = dateutil.AddDays(start, i)
		case domain.RecurWeekly:
			cur = dateutil.AddDays(start, 7*i)
		case domain.RecurMonthly:
			cur = dateutil.AddMonthsClamp(start, i)
		}
		if cur.After(end) {
			break
		}
		if len(out) >= maxOccurrences {
			return nil, fmt.Errorf("recurrence from %s to %s exceeds %d occurrences",
				rule.StartDate, rule.EndDate, maxOccurrences)
		}
		out = append(out, domain.Event{
			Title:         rule.Title,
			Date:          dateutil.FormatDate(cur),
			Time:          rule.Time,
			Duration:      rule.Duration,
			RecurringID:   groupID,
			RecurringType: rule.Type,
		})
	}
	return out, nil
}
