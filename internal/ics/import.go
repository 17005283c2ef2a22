package ics

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"

	"github.com/timely-app/timely/internal/dateutil"
	"github.com/timely-app/timely/internal/domain"
)

// ImportedEvent is one creation request recovered from an ICS document.
// A VEVENT whose RRULE maps onto a plain daily/weekly/monthly step with an
// UNTIL bound comes back as a recurring request; everything else is a
// single event at its DTSTART.
type ImportedEvent struct {
	Title    string
	Date     string
	Time     string
	Duration int

	Recurring        bool
	RecurringType    domain.RecurrenceType
	RecurringEndDate string
}

// Parse reads every VEVENT from an ICS stream. Components without a usable
// DTSTART are skipped rather than failing the whole import.
func Parse(r io.Reader) ([]ImportedEvent, error) {
	dec := ical.NewDecoder(r)

	var out []ImportedEvent
	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			if ev, ok := parseEvent(comp); ok {
				out = append(out, ev)
			}
		}
	}
	return out, nil
}

func parseEvent(comp *ical.Component) (ImportedEvent, bool) {
	var ev ImportedEvent

	prop := comp.Props.Get(ical.PropDateTimeStart)
	if prop == nil {
		return ev, false
	}
	start, err := prop.DateTime(time.UTC)
	if err != nil {
		return ev, false
	}
	ev.Date = dateutil.FormatDate(start)
	if clock := start.Format(dateutil.ClockLayout); clock != "00:00" {
		ev.Time = clock
	}

	if prop := comp.Props.Get(ical.PropSummary); prop != nil {
		ev.Title = prop.Value
	}

	if prop := comp.Props.Get(ical.PropDateTimeEnd); prop != nil {
		if end, err := prop.DateTime(time.UTC); err == nil && end.After(start) {
			ev.Duration = int(end.Sub(start) / time.Minute)
		}
	}

	if prop := comp.Props.Get(ical.PropRecurrenceRule); prop != nil {
		if stepType, until, ok := mapRRule(prop.Value); ok {
			ev.Recurring = true
			ev.RecurringType = stepType
			ev.RecurringEndDate = dateutil.FormatDate(until)
		}
	}

	return ev, true
}

// mapRRule maps an RRULE string onto a step recurrence. Only single-step
// DAILY/WEEKLY/MONTHLY rules bounded by UNTIL qualify; BYxxx refinements,
// COUNT bounds and larger intervals fall back to a plain event.
func mapRRule(raw string) (domain.RecurrenceType, time.Time, bool) {
	opt, err := rrule.StrToROption(raw)
	if err != nil {
		return "", time.Time{}, false
	}
	if opt.Interval > 1 || opt.Count > 0 || opt.Until.IsZero() {
		return "", time.Time{}, false
	}
	if len(opt.Byweekday) > 0 || len(opt.Bymonthday) > 0 || len(opt.Bymonth) > 0 ||
		len(opt.Bysetpos) > 0 || len(opt.Byyearday) > 0 {
		return "", time.Time{}, false
	}

	switch opt.Freq {
	case rrule.DAILY:
		return domain.RecurDaily, opt.Until, true
	case rrule.WEEKLY:
		return domain.RecurWeekly, opt.Until, true
	case rrule.MONTHLY:
		return domain.RecurMonthly, opt.Until, true
	}
	return "", time.Time{}, false
}
