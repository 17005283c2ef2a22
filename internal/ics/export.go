// Package ics converts the event collection to and from iCalendar. Export
// writes one VEVENT per stored event; import maps simple RRULEs back onto
// the application's step recurrences and treats everything else as plain
// events.
package ics

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"github.com/timely-app/timely/internal/domain"
	"github.com/timely-app/timely/internal/schedule"
)

const productID = "-//timely//calendar//EN"

// Non-standard props carrying recurrence group membership; informational
// for other clients, not read back on import.
const (
	propRecurringID   = "X-TIMELY-RECURRING-ID"
	propRecurringType = "X-TIMELY-RECURRING-TYPE"
)

// Export writes the whole collection as a single VCALENDAR. Events with an
// unparseable date or time are skipped; an export must not fail because one
// stored row is damaged.
func Export(w io.Writer, events []domain.Event) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	now := time.Now().UTC()
	for _, ev := range events {
		start, end, err := schedule.EventRange(ev)
		if err != nil {
			continue
		}

		vevent := ical.NewEvent()
		vevent.Props.SetText(ical.PropUID, ev.ID+"@timely")
		vevent.Props.SetText(ical.PropSummary, ev.Title)
		vevent.Props.SetDateTime(ical.PropDateTimeStart, start.UTC())
		if end.After(start) {
			vevent.Props.SetDateTime(ical.PropDateTimeEnd, end.UTC())
		}
		vevent.Props.SetDateTime(ical.PropDateTimeStamp, now)
		if ev.IsRecurring() {
			// Set raw props: SetText would tag these non-standard names with
			// a redundant VALUE=TEXT parameter.
			vevent.Props.Set(&ical.Prop{Name: propRecurringID, Value: ev.RecurringID})
			vevent.Props.Set(&ical.Prop{Name: propRecurringType, Value: string(ev.RecurringType)})
		}

		cal.Children = append(cal.Children, vevent.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}
