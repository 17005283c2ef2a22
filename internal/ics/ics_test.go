package ics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/timely-app/timely/internal/domain"
)

func TestExportStructure(t *testing.T) {
	events := []domain.Event{
		{ID: "1", Title: "Standup", Date: "2024-03-04", Time: "09:00", Duration: 30},
		{ID: "2", Title: "Gym", Date: "2024-03-04", Time: "18:00", Duration: 60,
			RecurringID: "recurring-5", RecurringType: domain.RecurWeekly},
	}

	var buf bytes.Buffer
	if err := Export(&buf, events); err != nil {
		t.Fatalf("export: %v", err)
	}
	out := buf.String()

	for _, field := range []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"UID:1@timely",
		"SUMMARY:Standup",
		"DTSTART:20240304T090000Z",
		"DTEND:20240304T093000Z",
		"X-TIMELY-RECURRING-ID:recurring-5",
		"X-TIMELY-RECURRING-TYPE:weekly",
		"END:VCALENDAR",
	} {
		if !strings.Contains(out, field) {
			t.Errorf("export missing %q", field)
		}
	}
}

func TestExportSkipsMalformedEvents(t *testing.T) {
	events := []domain.Event{
		{ID: "1", Title: "Broken", Date: "not-a-date", Time: "09:00"},
		{ID: "2", Title: "Fine", Date: "2024-03-04", Time: "10:00", Duration: 30},
	}

	var buf bytes.Buffer
	if err := Export(&buf, events); err != nil {
		t.Fatalf("export: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "Broken") {
		t.Error("malformed event must be skipped")
	}
	if !strings.Contains(out, "SUMMARY:Fine") {
		t.Error("valid event must survive")
	}
}

func TestExportParseRoundTrip(t *testing.T) {
	events := []domain.Event{
		{ID: "1", Title: "Standup", Date: "2024-03-04", Time: "09:00", Duration: 30},
	}

	var buf bytes.Buffer
	if err := Export(&buf, events); err != nil {
		t.Fatalf("export: %v", err)
	}

	imported, err := Parse(&buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(imported) != 1 {
		t.Fatalf("expected 1 event, got %d", len(imported))
	}
	got := imported[0]
	if got.Title != "Standup" || got.Date != "2024-03-04" || got.Time != "09:00" || got.Duration != 30 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Recurring {
		t.Fatal("plain occurrence must not import as recurring")
	}
}

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//other//client//EN
BEGIN:VEVENT
UID:abc@example.org
DTSTAMP:20240301T000000Z
DTSTART:20240304T090000Z
DTEND:20240304T091500Z
SUMMARY:Daily standup
RRULE:FREQ=DAILY;UNTIL=20240308T000000Z
END:VEVENT
BEGIN:VEVENT
UID:def@example.org
DTSTAMP:20240301T000000Z
DTSTART:20240306T140000Z
DTEND:20240306T150000Z
SUMMARY:Every second week
RRULE:FREQ=WEEKLY;INTERVAL=2;UNTIL=20240601T000000Z
END:VEVENT
END:VCALENDAR
`

func icsBody() string {
	return strings.ReplaceAll(sampleICS, "\n", "\r\n")
}

func TestParseMapsSimpleRRule(t *testing.T) {
	imported, err := Parse(strings.NewReader(icsBody()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(imported) != 2 {
		t.Fatalf("expected 2 events, got %d", len(imported))
	}

	daily := imported[0]
	if !daily.Recurring || daily.RecurringType != domain.RecurDaily {
		t.Fatalf("FREQ=DAILY must map to a daily step: %+v", daily)
	}
	if daily.RecurringEndDate != "2024-03-08" {
		t.Fatalf("UNTIL must become the end date, got %q", daily.RecurringEndDate)
	}
	if daily.Duration != 15 {
		t.Fatalf("duration = %d, want 15", daily.Duration)
	}

	// INTERVAL=2 has no step equivalent; falls back to a plain event.
	interval := imported[1]
	if interval.Recurring {
		t.Fatalf("unsupported rule must import as a plain event: %+v", interval)
	}
	if interval.Date != "2024-03-06" || interval.Time != "14:00" {
		t.Fatalf("fallback event mismatch: %+v", interval)
	}
}
