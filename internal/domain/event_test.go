package domain

import (
	"encoding/json"
	"testing"
)

func TestEventJSONRoundTrip(t *testing.T) {
	original := Event{
		ID:            "42",
		Title:         "Gym",
		Date:          "2024-03-04",
		Time:          "18:00",
		Duration:      60,
		RecurringID:   "recurring-7",
		RecurringType: RecurWeekly,
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored Event
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if restored != original {
		t.Fatalf("round trip changed the event: %+v", restored)
	}
}

func TestEventJSONOmitsEmptyRecurrence(t *testing.T) {
	data, err := json.Marshal(Event{ID: "1", Title: "Solo", Date: "2024-03-04", Duration: 30})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"recurringId", "recurringType", "time"} {
		if _, present := m[key]; present {
			t.Errorf("empty %s must be omitted", key)
		}
	}
}

func TestEventPatchApply(t *testing.T) {
	ev := Event{ID: "1", Title: "Standup", Date: "2024-03-04", Time: "09:00", Duration: 15}

	title := "Standup (moved)"
	clock := "10:00"
	patch := EventPatch{Title: &title, Time: &clock}
	patch.Apply(&ev)

	if ev.Title != title || ev.Time != clock {
		t.Fatalf("patched fields not applied: %+v", ev)
	}
	if ev.Date != "2024-03-04" || ev.Duration != 15 || ev.ID != "1" {
		t.Fatalf("unpatched fields must be untouched: %+v", ev)
	}
}
