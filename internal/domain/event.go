package domain

// RecurrenceType is the step used to generate occurrences of a recurring event.
type RecurrenceType string

const (
	RecurDaily   RecurrenceType = "daily"
	RecurWeekly  RecurrenceType = "weekly"
	RecurMonthly RecurrenceType = "monthly"
)

// Valid reports whether t is one of the known recurrence steps.
func (t RecurrenceType) Valid() bool {
	switch t {
	case RecurDaily, RecurWeekly, RecurMonthly:
		return true
	}
	return false
}

// Event is a single calendar entry. Date and Time are wall values with no
// timezone attached: Date is "YYYY-MM-DD", Time is 24-hour "HH:MM" (empty
// means midnight). Duration is in minutes; zero yields a zero-width range
// that never conflicts with anything.
type Event struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	Duration int    `json:"duration"`

	// RecurringID groups occurrences generated from one recurrence request.
	// RecurringType records the step that produced them. Both are empty on
	// standalone events.
	RecurringID   string         `json:"recurringId,omitempty"`
	RecurringType RecurrenceType `json:"recurringType,omitempty"`
}

// IsRecurring reports whether the event belongs to a recurrence group.
func (e *Event) IsRecurring() bool {
	return e.RecurringID != ""
}

// EventPatch is a partial edit of an event. Nil fields are left unchanged.
// ID, RecurringID and RecurringType are not patchable: identity is stable
// and group membership is only ever assigned at expansion time.
type EventPatch struct {
	Title    *string `json:"title,omitempty"`
	Date     *string `json:"date,omitempty"`
	Time     *string `json:"time,omitempty"`
	Duration *int    `json:"duration,omitempty"`
}

// Apply merges the patch into e.
func (p EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Duration != nil {
		e.Duration = *p.Duration
	}
}

// RecurrenceRule drives occurrence generation. It is transient: only the
// generated events persist, never the rule itself.
type RecurrenceRule struct {
	Title     string
	StartDate string
	Time      string
	Duration  int
	Type      RecurrenceType
	EndDate   string
}
