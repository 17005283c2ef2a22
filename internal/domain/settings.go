package domain

// TimeFormat selects how times of day are rendered at the UI boundary.
// Storage and comparison always use the canonical 24-hour "HH:MM" form.
type TimeFormat string

const (
	Time12h TimeFormat = "12h"
	Time24h TimeFormat = "24h"
)

// DateFormat selects how dates are rendered at the UI boundary.
// Storage and comparison always use the canonical "YYYY-MM-DD" form.
type DateFormat string

const (
	DateMDY DateFormat = "MM/DD/YYYY"
	DateDMY DateFormat = "DD/MM/YYYY"
	DateISO DateFormat = "YYYY-MM-DD"
)

// Settings are the user preferences the views read. They are explicit
// parameters everywhere in the core; nothing reads them from ambient state.
type Settings struct {
	StartWeekMonday bool       `json:"startWeekMonday"`
	Timezone        string     `json:"timezone"`
	TimeFormat      TimeFormat `json:"timeFormat"`
	DateFormat      DateFormat `json:"dateFormat"`
	Theme           string     `json:"theme"`
}

// DefaultSettings mirrors the defaults a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		StartWeekMonday: false,
		Timezone:        "UTC",
		TimeFormat:      Time12h,
		DateFormat:      DateMDY,
		Theme:           "light",
	}
}

// Normalize replaces unknown format values with the defaults so that
// imported or hand-edited settings cannot break formatting.
func (s *Settings) Normalize() {
	switch s.TimeFormat {
	case Time12h, Time24h:
	default:
		s.TimeFormat = Time12h
	}
	switch s.DateFormat {
	case DateMDY, DateDMY, DateISO:
	default:
		s.DateFormat = DateMDY
	}
	if s.Timezone == "" {
		s.Timezone = "UTC"
	}
	if s.Theme != "dark" {
		s.Theme = "light"
	}
}
