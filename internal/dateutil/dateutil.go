// Package dateutil owns the calendar arithmetic the rest of the application
// builds on: wall-date and wall-time parsing, week and month stepping, and
// the week-start policy math. Wall values carry no timezone; they are
// represented as UTC instants so comparisons stay zone-free.
package dateutil

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidTime = errors.New("invalid time")
)

// ParseDate parses a canonical "YYYY-MM-DD" wall date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ParseClock parses a canonical 24-hour "HH:MM" time of day as an offset
// from midnight.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// Combine joins a wall date and a wall time into a single instant. An empty
// clock means midnight.
func Combine(date, clock string) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	if clock == "" {
		return d, nil
	}
	off, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(off), nil
}

// FormatDate renders t back into the canonical wall-date form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports day-level equality.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// AddDays steps by whole calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysInMonth returns the length of the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonthsClamp steps t forward by whole calendar months, clamping the day
// to the end of the target month when it is shorter: Jan 31 + 1 month is
// Feb 29 in a leap year, Feb 28 otherwise. The clamp is taken from t's own
// day-of-month every call, so stepping Jan 31 by 2 lands on Mar 31, not on
// a date derived from the clamped February.
func AddMonthsClamp(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	first = first.AddDate(0, months, 0)
	day := t.Day()
	if max := DaysInMonth(first.Year(), first.Month()); day > max {
		day = max
	}
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), 0, t.Location())
}

// StartOfMonth returns the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the first day of the week containing t under the given
// policy. With a Monday start, Sunday counts as the last day of the previous
// week and shifts back six days.
func StartOfWeek(t time.Time, mondayStart bool) time.Time {
	wd := int(t.Weekday()) // Sunday is 0
	if mondayStart {
		if wd == 0 {
			return AddDays(t, -6)
		}
		return AddDays(t, -(wd - 1))
	}
	return AddDays(t, -wd)
}
