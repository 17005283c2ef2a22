package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatClock renders a canonical "HH:MM" time for display. Unparseable
// input is returned unchanged rather than dropped.
func FormatClock(clock string, f TimeFormat) string {
	if clock == "" {
		return ""
	}
	if f == Time24h {
		return clock
	}
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return clock
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return clock
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%s %s", hour, parts[1], ampm)
}

// FormatWallDate renders a canonical "YYYY-MM-DD" date for display.
func FormatWallDate(date string, f DateFormat) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	switch f {
	case DateDMY:
		return t.Format("02/01/2006")
	case DateISO:
		return t.Format("2006-01-02")
	default:
		return t.Format("01/02/2006")
	}
}

// To24Hour converts a "H:MM AM/PM" string to canonical "HH:MM". Input that
// carries no AM/PM marker is assumed canonical already.
func To24Hour(clock string) string {
	if clock == "" {
		return ""
	}
	upper := strings.ToUpper(clock)
	if !strings.Contains(upper, "AM") && !strings.Contains(upper, "PM") {
		return clock
	}
	fields := strings.Fields(upper)
	if len(fields) != 2 {
		return clock
	}
	parts := strings.SplitN(fields[0], ":", 2)
	if len(parts) != 2 {
		return clock
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return clock
	}
	if fields[1] == "PM" && hour != 12 {
		hour += 12
	} else if fields[1] == "AM" && hour == 12 {
		hour = 0
	}
	return fmt.Sprintf("%02d:%s", hour, parts[1])
}
