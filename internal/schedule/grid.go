package schedule

import (
	"time"

	"github.com/timely-app/timely/internal/dateutil"
)

// MatrixWeeks and MatrixDays fix the month grid at six full weeks, enough to
// cover any month plus the leading and trailing days of its neighbours.
const (
	MatrixWeeks = 6
	MatrixDays  = 7
)

// Cell is one day slot of a month grid.
type Cell struct {
	Date    time.Time
	InMonth bool // belongs to the reference month
	Today   bool // day-equal to the supplied "today"
}

// MonthMatrix builds the 6x7 grid of consecutive dates covering reference's
// month. The first cell is the policy week start of the week containing the
// first of the month. The caller supplies "today" so the flag is recomputed
// on every render rather than baked in.
func MonthMatrix(reference time.Time, mondayStart bool, today time.Time) [MatrixWeeks][MatrixDays]Cell {
	first := dateutil.StartOfMonth(reference)
	cur := dateutil.StartOfWeek(first, mondayStart)

	var matrix [MatrixWeeks][MatrixDays]Cell
	for w := 0; w < MatrixWeeks; w++ {
		for d := 0; d < MatrixDays; d++ {
			matrix[w][d] = Cell{
				Date:    cur,
				InMonth: cur.Month() == reference.Month() && cur.Year() == reference.Year(),
				Today:   dateutil.SameDay(cur, today),
			}
			cur = dateutil.AddDays(cur, 1)
		}
	}
	return matrix
}

// DayHeaders returns the weekday labels in the order matching the grid's
// first column.
func DayHeaders(mondayStart bool) []string {
	if mondayStart {
		return []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	}
	return []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
}

// WeekDays returns the seven consecutive days of the policy week containing
// reference; the week view renders these directly.
func WeekDays(reference time.Time, mondayStart bool) [MatrixDays]time.Time {
	cur := dateutil.StartOfWeek(reference, mondayStart)
	var days [MatrixDays]time.Time
	for i := range days {
		days[i] = cur
		cur = dateutil.AddDays(cur, 1)
	}
	return days
}

// YearMonths returns the twelve month-start dates of a year.
func YearMonths(year int) [12]time.Time {
	var months [12]time.Time
	for m := 0; m < 12; m++ {
		months[m] = time.Date(year, time.Month(m+1), 1, 0, 0, 0, 0, time.UTC)
	}
	return months
}

// MiniMonth returns the day numbers of a year-view month cell, left-padded
// with zeros so day 1 lands in its weekday column under the given policy.
// Zero marks a blank pad cell.
func MiniMonth(monthStart time.Time, mondayStart bool) []int {
	offset := int(monthStart.Weekday())
	if mondayStart {
		if offset == 0 {
			offset = 6
		} else {
			offset--
		}
	}
	total := dateutil.DaysInMonth(monthStart.Year(), monthStart.Month())
	days := make([]int, 0, offset+total)
	for i := 0; i < offset; i++ {
		days = append(days, 0)
	}
	for d := 1; d <= total; d++ {
		days = append(days, d)
	}
	return days
}
