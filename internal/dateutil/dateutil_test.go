package dateutil

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(date(2024, time.March, 4)) {
		t.Fatalf("unexpected date %v", got)
	}

	if _, err := ParseDate("03/04/2024"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 9*time.Hour+30*time.Minute {
		t.Fatalf("unexpected offset %v", got)
	}

	if _, err := ParseClock("9:30 AM"); !errors.Is(err, ErrInvalidTime) {
		t.Fatalf("expected ErrInvalidTime, got %v", err)
	}
}

func TestCombineDefaultsToMidnight(t *testing.T) {
	got, err := Combine("2024-03-04", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(date(2024, time.March, 4)) {
		t.Fatalf("expected midnight, got %v", got)
	}
}

func TestAddMonthsClamp(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"plain step", date(2024, time.March, 15), 1, date(2024, time.April, 15)},
		{"jan 31 into leap feb", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"jan 31 into non-leap feb", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"anchor survives clamp", date(2024, time.January, 31), 2, date(2024, time.March, 31)},
		{"year rollover", date(2024, time.November, 30), 3, date(2025, time.February, 28)},
		{"zero months", date(2024, time.May, 31), 0, date(2024, time.May, 31)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AddMonthsClamp(tc.start, tc.months); !got.Equal(tc.want) {
				t.Fatalf("AddMonthsClamp(%v, %d) = %v, want %v", tc.start, tc.months, got, tc.want)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	// 2024-03-04 is a Monday, 2024-03-10 a Sunday.
	tests := []struct {
		name        string
		day         time.Time
		mondayStart bool
		want        time.Time
	}{
		{"wednesday sunday-start", date(2024, time.March, 6), false, date(2024, time.March, 3)},
		{"wednesday monday-start", date(2024, time.March, 6), true, date(2024, time.March, 4)},
		{"sunday sunday-start", date(2024, time.March, 10), false, date(2024, time.March, 10)},
		{"sunday monday-start shifts back six", date(2024, time.March, 10), true, date(2024, time.March, 4)},
		{"monday monday-start", date(2024, time.March, 4), true, date(2024, time.March, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StartOfWeek(tc.day, tc.mondayStart); !got.Equal(tc.want) {
				t.Fatalf("StartOfWeek(%v, %v) = %v, want %v", tc.day, tc.mondayStart, got, tc.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2024, time.February); got != 29 {
		t.Fatalf("leap february = %d, want 29", got)
	}
	if got := DaysInMonth(2023, time.February); got != 28 {
		t.Fatalf("february = %d, want 28", got)
	}
	if got := DaysInMonth(2024, time.April); got != 30 {
		t.Fatalf("april = %d, want 30", got)
	}
}
