package utils

import (
	"testing"
	"time"
)

func TestMonthWindow(t *testing.T) {
	ref := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		monthsAgo int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{0, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		{1, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{3, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{5, time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		start, end := MonthWindow(ref, tt.monthsAgo)
		if !start.Equal(tt.wantStart) || !end.Equal(tt.wantEnd) {
			t.Errorf("MonthWindow(ref, %d) = (%v, %v), want (%v, %v)",
				tt.monthsAgo, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}

func TestShortMonthName(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "Jan"},
		{time.June, "Jun"},
		{time.December, "Dec"},
	}

	for _, tt := range tests {
		d := time.Date(2024, tt.month, 1, 0, 0, 0, 0, time.UTC)
		if got := ShortMonthName(d); got != tt.want {
			t.Errorf("ShortMonthName(%v) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			"same day",
			time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC),
			0,
		},
		{
			"clock times ignored",
			time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC),
			time.Date(2024, 3, 16, 0, 1, 0, 0, time.UTC),
			1,
		},
		{
			"a week",
			time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 8, 6, 0, 0, 0, time.UTC),
			7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("DaysBetween = %d, want %d", got, tt.want)
			}
		})
	}
}
