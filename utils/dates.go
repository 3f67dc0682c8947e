// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func BeginningOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// MonthWindow returns the half-open [start, end) calendar-month window for
// the month monthsAgo before t's month. monthsAgo of zero is t's own month.
func MonthWindow(t time.Time, monthsAgo int) (time.Time, time.Time) {
	first := BeginningOfMonth(t).AddDate(0, -monthsAgo, 0)
	return first, first.AddDate(0, 1, 0)
}

// ShortMonthName is the abbreviated English month name, e.g. "Jan".
func ShortMonthName(t time.Time) string {
	return t.Format("Jan")
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
