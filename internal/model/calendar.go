package model

import "time"

// MonthGrid describes the layout of one calendar month.
type MonthGrid struct {
	Year         int
	Month        time.Month
	StartWeekday int // weekday of the 1st, Sunday = 0
	DaysInMonth  int
}

// GridFor returns the grid of the month containing t.
func GridFor(t time.Time) MonthGrid {
	first := FirstOfMonth(t)
	return MonthGrid{
		Year:         first.Year(),
		Month:        first.Month(),
		StartWeekday: int(first.Weekday()),
		DaysInMonth:  DaysIn(first.Year(), first.Month()),
	}
}

// Date returns the calendar date of day d in the grid's month.
func (g MonthGrid) Date(d int) string {
	return FormatDate(time.Date(g.Year, g.Month, d, 0, 0, 0, 0, time.Local))
}

// Weeks returns how many calendar rows the month spans.
func (g MonthGrid) Weeks() int {
	return (g.StartWeekday + g.DaysInMonth + 6) / 7
}

// FirstOfMonth returns midnight on the first day of t's month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ShiftMonth moves t by delta months anchored on the first of the month,
// so shifting 31 January by one lands in February.
func ShiftMonth(t time.Time, delta int) time.Time {
	return FirstOfMonth(t).AddDate(0, delta, 0)
}

// ShiftDate moves a YYYY-MM-DD date by delta days.
// An unparsable date is returned unchanged.
func ShiftDate(date string, delta int) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return FormatDate(t.AddDate(0, 0, delta))
}
