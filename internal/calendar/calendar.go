// Package calendar computes month-grid layouts for calendar display.
package calendar

import "time"

// DaysPerWeek is the number of columns in every grid row.
const DaysPerWeek = 7

// DayCell is a single grid position: either a real day of the displayed
// month, or a padding cell that aligns day 1 and fills the final week.
type DayCell struct {
	// Date is the cell's calendar day, or the zero time for padding cells.
	Date time.Time

	// IsCurrentDay is true when Date equals the reference "today" passed to
	// the builder. Always false on padding cells.
	IsCurrentDay bool
}

// InMonth reports whether the cell holds a real day rather than padding.
func (c DayCell) InMonth() bool {
	return !c.Date.IsZero()
}

// WeekRow is one display row of the grid, ordered from the configured first
// weekday.
type WeekRow [DaysPerWeek]DayCell

// MonthGrid is the computed week/day layout for one month. It is built fresh
// per render call and never mutated afterwards.
type MonthGrid struct {
	Year         int
	Month        int
	FirstWeekday int
	Weeks        []WeekRow
	MonthName    string
	MonthAbbr    string
}

// BuildMonthGrid lays the days of (year, month) into rows of seven cells,
// each row starting at firstWeekday (0=Sunday .. 6=Saturday). today is the
// reference date used to flag the current day; pass time.Now() for live
// output. The builder never reads the clock itself, so identical arguments
// always produce identical grids.
//
// The caller is responsible for normalizing cross-year rollovers (month=13
// does not carry into the next year; it is an error).
func BuildMonthGrid(year, month, firstWeekday int, today time.Time) (*MonthGrid, error) {
	if month < 1 || month > 12 {
		return nil, &InvalidMonthError{Month: month}
	}
	if firstWeekday < 0 || firstWeekday >= DaysPerWeek {
		return nil, &InvalidWeekdayError{Weekday: firstWeekday}
	}

	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()
	offset := (int(firstOfMonth.Weekday()) - firstWeekday + DaysPerWeek) % DaysPerWeek

	isCurrentMonth := today.Year() == year && int(today.Month()) == month

	rows := (offset + daysInMonth + DaysPerWeek - 1) / DaysPerWeek
	weeks := make([]WeekRow, rows)
	for day := 1; day <= daysInMonth; day++ {
		pos := offset + day - 1
		cell := DayCell{Date: firstOfMonth.AddDate(0, 0, day-1)}
		if isCurrentMonth && today.Day() == day {
			cell.IsCurrentDay = true
		}
		weeks[pos/DaysPerWeek][pos%DaysPerWeek] = cell
	}

	name := time.Month(month).String()
	return &MonthGrid{
		Year:         year,
		Month:        month,
		FirstWeekday: firstWeekday,
		Weeks:        weeks,
		MonthName:    name,
		MonthAbbr:    name[:3],
	}, nil
}

// DaysIn returns the number of days in (year, month).
func DaysIn(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, &InvalidMonthError{Month: month}
	}
	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return firstOfMonth.AddDate(0, 1, -1).Day(), nil
}

// WeekStart returns the most recent day with weekday firstWeekday that is
// not after date, at midnight in date's location.
func WeekStart(date time.Time, firstWeekday int) (time.Time, error) {
	if firstWeekday < 0 || firstWeekday >= DaysPerWeek {
		return time.Time{}, &InvalidWeekdayError{Weekday: firstWeekday}
	}
	back := (int(date.Weekday()) - firstWeekday + DaysPerWeek) % DaysPerWeek
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return midnight.AddDate(0, 0, -back), nil
}

// QuarterOf maps a month to its calendar quarter (January-March = 1).
func QuarterOf(month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, &InvalidMonthError{Month: month}
	}
	return (month-1)/3 + 1, nil
}
