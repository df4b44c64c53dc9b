package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/josh-spratt/gocal/internal/calendar"
)

// yearHeaderWidth is the centering width for the year-view title.
const yearHeaderWidth = 24

// RenderDay renders a single day as a full date header with a dash
// underline of the same length.
func RenderDay(date time.Time) []string {
	header := fmt.Sprintf("%s, %s %d, %d", date.Weekday(), date.Month(), date.Day(), date.Year())
	return []string{header, strings.Repeat("-", runewidth.StringWidth(header))}
}

// RenderWeek renders the week beginning at start: a date-range label, the
// weekday labels, and the seven day numbers laid out in the same columns as
// the month view. start is expected to already sit on the configured first
// weekday (see calendar.WeekStart).
func RenderWeek(start time.Time, opts Options) ([]string, error) {
	if opts.ColumnWidth < 2 {
		return nil, &InvalidColumnWidthError{Width: opts.ColumnWidth}
	}

	end := start.AddDate(0, 0, calendar.DaysPerWeek-1)
	label := fmt.Sprintf("Week of %s %d – %s %d, %d",
		start.Month().String()[:3], start.Day(),
		end.Month().String()[:3], end.Day(),
		start.Year())

	firstWeekday := int(start.Weekday())
	var b strings.Builder
	for i := 0; i < calendar.DaysPerWeek; i++ {
		day := start.AddDate(0, 0, i)
		b.WriteString(alignCell(strconv.Itoa(day.Day()), opts.ColumnWidth, opts.dayStyle(i, firstWeekday)))
	}

	return []string{label, weekdayLine(firstWeekday, opts), b.String()}, nil
}

// RenderQuarter renders a quarter as its three month names
// (Q1 = January-March).
func RenderQuarter(year, quarter int) []string {
	startMonth := (quarter-1)*3 + 1
	names := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		names = append(names, time.Month(startMonth+i).String())
	}
	return []string{fmt.Sprintf("Q%d %d: %s", quarter, year, strings.Join(names, ", "))}
}

// RenderYear renders a year as a centered title over the twelve month
// abbreviations.
func RenderYear(year int) []string {
	abbrs := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		abbrs = append(abbrs, m.String()[:3])
	}
	title := center(strconv.Itoa(year), yearHeaderWidth, lipgloss.NewStyle())
	return []string{title, "", strings.Join(abbrs, " ")}
}
