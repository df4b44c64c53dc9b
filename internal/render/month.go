// Package render turns computed calendar layouts into aligned text lines.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/josh-spratt/gocal/internal/calendar"
	"github.com/josh-spratt/gocal/internal/styles"
)

// Options controls layout and styling for the line renderers.
type Options struct {
	// ColumnWidth is the fixed character width per day column; must be at
	// least 2 so a two-digit day fits.
	ColumnWidth int

	// AbbreviatedHeader selects two-letter weekday labels over full names.
	AbbreviatedHeader bool

	// Theme applies per-cell styling; nil renders plain text.
	Theme *styles.Theme
}

// DefaultOptions matches the classic cal layout: three-character columns
// with abbreviated weekday labels and no styling.
func DefaultOptions() Options {
	return Options{ColumnWidth: 3, AbbreviatedHeader: true}
}

// InvalidColumnWidthError reports a column width too narrow to hold a
// two-digit day number.
type InvalidColumnWidthError struct {
	Width int
}

// Error implements the error interface.
func (e *InvalidColumnWidthError) Error() string {
	return fmt.Sprintf("invalid column width %d: must be at least 2", e.Width)
}

// RenderMonth renders grid as text lines: a centered "Month Year" header, a
// weekday-label line, and one line per week with day numbers right-aligned
// in fixed-width columns. Every line is exactly 7*ColumnWidth visible
// characters wide, so sequential printing yields an aligned grid.
func RenderMonth(grid *calendar.MonthGrid, opts Options) ([]string, error) {
	if opts.ColumnWidth < 2 {
		return nil, &InvalidColumnWidthError{Width: opts.ColumnWidth}
	}

	totalWidth := calendar.DaysPerWeek * opts.ColumnWidth
	lines := make([]string, 0, len(grid.Weeks)+2)

	header := fmt.Sprintf("%s %d", grid.MonthName, grid.Year)
	lines = append(lines, center(header, totalWidth, opts.headerStyle()))
	lines = append(lines, weekdayLine(grid.FirstWeekday, opts))

	for _, week := range grid.Weeks {
		var b strings.Builder
		for col, cell := range week {
			b.WriteString(dayCell(cell, col, grid.FirstWeekday, opts))
		}
		lines = append(lines, b.String())
	}

	return lines, nil
}

// weekdayLine renders the seven weekday labels starting at firstWeekday.
func weekdayLine(firstWeekday int, opts Options) string {
	var b strings.Builder
	for col := 0; col < calendar.DaysPerWeek; col++ {
		wd := time.Weekday((firstWeekday + col) % calendar.DaysPerWeek)
		label := wd.String()
		if opts.AbbreviatedHeader {
			label = label[:2]
		}
		b.WriteString(alignCell(label, opts.ColumnWidth, opts.weekdayStyle()))
	}
	return b.String()
}

// dayCell renders one grid cell in exactly opts.ColumnWidth columns.
func dayCell(cell calendar.DayCell, col, firstWeekday int, opts Options) string {
	if !cell.InMonth() {
		return strings.Repeat(" ", opts.ColumnWidth)
	}

	text := strconv.Itoa(cell.Date.Day())
	style := opts.dayStyle(col, firstWeekday)
	if cell.IsCurrentDay {
		text = markToday(text, opts.ColumnWidth)
		style = opts.todayStyle()
	}
	return alignCell(text, opts.ColumnWidth, style)
}

// markToday wraps the day number in brackets. When the column is too narrow
// for both brackets the closing one is dropped first, so the opening bracket
// takes the separator position and the number keeps its alignment; at the
// minimum width the bare number is returned.
func markToday(num string, width int) string {
	switch {
	case len(num)+2 <= width:
		return "[" + num + "]"
	case len(num)+1 <= width:
		return "[" + num
	default:
		return num
	}
}

// alignCell right-aligns text within width columns, truncating when it is
// too wide. Only the text is styled; padding stays plain.
func alignCell(text string, width int, style lipgloss.Style) string {
	text = runewidth.Truncate(text, width, "")
	pad := width - runewidth.StringWidth(text)
	return strings.Repeat(" ", pad) + style.Render(text)
}

// center pads text with spaces to width, the extra space going to the
// right, truncating when it is too wide.
func center(text string, width int, style lipgloss.Style) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return style.Render(runewidth.Truncate(text, width, ""))
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + style.Render(text) + strings.Repeat(" ", right)
}

func (o Options) headerStyle() lipgloss.Style {
	if o.Theme == nil {
		return lipgloss.NewStyle()
	}
	return o.Theme.Header
}

func (o Options) weekdayStyle() lipgloss.Style {
	if o.Theme == nil {
		return lipgloss.NewStyle()
	}
	return o.Theme.Weekday
}

func (o Options) todayStyle() lipgloss.Style {
	if o.Theme == nil {
		return lipgloss.NewStyle()
	}
	return o.Theme.Today
}

func (o Options) dayStyle(col, firstWeekday int) lipgloss.Style {
	if o.Theme == nil {
		return lipgloss.NewStyle()
	}
	wd := time.Weekday((firstWeekday + col) % calendar.DaysPerWeek)
	if wd == time.Saturday || wd == time.Sunday {
		return o.Theme.Weekend
	}
	return o.Theme.Day
}
