// Package styles provides Lip Gloss styles for calendar output.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for the month header
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
)

// Theme groups the styles applied to one rendered calendar. Styling is
// applied to cell text only, never to padding, so it cannot change a line's
// visible width.
type Theme struct {
	// Header styles the "Month Year" title line
	Header lipgloss.Style

	// Weekday styles the weekday-label line
	Weekday lipgloss.Style

	// Day is the base style for in-month day numbers
	Day lipgloss.Style

	// Weekend styles Saturday and Sunday day numbers
	Weekend lipgloss.Style

	// Today styles the current day; reverse video keeps the marker inside
	// its column
	Today lipgloss.Style
}

// Default returns the standard theme.
func Default() *Theme {
	return &Theme{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(Highlight),
		Weekday: lipgloss.NewStyle().Foreground(Subtle),
		Day:     lipgloss.NewStyle(),
		Weekend: lipgloss.NewStyle().Foreground(Subtle),
		Today:   lipgloss.NewStyle().Reverse(true).Bold(true),
	}
}
