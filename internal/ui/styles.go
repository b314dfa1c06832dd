package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles
	ColorHighlight = "205" // Magenta - selection, focused borders
	ColorOwing     = "196" // Red - the user owes the friend
	ColorOwed      = "42"  // Green - the friend owes the user
	ColorMuted     = "241" // Gray - hints, unfocused borders
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "243" // Darker gray - avatar URLs, disabled fields
)

// Styles contains shared style definitions used across views and forms.
var Styles = struct {
	Header lipgloss.Style // App title bar
	Title  lipgloss.Style // Form titles

	Pane        lipgloss.Style // Unfocused pane border
	PaneFocused lipgloss.Style // Focused pane border

	Selected lipgloss.Style // Selected friend row
	Cursor   lipgloss.Style // Row under the cursor
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Dim      lipgloss.Style
	Hint     lipgloss.Style
	Label    lipgloss.Style // Form field labels

	Owing   lipgloss.Style
	Owed    lipgloss.Style
	Settled lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
}{
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		MarginBottom(1),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Pane: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	PaneFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Bold(true),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Dim: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Owing: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorOwing)),
	Owed: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorOwed)),
	Settled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	ButtonFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Reverse(true),
}

// paneStyle returns the border style for a pane given its focus.
func paneStyle(focused bool) lipgloss.Style {
	if focused {
		return Styles.PaneFocused
	}
	return Styles.Pane
}
