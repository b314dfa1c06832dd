package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp renders the one-line help bar for the focused pane.
func RenderKeybindHelp(reg *KeybindRegistry, pane Pane, width int) string {
	km := NewKeyMap(reg, pane)
	if len(km.ShortHelp()) == 0 {
		return ""
	}

	h := help.New()
	h.Width = width
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	return h.View(km)
}
