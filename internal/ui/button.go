package ui

import tea "github.com/charmbracelet/bubbletea"

// Button is a clickable label. Pressing it calls OnPress on the update loop and
// returns whatever command the handler produces.
type Button struct {
	Label   string
	OnPress func() tea.Cmd
}

// Press activates the button.
func (b Button) Press() tea.Cmd {
	if b.OnPress == nil {
		return nil
	}
	return b.OnPress()
}

// View renders the button, highlighted when focused.
func (b Button) View(focused bool) string {
	label := "[ " + b.Label + " ]"
	if focused {
		return Styles.ButtonFocused.Render(label)
	}
	return Styles.Button.Render(label)
}

// emit wraps msg in a command.
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
