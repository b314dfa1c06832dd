package ui

import tea "github.com/charmbracelet/bubbletea"

// View is one pane of the screen (friend list or a form) with Elm-style
// Init/Update/View. AppModel routes keys to the View of the focused pane.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
