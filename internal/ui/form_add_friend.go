package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"eatnsplit/internal/friends"
)

const (
	addFieldName = iota
	addFieldImage
	addFieldButton
	addFieldCount
)

// AddFriendForm collects a name and avatar URL for a new friend.
// It exists only while the form is open; closing it discards what was typed.
type AddFriendForm struct {
	form   *friends.Form
	name   textinput.Model
	image  textinput.Model
	button Button
	field  int
}

// Ensure AddFriendForm implements View.
var _ View = (*AddFriendForm)(nil)

// NewAddFriendForm wraps form in text inputs.
func NewAddFriendForm(form *friends.Form) *AddFriendForm {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 40
	name.Width = 28
	name.Focus()

	image := textinput.New()
	image.Width = 28
	image.SetValue(form.Image)

	f := &AddFriendForm{form: form, name: name, image: image}
	f.button = Button{Label: "Add", OnPress: f.submit}
	return f
}

// Form returns the underlying form state.
func (f *AddFriendForm) Form() *friends.Form {
	return f.form
}

// Field returns the index of the focused field.
func (f *AddFriendForm) Field() int {
	return f.field
}

// Init implements View.
func (f *AddFriendForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View. Esc is handled by the app.
func (f *AddFriendForm) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			return f, f.focusField((f.field + 1) % addFieldCount)
		case "shift+tab", "up":
			return f, f.focusField((f.field + addFieldCount - 1) % addFieldCount)
		case "enter":
			// Enter in any field submits, like a browser form.
			return f, f.button.Press()
		}
	}

	var cmd tea.Cmd
	switch f.field {
	case addFieldName:
		f.name, cmd = f.name.Update(msg)
	case addFieldImage:
		f.image, cmd = f.image.Update(msg)
	}
	f.form.Name = f.name.Value()
	f.form.Image = f.image.Value()
	return f, cmd
}

// submit hands a valid friend to the app and resets the inputs.
// Incomplete input is silently ignored.
func (f *AddFriendForm) submit() tea.Cmd {
	friend, ok := f.form.Submit()
	if !ok {
		return nil
	}
	f.name.SetValue(f.form.Name)
	f.image.SetValue(f.form.Image)
	return emit(AddFriendMsg{Friend: friend})
}

func (f *AddFriendForm) focusField(i int) tea.Cmd {
	f.field = i
	f.name.Blur()
	f.image.Blur()
	switch i {
	case addFieldName:
		return f.name.Focus()
	case addFieldImage:
		return f.image.Focus()
	}
	return nil
}

// SetFocused shows or hides the text cursor when the pane gains or loses focus.
func (f *AddFriendForm) SetFocused(focused bool) tea.Cmd {
	if !focused {
		f.name.Blur()
		f.image.Blur()
		return nil
	}
	return f.focusField(f.field)
}

// View implements View.
func (f *AddFriendForm) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Add a friend") + "\n\n")
	b.WriteString(Styles.Label.Render("Friend name") + "\n")
	b.WriteString(f.name.View() + "\n")
	b.WriteString(Styles.Label.Render("Image URL") + "\n")
	b.WriteString(f.image.View() + "\n\n")
	b.WriteString(f.button.View(f.field == addFieldButton))
	return b.String()
}
