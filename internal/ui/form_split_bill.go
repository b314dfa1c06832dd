package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"eatnsplit/internal/friends"
	"eatnsplit/internal/split"
)

const (
	splitFieldBill = iota
	splitFieldPaidByUser
	splitFieldPayer
	splitFieldButton
	splitFieldCount
)

// SplitBillForm records one shared bill with the selected friend.
// The app builds a new form every time the selection changes.
type SplitBillForm struct {
	friend     friends.Friend
	form       *split.Form
	bill       textinput.Model
	paidByUser textinput.Model
	button     Button
	field      int
}

// Ensure SplitBillForm implements View.
var _ View = (*SplitBillForm)(nil)

// NewSplitBillForm creates an empty form for friend.
func NewSplitBillForm(friend friends.Friend) *SplitBillForm {
	bill := textinput.New()
	bill.Placeholder = "0.00"
	bill.Width = 12
	bill.Focus()

	paid := textinput.New()
	paid.Placeholder = "0.00"
	paid.Width = 12

	f := &SplitBillForm{
		friend:     friend,
		form:       split.NewForm(),
		bill:       bill,
		paidByUser: paid,
	}
	f.button = Button{Label: "Split bill", OnPress: f.submit}
	return f
}

// FriendID returns the friend this form splits with.
func (f *SplitBillForm) FriendID() friends.ID {
	return f.friend.ID
}

// Form returns the underlying split state.
func (f *SplitBillForm) Form() *split.Form {
	return f.form
}

// Field returns the index of the focused field.
func (f *SplitBillForm) Field() int {
	return f.field
}

// Init implements View.
func (f *SplitBillForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View. Esc is handled by the app.
func (f *SplitBillForm) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			return f, f.focusField((f.field + 1) % splitFieldCount)
		case "shift+tab", "up":
			return f, f.focusField((f.field + splitFieldCount - 1) % splitFieldCount)
		case "enter":
			return f, f.button.Press()
		}
		if f.field == splitFieldPayer {
			switch msg.String() {
			case "left", "right", "h", "l", " ":
				f.form.Payer = f.form.Payer.Other()
			}
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.field {
	case splitFieldBill:
		prev := f.bill.Value()
		f.bill, cmd = f.bill.Update(msg)
		if !f.form.SetBill(f.bill.Value()) {
			f.bill.SetValue(prev)
		}
	case splitFieldPaidByUser:
		// An expense above the bill is refused, not capped.
		prev := f.paidByUser.Value()
		f.paidByUser, cmd = f.paidByUser.Update(msg)
		if !f.form.SetPaidByUser(f.paidByUser.Value()) {
			f.paidByUser.SetValue(prev)
		}
	}
	return f, cmd
}

// submit emits the split delta; an incomplete form is silently ignored.
func (f *SplitBillForm) submit() tea.Cmd {
	delta, ok := f.form.Delta()
	if !ok {
		return nil
	}
	return emit(SplitBillMsg{Delta: delta})
}

func (f *SplitBillForm) focusField(i int) tea.Cmd {
	f.field = i
	f.bill.Blur()
	f.paidByUser.Blur()
	switch i {
	case splitFieldBill:
		return f.bill.Focus()
	case splitFieldPaidByUser:
		return f.paidByUser.Focus()
	}
	return nil
}

// SetFocused shows or hides the text cursor when the pane gains or loses focus.
func (f *SplitBillForm) SetFocused(focused bool) tea.Cmd {
	if !focused {
		f.bill.Blur()
		f.paidByUser.Blur()
		return nil
	}
	return f.focusField(f.field)
}

// View implements View.
func (f *SplitBillForm) View() string {
	name := f.friend.Name
	paidByFriend := ""
	if v := f.form.PaidByFriend(); v.Valid {
		paidByFriend = v.Decimal.String()
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render("Split a bill with "+name) + "\n\n")
	b.WriteString(f.label("Bill value", splitFieldBill) + "\n")
	b.WriteString(f.bill.View() + "\n")
	b.WriteString(f.label("Your expense", splitFieldPaidByUser) + "\n")
	b.WriteString(f.paidByUser.View() + "\n")
	b.WriteString(Styles.Label.Render(name+"'s expense") + "\n")
	b.WriteString(Styles.Dim.Render("> "+paidByFriend) + "\n")
	b.WriteString(f.label("Who is paying the bill?", splitFieldPayer) + "\n")
	b.WriteString(f.payerView() + "\n\n")
	b.WriteString(f.button.View(f.field == splitFieldButton))
	return b.String()
}

func (f *SplitBillForm) label(text string, field int) string {
	if f.field == field {
		return Styles.Selected.Render(text)
	}
	return Styles.Label.Render(text)
}

func (f *SplitBillForm) payerView() string {
	you, them := "You", f.friend.Name
	mark := func(s string, on bool) string {
		if on {
			return Styles.Selected.Render(fmt.Sprintf("(•) %s", s))
		}
		return Styles.Muted.Render(fmt.Sprintf("( ) %s", s))
	}
	return mark(you, f.form.Payer == split.PayerUser) + "  " + mark(them, f.form.Payer == split.PayerFriend)
}
