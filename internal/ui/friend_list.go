package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eatnsplit/internal/friends"
	"eatnsplit/internal/ui/textutil"
)

// friendItem implements list.Item for one row of the friend list.
type friendItem struct {
	friend   friends.Friend
	selected bool
	button   Button
}

func (i friendItem) FilterValue() string { return i.friend.Name }

// friendDelegate renders a friend as three lines: name + button, balance, avatar.
type friendDelegate struct{}

func (friendDelegate) Height() int                             { return 3 }
func (friendDelegate) Spacing() int                            { return 1 }
func (friendDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (friendDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	fi, ok := item.(friendItem)
	if !ok {
		return
	}
	cursor := index == m.Index()
	width := m.Width()
	if width <= 0 {
		width = defaultListWidth
	}

	marker := "  "
	if cursor {
		marker = "▸ "
	}
	nameStyle := Styles.Normal
	switch {
	case fi.selected:
		nameStyle = Styles.Selected
	case cursor:
		nameStyle = Styles.Cursor
	}

	btn := fi.button.View(cursor)
	nameWidth := width - textutil.Width(marker) - lipgloss.Width(btn) - 1
	name := nameStyle.Render(textutil.PadRight(fi.friend.Name, nameWidth))

	balance := balanceStyle(fi.friend).Render(textutil.Truncate(fi.friend.BalanceMessage(), width-2))
	avatar := Styles.Dim.Render(textutil.Truncate(fi.friend.Image, width-2))

	fmt.Fprintf(w, "%s%s %s\n  %s\n  %s", marker, name, btn, balance, avatar)
}

func balanceStyle(f friends.Friend) lipgloss.Style {
	switch f.Status() {
	case friends.StatusOwing:
		return Styles.Owing
	case friends.StatusOwed:
		return Styles.Owed
	default:
		return Styles.Settled
	}
}

const (
	defaultListWidth  = 40
	defaultListHeight = 24
)

// FriendListView shows every friend with its balance and a Select/Close button.
type FriendListView struct {
	list    list.Model
	Friends []friends.Friend
}

// Ensure FriendListView implements View.
var _ View = (*FriendListView)(nil)

// NewFriendListView creates an empty list; call SetFriends to populate it.
func NewFriendListView() *FriendListView {
	l := list.New(nil, friendDelegate{}, defaultListWidth, defaultListHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return &FriendListView{list: l}
}

// SetFriends replaces the rows, keeping the cursor where it was.
func (v *FriendListView) SetFriends(fs []friends.Friend, isSelected func(friends.ID) bool) {
	v.Friends = fs
	items := make([]list.Item, len(fs))
	for i, f := range fs {
		selected := isSelected != nil && isSelected(f.ID)
		items[i] = friendItem{
			friend:   f,
			selected: selected,
			button:   selectButton(f.ID, selected),
		}
	}
	idx := v.list.Index()
	v.list.SetItems(items)
	if idx < len(items) {
		v.list.Select(idx)
	}
}

// selectButton is the per-row toggle; its label follows the selection.
func selectButton(id friends.ID, selected bool) Button {
	label := "Select"
	if selected {
		label = "Close"
	}
	return Button{
		Label:   label,
		OnPress: func() tea.Cmd { return emit(ToggleSelectionMsg{ID: id}) },
	}
}

// SetSize resizes the list area.
func (v *FriendListView) SetSize(width, height int) {
	v.list.SetSize(width, height)
}

// Cursor returns the index of the row under the cursor.
func (v *FriendListView) Cursor() int {
	return v.list.Index()
}

// CursorFriend returns the friend under the cursor.
func (v *FriendListView) CursorFriend() (friends.Friend, bool) {
	fi, ok := v.list.SelectedItem().(friendItem)
	if !ok {
		return friends.Friend{}, false
	}
	return fi.friend, true
}

// PressCursor presses the Select/Close button of the row under the cursor.
func (v *FriendListView) PressCursor() tea.Cmd {
	fi, ok := v.list.SelectedItem().(friendItem)
	if !ok {
		return nil
	}
	return fi.button.Press()
}

// Init implements View.
func (v *FriendListView) Init() tea.Cmd {
	return nil
}

// Update implements View. Navigation keys go to list.Model (j/k/up/down/g/G);
// Enter and Space are bound at the app level via PressCursorMsg.
func (v *FriendListView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *FriendListView) View() string {
	if len(v.Friends) == 0 {
		return Styles.Muted.Italic(true).Render("No friends yet")
	}
	return v.list.View()
}
