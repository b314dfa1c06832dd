package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eatnsplit/internal/app"
	"eatnsplit/internal/friends"
	"eatnsplit/internal/trace"
)

const sidebarWidth = 46

// AppModel is the root model. It owns the session state and rebuilds the
// forms whenever a transition changes what is on screen.
type AppModel struct {
	State     *app.State
	List      *FriendListView
	AddForm   *AddFriendForm // nil while the add-friend form is closed
	SplitForm *SplitBillForm // nil while no friend is selected
	Focus     *FocusManager
	Keys      *KeybindRegistry
	Tracer    *trace.Tracer
	Logger    *slog.Logger

	AvatarBase string
	NewID      friends.IDGenerator

	ctx           context.Context
	width, height int
}

// Options configures NewAppModel. Zero values pick defaults.
type Options struct {
	AvatarBase string
	NewID      friends.IDGenerator
	Tracer     *trace.Tracer
	Logger     *slog.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model around state.
func NewAppModel(ctx context.Context, state *app.State, opts Options) *AppModel {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.AvatarBase == "" {
		opts.AvatarBase = friends.DefaultAvatarBase
	}
	a := &AppModel{
		State:      state,
		List:       NewFriendListView(),
		Keys:       NewKeybindRegistry(),
		Tracer:     opts.Tracer,
		Logger:     opts.Logger,
		AvatarBase: opts.AvatarBase,
		NewID:      opts.NewID,
		ctx:        ctx,
	}
	a.Focus = &FocusManager{
		Current:  PaneFriends,
		Order:    []Pane{PaneFriends},
		OnChange: a.focusChanged,
	}
	a.bindKeys()
	a.sync()
	return a
}

func (a *AppModel) bindKeys() {
	k := a.Keys
	k.Bind("ctrl+c", tea.Quit, "")
	k.Hint("j", "down", PaneFriends)
	k.Hint("k", "up", PaneFriends)
	k.Bind("enter", emit(PressCursorMsg{}), "select/close", PaneFriends)
	k.Bind("space", emit(PressCursorMsg{}), "", PaneFriends)
	k.Bind("a", emit(PressAddFriendMsg{}), "add friend", PaneFriends)
	k.Bind("tab", emit(FocusNextMsg{}), "next pane", PaneFriends)
	k.Bind("q", tea.Quit, "quit", PaneFriends)

	k.Hint("tab", "next field", PaneAddFriend, PaneSplitBill)
	k.Hint("enter", "submit", PaneAddFriend, PaneSplitBill)
	k.Hint("←/→", "payer", PaneSplitBill)
	k.Bind("esc", emit(FocusPaneMsg{Pane: PaneFriends}), "back", PaneAddFriend, PaneSplitBill)
}

// addFriendButton is the sidebar toggle under the friend list.
func (a *AppModel) addFriendButton() Button {
	label := "Add friend"
	if a.State.ShowAddFriendForm() {
		label = "Close"
	}
	return Button{
		Label:   label,
		OnPress: func() tea.Cmd { return emit(ToggleAddFriendFormMsg{}) },
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.List.SetSize(sidebarWidth-4, max(msg.Height-8, 4))
		return a, nil
	case AddFriendMsg:
		return a, a.addFriend(msg.Friend)
	case ToggleSelectionMsg:
		return a, a.toggleSelection(msg.ID)
	case ToggleAddFriendFormMsg:
		return a, a.toggleAddFriendForm()
	case SplitBillMsg:
		return a, a.applySplit(msg)
	case FocusPaneMsg:
		a.Focus.SetFocus(msg.Pane)
		return a, nil
	case FocusNextMsg:
		a.Focus.Next()
		return a, nil
	case PressCursorMsg:
		return a, a.List.PressCursor()
	case PressAddFriendMsg:
		return a, a.addFriendButton().Press()
	case tea.KeyMsg:
		if cmd := a.Keys.Lookup(msg.String(), a.Focus.Current); cmd != nil {
			return a, cmd
		}
	}

	var cmd tea.Cmd
	switch a.Focus.Current {
	case PaneAddFriend:
		if a.AddForm != nil {
			_, cmd = a.AddForm.Update(msg)
		}
	case PaneSplitBill:
		if a.SplitForm != nil {
			_, cmd = a.SplitForm.Update(msg)
		}
	default:
		_, cmd = a.List.Update(msg)
	}
	return a, cmd
}

func (a *AppModel) addFriend(f friends.Friend) tea.Cmd {
	_, span := a.Tracer.Start(a.ctx, trace.SpanAddFriend,
		trace.AttrFriendID.String(string(f.ID)),
		trace.AttrFriendName.String(f.Name),
	)
	defer span.End()

	a.State.AddFriend(f)
	a.Logger.Debug("friend added", "id", f.ID, "name", f.Name, "friends", a.State.Len())
	return a.sync()
}

func (a *AppModel) toggleSelection(id friends.ID) tea.Cmd {
	_, span := a.Tracer.Start(a.ctx, trace.SpanToggleSelection, trace.AttrFriendID.String(string(id)))
	defer span.End()

	if !a.State.HasFriend(id) {
		a.Logger.Warn("selection ignored: unknown friend", "id", id)
		return nil
	}
	a.State.ToggleSelection(id)
	_, selected := a.State.SelectedID()
	span.SetAttributes(trace.AttrSelected.Bool(selected))
	a.Logger.Debug("selection toggled", "id", id, "selected", selected)
	return a.sync()
}

func (a *AppModel) toggleAddFriendForm() tea.Cmd {
	_, span := a.Tracer.Start(a.ctx, trace.SpanToggleAddForm)
	defer span.End()

	a.State.ToggleAddFriendForm()
	span.SetAttributes(trace.AttrAddFormOn.Bool(a.State.ShowAddFriendForm()))
	a.Logger.Debug("add-friend form toggled", "visible", a.State.ShowAddFriendForm())
	return a.sync()
}

func (a *AppModel) applySplit(msg SplitBillMsg) tea.Cmd {
	_, span := a.Tracer.Start(a.ctx, trace.SpanApplySplit, trace.AttrDelta.String(msg.Delta.String()))
	defer span.End()

	f, ok := a.State.ApplySplit(msg.Delta)
	if !ok {
		a.Logger.Warn("split ignored: no friend selected", "delta", msg.Delta)
		return nil
	}
	span.SetAttributes(
		trace.AttrFriendID.String(string(f.ID)),
		trace.AttrBalance.String(f.Balance.String()),
	)
	a.Logger.Debug("split applied", "id", f.ID, "name", f.Name, "delta", msg.Delta, "balance", f.Balance)
	return a.sync()
}

// sync reconciles the views with State after a transition. Forms are created
// fresh when they appear, and the split form is rebuilt when the selected friend
// changes, so no typed values carry over.
func (a *AppModel) sync() tea.Cmd {
	a.List.SetFriends(a.State.Friends(), a.State.IsSelected)

	var focus Pane = -1
	if a.State.ShowAddFriendForm() {
		if a.AddForm == nil {
			a.AddForm = NewAddFriendForm(friends.NewForm(a.AvatarBase, a.NewID, a.State.HasFriend))
			focus = PaneAddFriend
		}
	} else {
		a.AddForm = nil
	}

	if sel, ok := a.State.Selected(); ok {
		if a.SplitForm == nil || a.SplitForm.FriendID() != sel.ID {
			a.SplitForm = NewSplitBillForm(sel)
			focus = PaneSplitBill
		}
	} else {
		a.SplitForm = nil
	}

	order := []Pane{PaneFriends}
	if a.AddForm != nil {
		order = append(order, PaneAddFriend)
	}
	if a.SplitForm != nil {
		order = append(order, PaneSplitBill)
	}
	a.Focus.SetOrder(order)
	if focus >= 0 {
		a.Focus.SetFocus(focus)
	}
	return a.blurInactive()
}

// focusChanged keeps text cursors only in the focused form.
func (a *AppModel) focusChanged(from, to Pane) {
	a.Logger.Debug("focus changed", "from", from, "to", to)
	a.blurInactive()
}

func (a *AppModel) blurInactive() tea.Cmd {
	var cmds []tea.Cmd
	if a.AddForm != nil {
		cmds = append(cmds, a.AddForm.SetFocused(a.Focus.Current == PaneAddFriend))
	}
	if a.SplitForm != nil {
		cmds = append(cmds, a.SplitForm.SetFocused(a.Focus.Current == PaneSplitBill))
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	sidebar := paneStyle(a.Focus.Current == PaneFriends).
		Width(sidebarWidth - 2).
		Render(a.List.View() + "\n\n" + a.addFriendButton().View(false))
	if a.AddForm != nil {
		sidebar = lipgloss.JoinVertical(lipgloss.Left, sidebar,
			paneStyle(a.Focus.Current == PaneAddFriend).Width(sidebarWidth-2).Render(a.AddForm.View()))
	}

	body := sidebar
	if a.SplitForm != nil {
		split := paneStyle(a.Focus.Current == PaneSplitBill).
			MarginLeft(1).
			Render(a.SplitForm.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, split)
	}

	header := Styles.Header.Render("Eat 'N Split")
	help := RenderKeybindHelp(a.Keys, a.Focus.Current, a.width)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}
