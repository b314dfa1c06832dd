// Package app owns the canonical session state: the friend list, the selected
// friend and whether the add-friend form is open.
//
// State is the only mutator of that data. Views read it and report user intent
// back through the transition methods; no method blocks and State is not safe for
// concurrent use.
package app

import (
	"github.com/shopspring/decimal"

	"eatnsplit/internal/friends"
)

// State holds everything that changes during a session.
type State struct {
	friends      []friends.Friend
	selected     friends.ID
	hasSelection bool
	showAddForm  bool
}

// New returns a state seeded with the given friends.
func New(seed []friends.Friend) *State {
	list := make([]friends.Friend, len(seed))
	copy(list, seed)
	return &State{friends: list}
}

// NewSeeded returns a state with the default seed friends.
func NewSeeded() *State {
	return New(friends.Seed())
}

// Friends returns a copy of the friend list in insertion order.
func (s *State) Friends() []friends.Friend {
	out := make([]friends.Friend, len(s.friends))
	copy(out, s.friends)
	return out
}

// Len returns the number of friends.
func (s *State) Len() int {
	return len(s.friends)
}

// HasFriend reports whether id belongs to a friend in the list.
func (s *State) HasFriend(id friends.ID) bool {
	return s.indexOf(id) >= 0
}

// SelectedID returns the selected friend's id, if any.
func (s *State) SelectedID() (friends.ID, bool) {
	return s.selected, s.hasSelection
}

// IsSelected reports whether id is the current selection.
func (s *State) IsSelected(id friends.ID) bool {
	return s.hasSelection && s.selected == id
}

// Selected resolves the selection to its friend record.
func (s *State) Selected() (friends.Friend, bool) {
	if !s.hasSelection {
		return friends.Friend{}, false
	}
	i := s.indexOf(s.selected)
	if i < 0 {
		return friends.Friend{}, false
	}
	return s.friends[i], true
}

// ShowAddFriendForm reports whether the add-friend form is open.
func (s *State) ShowAddFriendForm() bool {
	return s.showAddForm
}

// AddFriend appends f and closes the add-friend form.
// Validation is the form's job; nothing is checked here.
func (s *State) AddFriend(f friends.Friend) {
	s.friends = append(s.friends, f)
	s.showAddForm = false
}

// ToggleSelection selects id, or clears the selection when id is already selected.
// Either way the add-friend form is closed.
func (s *State) ToggleSelection(id friends.ID) {
	if s.IsSelected(id) {
		s.clearSelection()
	} else {
		s.selected = id
		s.hasSelection = true
	}
	s.showAddForm = false
}

// ToggleAddFriendForm opens or closes the add-friend form. Selection is untouched.
func (s *State) ToggleAddFriendForm() {
	s.showAddForm = !s.showAddForm
}

// ApplySplit adds delta to the selected friend's balance and clears the selection.
// It returns the updated friend, or false with no change when nothing is selected.
func (s *State) ApplySplit(delta decimal.Decimal) (friends.Friend, bool) {
	if !s.hasSelection {
		return friends.Friend{}, false
	}
	i := s.indexOf(s.selected)
	if i < 0 {
		return friends.Friend{}, false
	}
	s.friends[i] = s.friends[i].WithBalance(delta)
	s.clearSelection()
	return s.friends[i], true
}

func (s *State) clearSelection() {
	s.selected = ""
	s.hasSelection = false
}

func (s *State) indexOf(id friends.ID) int {
	for i, f := range s.friends {
		if f.ID == id {
			return i
		}
	}
	return -1
}
