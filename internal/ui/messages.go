package ui

import (
	"github.com/shopspring/decimal"

	"eatnsplit/internal/friends"
)

// AddFriendMsg is sent when the add-friend form produced a valid friend.
type AddFriendMsg struct {
	Friend friends.Friend
}

// ToggleSelectionMsg is sent when a friend's Select/Close button is pressed.
type ToggleSelectionMsg struct {
	ID friends.ID
}

// ToggleAddFriendFormMsg is sent by the sidebar Add friend/Close button.
type ToggleAddFriendFormMsg struct{}

// SplitBillMsg is sent when the split-bill form is submitted with a valid delta.
type SplitBillMsg struct {
	Delta decimal.Decimal
}

// FocusPaneMsg moves keyboard focus to a pane (Esc from a form returns to Friends).
type FocusPaneMsg struct {
	Pane Pane
}

// FocusNextMsg rotates focus to the next visible pane (Tab in the friend list).
type FocusNextMsg struct{}

// PressCursorMsg presses the button of the friend under the cursor.
type PressCursorMsg struct{}

// PressAddFriendMsg presses the sidebar Add friend/Close button.
type PressAddFriendMsg struct{}
