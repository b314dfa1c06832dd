package ui

// Pane identifies a region of the screen that can hold keyboard focus.
type Pane int

const (
	PaneFriends Pane = iota
	PaneAddFriend
	PaneSplitBill
)

func (p Pane) String() string {
	switch p {
	case PaneFriends:
		return "Friends"
	case PaneAddFriend:
		return "AddFriend"
	case PaneSplitBill:
		return "SplitBill"
	default:
		return "Unknown"
	}
}
