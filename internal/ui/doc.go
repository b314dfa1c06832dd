// Package ui is the Bubble Tea front end of Eat 'N Split.
//
// Pieces:
//   - AppModel: root model; owns app.State and reconciles views after each transition
//   - FriendListView: the friend list with per-row Select/Close buttons
//   - AddFriendForm, SplitBillForm: the two forms, created when shown and dropped when hidden
//   - FocusManager: rotates keyboard focus across the visible panes
//   - KeybindRegistry: pane-scoped key bindings that also feed the help bar
//
// Child views never mutate state. They emit messages (AddFriendMsg, SplitBillMsg, ...)
// that AppModel applies on the update loop.
package ui
