package ui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keybind is one registered key. A nil cmd means the focused pane handles the key
// itself and the entry only feeds the help bar.
type keybind struct {
	seq   string
	cmd   tea.Cmd
	desc  string
	panes []Pane // nil/empty = every pane
}

// KeybindRegistry maps keys to commands, scoped by focused pane. The same key may
// be bound differently for different panes.
// Keys use tea.KeyMsg.String() notation except space, which is "space".
type KeybindRegistry struct {
	bindings []keybind // registration order, for stable help output
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{}
}

// Bind registers seq to run cmd while one of panes is focused (all panes if none given).
// Overwrites an existing binding for the same key and panes.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd, desc string, panes ...Pane) {
	b := keybind{seq: normalizeSeq(seq), cmd: cmd, desc: desc, panes: panes}
	for i, existing := range r.bindings {
		if existing.seq == b.seq && slices.Equal(existing.panes, b.panes) {
			r.bindings[i] = b
			return
		}
	}
	r.bindings = append(r.bindings, b)
}

// Hint documents a key that the pane handles on its own.
func (r *KeybindRegistry) Hint(seq, desc string, panes ...Pane) {
	r.Bind(seq, nil, desc, panes...)
}

// Lookup returns the command bound to seq for pane, or nil.
func (r *KeybindRegistry) Lookup(seq string, pane Pane) tea.Cmd {
	n := normalizeSeq(seq)
	for _, b := range r.bindings {
		if b.seq == n && b.appliesTo(pane) {
			return b.cmd
		}
	}
	return nil
}

// Hints returns help bindings for pane in registration order.
func (r *KeybindRegistry) Hints(pane Pane) []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if b.desc == "" || !b.appliesTo(pane) {
			continue
		}
		out = append(out, key.NewBinding(
			key.WithKeys(b.seq),
			key.WithHelp(displaySeq(b.seq), b.desc),
		))
	}
	return out
}

func (b keybind) appliesTo(pane Pane) bool {
	if len(b.panes) == 0 {
		return true
	}
	for _, p := range b.panes {
		if p == pane {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to the canonical form: " " -> "space".
func normalizeSeq(seq string) string {
	if seq == " " {
		return "space"
	}
	return strings.TrimSpace(seq)
}

func displaySeq(seq string) string {
	switch seq {
	case "enter":
		return "↵"
	case "shift+tab":
		return "⇧tab"
	default:
		return seq
	}
}

// KeyMap implements help.KeyMap for the focused pane.
type KeyMap struct {
	registry *KeybindRegistry
	pane     Pane
}

// NewKeyMap creates a help.KeyMap showing the bindings that apply to pane.
func NewKeyMap(registry *KeybindRegistry, pane Pane) help.KeyMap {
	return &KeyMap{registry: registry, pane: pane}
}

// ShortHelp implements help.KeyMap.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	return km.registry.Hints(km.pane)
}

// FullHelp implements help.KeyMap. Single column; the bar never expands.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
