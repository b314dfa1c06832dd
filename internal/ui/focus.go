package ui

// FocusManager tracks and rotates focus across the visible panes.
type FocusManager struct {
	Current  Pane
	Order    []Pane // Tab order; only panes currently on screen
	OnChange func(from, to Pane)
}

// Next advances focus to the next pane in order and returns it.
func (f *FocusManager) Next() Pane {
	if len(f.Order) == 0 {
		return f.Current
	}
	idx := f.index(f.Current)
	f.set(f.Order[(idx+1)%len(f.Order)])
	return f.Current
}

// Prev moves focus to the previous pane in order and returns it.
func (f *FocusManager) Prev() Pane {
	if len(f.Order) == 0 {
		return f.Current
	}
	idx := f.index(f.Current) - 1
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	f.set(f.Order[idx])
	return f.Current
}

// SetFocus focuses p. Returns false if p is not in Order.
func (f *FocusManager) SetFocus(p Pane) bool {
	if f.index(p) < 0 {
		return false
	}
	f.set(p)
	return true
}

// SetOrder replaces the tab order. If the focused pane disappeared, focus falls
// back to the first pane.
func (f *FocusManager) SetOrder(order []Pane) {
	f.Order = order
	if f.index(f.Current) < 0 && len(order) > 0 {
		f.set(order[0])
	}
}

func (f *FocusManager) set(p Pane) {
	from := f.Current
	f.Current = p
	if f.OnChange != nil && from != p {
		f.OnChange(from, p)
	}
}

func (f *FocusManager) index(p Pane) int {
	for i, o := range f.Order {
		if o == p {
			return i
		}
	}
	return -1
}
