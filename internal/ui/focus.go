package ui

// FocusManager rotates focus over a fixed order of field IDs.
type FocusManager struct {
	Current string   // ID of the focused field
	Order   []string // Tab order
}

// NewFocusManager focuses the first ID in order.
func NewFocusManager(order ...string) FocusManager {
	f := FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Index returns the position of Current in Order, or -1.
func (f *FocusManager) Index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

// IsLast reports whether the last field in Order has focus.
func (f *FocusManager) IsLast() bool {
	return len(f.Order) > 0 && f.Index() == len(f.Order)-1
}

// Next advances focus, wrapping at the end. Returns the new current ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	f.Current = f.Order[(f.Index()+1)%len(f.Order)]
	return f.Current
}

// Prev moves focus back, wrapping at the start.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	i := f.Index() - 1
	if i < 0 {
		i = len(f.Order) - 1
	}
	f.Current = f.Order[i]
	return f.Current
}
