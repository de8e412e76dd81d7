package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal stacked over the menu list. It receives keys first.
type Overlay struct {
	View    View
	Dismiss string // key that closes it without submitting
}

// IsDismissKey returns true if key closes this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// OverlayStack holds open modals; the top one is active.
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// Remove drops every overlay whose view matches. Returns true if any was removed.
func (s *OverlayStack) Remove(match func(View) bool) bool {
	kept := s.Stack[:0]
	removed := false
	for _, o := range s.Stack {
		if match(o.View) {
			removed = true
			continue
		}
		kept = append(kept, o)
	}
	s.Stack = kept
	return removed
}

// UpdateTop passes msg to the top overlay and stores the view it returns.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}
