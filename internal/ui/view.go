package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// The menu list, the item detail and every modal are Views.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// inputCapturer is implemented by views that want every key while a modal
// is open, so single-key app bindings like "q" do not fire while typing.
type inputCapturer interface {
	CapturingInput() bool
}
