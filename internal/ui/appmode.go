package ui

// AppMode is the screen currently on top of the view stack.
type AppMode int

const (
	ModeMenu AppMode = iota
	ModeDetail
)

func (m AppMode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModeDetail:
		return "Detail"
	default:
		return "Unknown"
	}
}
