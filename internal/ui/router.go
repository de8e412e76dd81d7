package ui

import (
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"menuview/internal/menu"
)

const detailPrefix = "/detail/"

// Router navigates between screens by path.
type Router interface {
	Navigate(path string) tea.Cmd
}

// NavigateMsg asks the app to resolve Path and push the matching view.
type NavigateMsg struct {
	Path string
}

// BackMsg pops the top view.
type BackMsg struct{}

// MsgRouter turns navigation into messages handled by the root model,
// which owns the view stack.
type MsgRouter struct{}

// Navigate implements Router.
func (MsgRouter) Navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// DetailPath is the route of the detail screen for id.
func DetailPath(id menu.ID) string {
	return detailPrefix + url.PathEscape(id.String())
}

// ParseDetailPath extracts the item id from a detail route.
func ParseDetailPath(path string) (menu.ID, bool) {
	rest, ok := strings.CutPrefix(path, detailPrefix)
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	id, err := url.PathUnescape(rest)
	if err != nil || id == "" {
		return "", false
	}
	return menu.ID(id), true
}
