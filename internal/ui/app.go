package ui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"menuview/internal/menu"
)

// AppModel is the root model. The menu list sits at the bottom of Views;
// routed screens are pushed above it.
type AppModel struct {
	Views      ViewStack
	Menu       *MenuView
	KeyHandler *KeyHandler

	api     MenuAPI
	timeout time.Duration
	width   int
	height  int
}

var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model with the default key bindings.
func NewAppModel(api MenuAPI, perPage int, timeout time.Duration) *AppModel {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	menuView := NewMenuView(api, MsgRouter{}, perPage, timeout)
	m := &AppModel{
		Menu:       menuView,
		KeyHandler: NewKeyHandler(newKeybindRegistry()),
		api:        api,
		timeout:    timeout,
	}
	m.Views.Push(menuView)
	return m
}

func newKeybindRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	menuOnly := []AppMode{ModeMenu}
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDescForMode("SPC c", func() tea.Msg { return ShowCreateMsg{} }, "Create menu", menuOnly)
	reg.BindWithDescForMode("SPC r", func() tea.Msg { return RefreshMsg{} }, "Refresh", menuOnly)
	reg.BindWithDescForMode("SPC n", func() tea.Msg { return NextPageMsg{} }, "Next page", menuOnly)
	reg.BindWithDescForMode("SPC b", func() tea.Msg { return PrevPageMsg{} }, "Previous page", menuOnly)
	return reg
}

// Mode reports which screen is on top.
func (m *AppModel) Mode() AppMode {
	if _, ok := m.Views.Peek().(*DetailView); ok {
		return ModeDetail
	}
	return ModeMenu
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Menu.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, a.broadcast(msg)
	case NavigateMsg:
		return a, a.navigate(msg.Path)
	case BackMsg:
		if a.Views.Len() > 1 {
			a.Views.Pop()
		}
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}
	return a, a.broadcast(msg)
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	top := a.Views.Peek()
	if c, ok := top.(inputCapturer); !ok || !c.CapturingInput() {
		if a.KeyHandler != nil {
			if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode()); consumed {
				return cmd
			}
		}
	}
	v, cmd := top.Update(msg)
	a.Views.Replace(v)
	return cmd
}

// broadcast delivers non-key messages to every stacked view, so responses
// for the list still land while the detail screen is open.
func (a *appModelAdapter) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range a.Views.Stack {
		nv, cmd := v.Update(msg)
		a.Views.Stack[i] = nv
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (a *appModelAdapter) navigate(path string) tea.Cmd {
	id, ok := ParseDetailPath(path)
	if !ok {
		log.Printf("ui: no route for %q", path)
		return nil
	}
	var cached *menu.Item
	if it, ok := a.Menu.State.Item(id); ok {
		cached = &it
	}
	v := NewDetailView(a.api, a.timeout, id, cached)
	if a.width > 0 {
		v.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	a.Views.Push(v)
	return v.Init()
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	top := a.Views.Peek()
	if top == nil {
		return ""
	}
	base := top.View()
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode())
	}
	return base
}
