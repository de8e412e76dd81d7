package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T, api MenuAPI) (*AppModel, tea.Model) {
	t.Helper()
	m := NewAppModel(api, 3, time.Second)
	a := m.AsTeaModel()
	drainModel(t, a, a.Init())
	return m, a
}

func drainModel(t *testing.T, a tea.Model, cmd tea.Cmd) {
	t.Helper()
	drainWith(t, func(msg tea.Msg) tea.Cmd {
		_, next := a.Update(msg)
		return next
	}, cmd)
}

func pressApp(t *testing.T, a tea.Model, keys ...string) {
	t.Helper()
	for _, k := range keys {
		_, cmd := a.Update(keyMsg(k))
		drainModel(t, a, cmd)
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestApp_EnterOpensDetailEscReturns(t *testing.T) {
	api := newFakeAPI(testPage(1, 3, 2, false, false, "1", "2"))
	m, a := newTestApp(t, api)

	pressApp(t, a, "j", "enter")
	if m.Mode() != ModeDetail {
		t.Fatalf("mode = %v, want Detail", m.Mode())
	}
	detail, ok := m.Views.Peek().(*DetailView)
	if !ok || detail.ID != "2" {
		t.Fatalf("top view = %#v", m.Views.Peek())
	}
	if len(api.gets) != 1 || !detail.HasItem || detail.Loading {
		t.Errorf("detail not loaded: gets=%v", api.gets)
	}

	pressApp(t, a, "esc")
	if m.Mode() != ModeMenu || m.Views.Len() != 1 {
		t.Errorf("esc should pop back to the menu, mode=%v len=%d", m.Mode(), m.Views.Len())
	}
}

func TestApp_UnknownRouteIgnored(t *testing.T) {
	m, a := newTestApp(t, newFakeAPI())
	drainModel(t, a, MsgRouter{}.Navigate("/settings"))
	if m.Views.Len() != 1 {
		t.Errorf("unknown route pushed a view")
	}
}

func TestApp_QuitKeys(t *testing.T) {
	_, a := newTestApp(t, newFakeAPI())
	if _, cmd := a.Update(keyMsg("q")); !isQuit(cmd) {
		t.Error("q should quit from the list")
	}
	if _, cmd := a.Update(keyMsg("ctrl+c")); !isQuit(cmd) {
		t.Error("ctrl+c should quit")
	}
}

func TestApp_ModalCapturesSingleKeys(t *testing.T) {
	m, a := newTestApp(t, newFakeAPI())
	pressApp(t, a, "c")
	form, ok := m.Menu.Form()
	if !ok {
		t.Fatal("c should open the create form")
	}

	a.Update(keyMsg("q"))
	a.Update(keyMsg(" "))
	if got := form.Draft().Name; got != "q " {
		t.Errorf("name = %q, want keys typed into the form", got)
	}
	if m.KeyHandler.LeaderWaiting {
		t.Error("space inside a form must not start a leader sequence")
	}
	if _, cmd := a.Update(keyMsg("ctrl+c")); !isQuit(cmd) {
		t.Error("ctrl+c should quit even with a modal open")
	}
}

func TestApp_LeaderCommandsFilteredByMode(t *testing.T) {
	api := newFakeAPI(testPage(1, 3, 1, false, false, "1"))
	m, a := newTestApp(t, api)

	a.Update(keyMsg(" "))
	if !strings.Contains(a.View(), "Create menu") {
		t.Error("help bar should list SPC c after the leader")
	}
	pressApp(t, a, "c")
	if !m.Menu.CapturingInput() {
		t.Fatal("SPC c should open the create form")
	}
	pressApp(t, a, "esc", "enter")
	if m.Mode() != ModeDetail {
		t.Fatal("expected detail mode")
	}

	a.Update(keyMsg(" "))
	if strings.Contains(a.View(), "Create menu") {
		t.Error("menu-only commands should be hidden in detail mode")
	}
	_, cmd := a.Update(keyMsg("c"))
	if cmd != nil {
		t.Error("SPC c should do nothing in detail mode")
	}
	if m.Menu.CapturingInput() {
		t.Error("create form opened from detail mode")
	}
}

func TestApp_ListResponsesReachMenuUnderDetail(t *testing.T) {
	api := newFakeAPI(testPage(1, 3, 1, false, false, "1"))
	m, a := newTestApp(t, api)
	pressApp(t, a, "enter")

	api.pages[1] = testPage(1, 3, 2, false, false, "1", "5")
	drainModel(t, a, m.Menu.Refresh())
	if len(m.Menu.State.Items) != 2 {
		t.Errorf("menu did not receive the reload while detail was open")
	}
}
