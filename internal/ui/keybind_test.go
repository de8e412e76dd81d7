package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("space q") == nil {
		t.Error("space should normalize to SPC")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_ModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("SPC c", tea.Quit, "Create menu", []AppMode{ModeMenu})
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	if reg.LookupForMode("SPC c", ModeDetail) != nil {
		t.Error("SPC c should not apply in detail mode")
	}
	if reg.LookupForMode("SPC c", ModeMenu) == nil {
		t.Error("SPC c should apply in menu mode")
	}
	hints := reg.LeaderHints("", ModeDetail)
	if _, ok := hints["c"]; ok {
		t.Error("detail hints should not include c")
	}
	if hints["q"] != "Quit" {
		t.Errorf("hints = %v", hints)
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg(" "), ModeMenu)
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"), ModeMenu)
	if !consumed || cmd == nil {
		t.Fatalf("x: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), ModeMenu)
	consumed, cmd := h.Handle(keyMsg("esc"), ModeMenu)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}

	if consumed, _ := h.Handle(keyMsg("esc"), ModeMenu); consumed {
		t.Error("esc outside leader mode should reach the views")
	}
}

func TestKeyHandler_UnknownSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), ModeMenu)
	consumed, cmd := h.Handle(keyMsg("z"), ModeMenu)
	if !consumed || cmd != nil || h.LeaderWaiting {
		t.Errorf("z: consumed=%v cmd=%v waiting=%v", consumed, cmd, h.LeaderWaiting)
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"), ModeDetail)
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
	if consumed, _ := h.Handle(keyMsg("j"), ModeMenu); consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	h := NewKeyHandler(newKeybindRegistry())
	if RenderKeybindHelp(h, ModeMenu) == "" {
		t.Fatal("expected help output")
	}
	h.Handle(keyMsg(" "), ModeMenu)
	out := RenderKeybindHelp(h, ModeMenu)
	for _, want := range []string{"SPC", "Create menu", "Refresh", "Next page", "Previous page", "Quit", "cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q:\n%s", want, out)
		}
	}
}
