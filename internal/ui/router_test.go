package ui

import (
	"testing"

	"menuview/internal/menu"
)

func TestDetailPathRoundTrip(t *testing.T) {
	for _, id := range []menu.ID{"1", "abc-123", "a b", "x%y"} {
		got, ok := ParseDetailPath(DetailPath(id))
		if !ok || got != id {
			t.Errorf("ParseDetailPath(DetailPath(%q)) = %q, %v", id, got, ok)
		}
	}
}

func TestParseDetailPath_Rejects(t *testing.T) {
	for _, p := range []string{"", "/detail/", "/detail/1/edit", "/menus", "/details/1"} {
		if _, ok := ParseDetailPath(p); ok {
			t.Errorf("ParseDetailPath(%q) should fail", p)
		}
	}
}

func TestMsgRouter_Navigate(t *testing.T) {
	cmd := MsgRouter{}.Navigate("/detail/5")
	msg, ok := cmd().(NavigateMsg)
	if !ok || msg.Path != "/detail/5" {
		t.Errorf("got %#v", cmd())
	}
}
