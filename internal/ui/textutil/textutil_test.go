package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Soup", 10, "Soup"},
		{"Nasi goreng", 6, "Nasi …"},
		{"ラーメン", 5, "ラー…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if got := VisualWidth(Truncate(tt.in, tt.width)); got > tt.width {
			t.Errorf("Truncate(%q, %d) is %d columns wide", tt.in, tt.width, got)
		}
	}
}

func TestPadRightVisual(t *testing.T) {
	if got := PadRightVisual("ab", 4); got != "ab  " {
		t.Errorf("got %q", got)
	}
	if got := PadRightVisual("ラー", 6); VisualWidth(got) != 6 {
		t.Errorf("wide runes padded to %d columns", VisualWidth(got))
	}
	if got := PadRightVisual("abcdef", 4); got != "abc…" {
		t.Errorf("got %q", got)
	}
}
