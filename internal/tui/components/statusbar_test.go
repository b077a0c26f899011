package components

import (
	"strings"
	"testing"
)

func TestStatusBar_CountText(t *testing.T) {
	tests := []struct {
		name                      string
		matched, total, malformed int
		filtered                  bool
		want                      string
	}{
		{"unfiltered", 3, 3, 0, false, "3 extensions"},
		{"filtered", 1, 3, 0, true, "1 of 3 extensions"},
		{"malformed", 3, 4, 1, false, "4 extensions (1 skipped)"},
		{"no match", 0, 3, 0, true, "0 of 3 extensions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStatusBar()
			s.SetCounts(tt.matched, tt.total, tt.malformed, tt.filtered)
			if got := s.CountText(); got != tt.want {
				t.Errorf("CountText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusBar_View(t *testing.T) {
	s := NewStatusBar()
	s.SetCounts(1, 3, 0, true)
	s.SetMessage("catalog reloaded")
	s.SetWidth(200)

	view := s.View()
	for _, want := range []string{"1 of 3 extensions", "catalog reloaded", "reset"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q: %s", want, view)
		}
	}
}

func TestStatusBar_Shortcuts(t *testing.T) {
	s := NewStatusBar()
	s.SetShortcuts(PickerShortcuts)

	if !strings.Contains(s.View(), "close") {
		t.Error("picker shortcuts should be shown")
	}
	if len(s.Data().Shortcuts) != len(PickerShortcuts) {
		t.Errorf("Shortcuts = %d, want %d", len(s.Data().Shortcuts), len(PickerShortcuts))
	}
}

func TestShortcutBar(t *testing.T) {
	if NewShortcutBar().View() != "" {
		t.Error("empty shortcut bar should render nothing")
	}

	view := NewShortcutBar(ShortcutDef{"p", "platform"}, ShortcutDef{"q", "quit"}).View()
	for _, want := range []string{"p", ":platform", ":quit", "│"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q: %s", want, view)
		}
	}
}
