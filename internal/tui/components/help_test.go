package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHelpOverlay_Toggle(t *testing.T) {
	h := NewHelpOverlay()
	if h.IsVisible() || h.View() != "" {
		t.Error("help should start hidden")
	}

	h.Toggle()
	if !h.IsVisible() {
		t.Error("Toggle() should show help")
	}
	h.Toggle()
	if h.IsVisible() {
		t.Error("second Toggle() should hide help")
	}
}

func TestHelpOverlay_Groups(t *testing.T) {
	h := NewHelpOverlay()
	groups := h.Groups()

	var titles []string
	for _, g := range groups {
		titles = append(titles, g.Title)
	}
	if strings.Join(titles, ",") != "Filtering,Navigation,General" {
		t.Errorf("groups = %v", titles)
	}

	h.Show()
	view := h.View()
	for _, want := range []string{"Keyboard Shortcuts", "Pick platforms", "Clear all filters"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHelpOverlay_Close(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyEscape},
		{Type: tea.KeyRunes, Runes: []rune{'?'}},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		h := NewHelpOverlay()
		h.Show()

		cmd := h.Update(key)
		if h.IsVisible() {
			t.Errorf("%s should close help", key.String())
		}
		if cmd == nil {
			t.Fatalf("%s should return a command", key.String())
		}
		if _, ok := cmd().(HelpClosedMsg); !ok {
			t.Errorf("%s: got %T, want HelpClosedMsg", key.String(), cmd())
		}
	}
}

func TestHelpOverlay_IgnoresOtherKeys(t *testing.T) {
	h := NewHelpOverlay()
	h.Show()

	if cmd := h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}); cmd != nil {
		t.Error("other keys should be ignored")
	}
	if !h.IsVisible() {
		t.Error("help should stay open")
	}
}
