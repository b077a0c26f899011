package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/extcat/internal/extension"
)

func listFixture(n int) []*extension.Extension {
	names := []string{"JDiamond", "Molluscs", "JRuby", "Amber", "Pearl"}
	out := make([]*extension.Extension, n)
	for i := range out {
		out[i] = &extension.Extension{
			Name:         names[i%len(names)],
			SortableName: strings.ToLower(names[i%len(names)]),
			Slug:         strings.ToLower(names[i%len(names)]),
			Metadata:     extension.Metadata{Categories: []string{"jewellery"}},
			Platforms:    []string{"a mine"},
		}
	}
	return out
}

func TestExtensionList_Empty(t *testing.T) {
	l := NewExtensionList()

	if l.SelectedItem() != nil {
		t.Error("SelectedItem() should be nil for an empty list")
	}
	if !strings.Contains(l.View(), EmptyResultsText) {
		t.Errorf("View() = %q, want empty state", l.View())
	}
}

func TestExtensionList_View(t *testing.T) {
	l := NewExtensionList()
	l.SetItems(listFixture(2))
	l.SetFocused(true)

	view := l.View()
	for _, want := range []string{"JDiamond", "Molluscs", "Jewellery", "A Mine", "▶"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestExtensionList_Navigation(t *testing.T) {
	l := NewExtensionList()
	l.SetItems(listFixture(3))

	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	if l.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", l.Selected())
	}
	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	if l.Selected() != 2 {
		t.Errorf("Selected() after G = %d, want 2", l.Selected())
	}
	l.MoveDown()
	if l.Selected() != 2 {
		t.Errorf("Selected() past end = %d, want 2", l.Selected())
	}
	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if l.Selected() != 0 {
		t.Errorf("Selected() after g = %d, want 0", l.Selected())
	}
	l.MoveUp()
	if l.Selected() != 0 {
		t.Errorf("Selected() before start = %d, want 0", l.Selected())
	}
	if l.SelectedItem().Name != "JDiamond" {
		t.Errorf("SelectedItem() = %q", l.SelectedItem().Name)
	}
}

func TestExtensionList_ClampsOnShrink(t *testing.T) {
	l := NewExtensionList()
	l.SetItems(listFixture(5))
	l.GoToBottom()

	l.SetItems(listFixture(2))
	if l.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", l.Selected())
	}

	l.SetItems(nil)
	if l.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", l.Selected())
	}
}

func TestExtensionList_Scroll(t *testing.T) {
	l := NewExtensionList()
	l.SetSize(80, 2)
	l.SetItems(listFixture(5))

	if !strings.Contains(l.View(), "more below") {
		t.Error("long list should show more below")
	}

	l.GoToBottom()
	view := l.View()
	if !strings.Contains(view, "more above") {
		t.Error("scrolled list should show more above")
	}
	if !strings.Contains(view, "Pearl") {
		t.Error("last item should be visible after GoToBottom")
	}
}
