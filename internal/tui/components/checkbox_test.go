package components

import (
	"strings"
	"testing"
)

func TestNewCheckbox(t *testing.T) {
	cb := NewCheckbox("a mine", "A Mine")

	if cb.Value() != "a mine" {
		t.Errorf("Value() = %q, want %q", cb.Value(), "a mine")
	}
	if cb.Label() != "A Mine" {
		t.Errorf("Label() = %q, want %q", cb.Label(), "A Mine")
	}
	if cb.Checked() {
		t.Error("Checkbox should not be checked initially")
	}
}

func TestCheckboxToggle(t *testing.T) {
	cb := NewCheckbox("snails", "Snails")

	cb.Toggle()
	if !cb.Checked() {
		t.Error("Checkbox should be checked after Toggle()")
	}
	cb.Toggle()
	if cb.Checked() {
		t.Error("Checkbox should be unchecked after second Toggle()")
	}
}

func TestCheckboxView(t *testing.T) {
	cb := NewCheckbox("snails", "Snails")

	if view := cb.View(); !strings.Contains(view, "[ ]") || !strings.Contains(view, "Snails") {
		t.Errorf("unchecked view = %q", view)
	}

	cb.SetChecked(true)
	cb.SetFocused(true)
	if !cb.Focused() {
		t.Error("Focused() should be true")
	}
	if view := cb.View(); !strings.Contains(view, "[✓]") {
		t.Errorf("checked view = %q", view)
	}
}
