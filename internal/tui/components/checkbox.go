package components

import (
	"github.com/wexinc/extcat/internal/tui/styles"
)

// Checkbox is one tick filter. Value is the raw facet value; label is what the user sees.
type Checkbox struct {
	value   string
	label   string
	checked bool
	focused bool
}

// NewCheckbox creates a new Checkbox component.
func NewCheckbox(value, label string) *Checkbox {
	return &Checkbox{
		value: value,
		label: label,
	}
}

// Value returns the facet value the checkbox stands for.
func (c *Checkbox) Value() string {
	return c.value
}

// Label returns the display label.
func (c *Checkbox) Label() string {
	return c.label
}

// SetFocused marks the checkbox as the cursor position.
func (c *Checkbox) SetFocused(focused bool) {
	c.focused = focused
}

// Focused returns whether the checkbox is focused.
func (c *Checkbox) Focused() bool {
	return c.focused
}

// Toggle toggles the checkbox state.
func (c *Checkbox) Toggle() {
	c.checked = !c.checked
}

// SetChecked sets the checkbox state.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}

// Checked returns whether the checkbox is checked.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// View renders the checkbox.
func (c *Checkbox) View() string {
	box := styles.CheckboxUncheckedStyle.Render("[ ]")
	if c.checked {
		box = styles.CheckboxCheckedStyle.Render("[✓]")
	}

	labelStyle := styles.HeaderLabelStyle
	if c.focused {
		labelStyle = styles.FocusedLabelStyle
	}
	return box + " " + labelStyle.Render(c.label)
}
