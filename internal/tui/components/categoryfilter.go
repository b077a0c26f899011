package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/extcat/internal/extension"
	"github.com/wexinc/extcat/internal/tui/styles"
)

// CategoryFilter is a vertical list of category checkboxes.
// It does not change its own ticks: toggling emits CategoryToggledMsg and
// the owner calls SetSelected once the filter state has changed.
type CategoryFilter struct {
	boxes   []*Checkbox
	cursor  int
	focused bool
	height  int
}

// CategoryToggledMsg asks for a category to be added to or removed from the filter.
type CategoryToggledMsg struct {
	Category string
}

// NewCategoryFilter creates an empty category filter.
func NewCategoryFilter() *CategoryFilter {
	return &CategoryFilter{height: 10}
}

// SetCategories replaces the available categories, keeping ticks on values that remain.
func (c *CategoryFilter) SetCategories(values []string) {
	checked := make(map[string]bool, len(c.boxes))
	for _, b := range c.boxes {
		checked[b.Value()] = b.Checked()
	}

	c.boxes = make([]*Checkbox, len(values))
	for i, v := range values {
		c.boxes[i] = NewCheckbox(v, extension.Label(v))
		c.boxes[i].SetChecked(checked[v])
	}
	if c.cursor >= len(c.boxes) {
		c.cursor = len(c.boxes) - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
	c.syncFocus()
}

// SetSelected ticks exactly the categories for which has returns true.
func (c *CategoryFilter) SetSelected(has func(string) bool) {
	for _, b := range c.boxes {
		b.SetChecked(has(b.Value()))
	}
}

// Checked returns the ticked category values in display order.
func (c *CategoryFilter) Checked() []string {
	var out []string
	for _, b := range c.boxes {
		if b.Checked() {
			out = append(out, b.Value())
		}
	}
	return out
}

// Len returns the number of categories.
func (c *CategoryFilter) Len() int {
	return len(c.boxes)
}

// Cursor returns the index of the highlighted category.
func (c *CategoryFilter) Cursor() int {
	return c.cursor
}

// SetHeight sets how many checkboxes are shown at once.
func (c *CategoryFilter) SetHeight(height int) {
	if height > 0 {
		c.height = height
	}
}

// Focus gives the filter keyboard focus.
func (c *CategoryFilter) Focus() {
	c.focused = true
	c.syncFocus()
}

// Blur removes keyboard focus.
func (c *CategoryFilter) Blur() {
	c.focused = false
	c.syncFocus()
}

// Focused returns whether the filter has focus.
func (c *CategoryFilter) Focused() bool {
	return c.focused
}

func (c *CategoryFilter) syncFocus() {
	for i, b := range c.boxes {
		b.SetFocused(c.focused && i == c.cursor)
	}
}

// Update moves the cursor and emits CategoryToggledMsg on space or enter.
func (c *CategoryFilter) Update(msg tea.Msg) tea.Cmd {
	if !c.focused || len(c.boxes) == 0 {
		return nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(c.boxes)-1 {
			c.cursor++
		}
	case "home", "g":
		c.cursor = 0
	case "end", "G":
		c.cursor = len(c.boxes) - 1
	case " ", "enter":
		category := c.boxes[c.cursor].Value()
		return func() tea.Msg {
			return CategoryToggledMsg{Category: category}
		}
	}
	c.syncFocus()
	return nil
}

// View renders the checkbox list under a "Category" heading.
func (c *CategoryFilter) View() string {
	title := styles.HeaderLabelStyle
	if c.focused {
		title = styles.FocusedLabelStyle
	}

	var b strings.Builder
	b.WriteString(title.Render("Category"))
	b.WriteString("\n")

	if len(c.boxes) == 0 {
		b.WriteString(styles.MutedTextStyle.Render("  none"))
		return b.String()
	}

	start := 0
	if c.cursor >= c.height {
		start = c.cursor - c.height + 1
	}
	end := start + c.height
	if end > len(c.boxes) {
		end = len(c.boxes)
	}

	if start > 0 {
		b.WriteString(styles.MutedTextStyle.Render("  ↑ more"))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(c.boxes[i].View())
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if end < len(c.boxes) {
		b.WriteString("\n")
		b.WriteString(styles.MutedTextStyle.Render("  ↓ more"))
	}
	return b.String()
}
