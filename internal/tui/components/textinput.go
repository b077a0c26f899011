package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/extcat/internal/tui/styles"
)

// TextInput is a labelled wrapper around the bubbles textinput.
type TextInput struct {
	model   textinput.Model
	label   string
	focused bool
	width   int
}

// NewTextInput creates a new TextInput component.
func NewTextInput(label string) *TextInput {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 30
	ti.Prompt = ""

	return &TextInput{
		model: ti,
		label: label,
	}
}

// Focus focuses the text input.
func (t *TextInput) Focus() tea.Cmd {
	t.focused = true
	return t.model.Focus()
}

// Blur removes focus from the text input.
func (t *TextInput) Blur() {
	t.focused = false
	t.model.Blur()
}

// Focused returns whether the text input is focused.
func (t *TextInput) Focused() bool {
	return t.focused
}

// SetValue sets the text input value.
func (t *TextInput) SetValue(value string) {
	t.model.SetValue(value)
}

// Value returns the current text input value.
func (t *TextInput) Value() string {
	return t.model.Value()
}

// SetPlaceholder sets the placeholder text.
func (t *TextInput) SetPlaceholder(placeholder string) {
	t.model.Placeholder = placeholder
}

// SetWidth sets the width of the text input, label included.
func (t *TextInput) SetWidth(width int) {
	t.width = width
	t.model.Width = width - len(t.label) - 5
	if t.model.Width < 10 {
		t.model.Width = 10
	}
}

// Update handles messages for the text input. Unfocused inputs ignore input.
func (t *TextInput) Update(msg tea.Msg) (*TextInput, tea.Cmd) {
	if !t.focused {
		return t, nil
	}

	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t *TextInput) View() string {
	labelStyle := styles.HeaderLabelStyle
	inputStyle := styles.InputStyle
	if t.focused {
		labelStyle = styles.FocusedLabelStyle
		inputStyle = styles.InputFocusedStyle
	}

	return labelStyle.Render(t.label+": ") + inputStyle.Render(t.model.View())
}

// Reset clears the text input value.
func (t *TextInput) Reset() {
	t.model.Reset()
}
