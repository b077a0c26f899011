package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/extcat/internal/tui/styles"
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Matched   int
	Total     int
	Malformed int
	Filtered  bool   // any filter is active
	Message   string // optional, e.g. "catalog reloaded"
	Shortcuts []ShortcutDef
}

// StatusBar shows result counts on the left and key hints on the right.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		data: StatusBarData{Shortcuts: BrowseShortcuts},
	}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// Data returns the current status bar data.
func (s *StatusBar) Data() StatusBarData {
	return s.data
}

// SetCounts updates the result counts.
func (s *StatusBar) SetCounts(matched, total, malformed int, filtered bool) {
	s.data.Matched = matched
	s.data.Total = total
	s.data.Malformed = malformed
	s.data.Filtered = filtered
}

// SetMessage sets an optional status message.
func (s *StatusBar) SetMessage(message string) {
	s.data.Message = message
}

// SetShortcuts replaces the key hints.
func (s *StatusBar) SetShortcuts(shortcuts []ShortcutDef) {
	s.data.Shortcuts = shortcuts
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// CountText describes the result counts in plain text.
func (s *StatusBar) CountText() string {
	text := fmt.Sprintf("%d of %d extensions", s.data.Matched, s.data.Total)
	if !s.data.Filtered {
		text = fmt.Sprintf("%d extensions", s.data.Total)
	}
	if s.data.Malformed > 0 {
		text += fmt.Sprintf(" (%d skipped)", s.data.Malformed)
	}
	return text
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")

	countStyle := lipgloss.NewStyle().Foreground(styles.Foreground)
	if s.data.Filtered && s.data.Matched == 0 {
		countStyle = countStyle.Foreground(styles.Warning)
	}
	left := countStyle.Render(s.CountText())

	if s.data.Message != "" {
		msgStyle := lipgloss.NewStyle().
			Foreground(styles.MutedLight).
			Italic(true)
		left += sep + msgStyle.Render(s.data.Message)
	}

	right := NewShortcutBar(s.data.Shortcuts...).View()

	container := styles.StatusBarStyle
	if s.width > 0 {
		container = container.Width(s.width)
		padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2 // container padding
		if padding > 0 {
			return container.Render(left + strings.Repeat(" ", padding) + right)
		}
	}
	return container.Render(left + "  " + right)
}
