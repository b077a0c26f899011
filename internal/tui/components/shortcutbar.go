package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/extcat/internal/tui/styles"
)

// ShortcutDef defines a single keyboard shortcut.
type ShortcutDef struct {
	Key  string
	Desc string
}

// ShortcutBar displays key hints in one line.
type ShortcutBar struct {
	shortcuts []ShortcutDef
}

// NewShortcutBar creates a new ShortcutBar with the given shortcuts.
func NewShortcutBar(shortcuts ...ShortcutDef) *ShortcutBar {
	return &ShortcutBar{shortcuts: shortcuts}
}

// View renders the shortcut bar.
func (s *ShortcutBar) View() string {
	if len(s.shortcuts) == 0 {
		return ""
	}

	parts := make([]string, len(s.shortcuts))
	for i, sc := range s.shortcuts {
		parts[i] = styles.KeyStyle.Render(sc.Key) + styles.HelpStyle.Render(":"+sc.Desc)
	}
	sep := lipgloss.NewStyle().Foreground(styles.Muted).Render(" │ ")
	return strings.Join(parts, sep)
}

// Shortcut sets for the browser.
var (
	// SearchShortcuts are shown while typing in the search box.
	SearchShortcuts = []ShortcutDef{
		{"Tab", "next"},
		{"Ctrl+R", "reset"},
		{"Esc", "results"},
		{"Ctrl+C", "quit"},
	}

	// BrowseShortcuts are shown while the categories or results have focus.
	BrowseShortcuts = []ShortcutDef{
		{"Tab", "next"},
		{"Space", "toggle"},
		{"p", "platform"},
		{"/", "search"},
		{"Ctrl+R", "reset"},
		{"q", "quit"},
		{"?", "help"},
	}

	// PickerShortcuts are shown while the platform picker is open.
	PickerShortcuts = []ShortcutDef{
		{"↑↓", "select"},
		{"Space", "toggle"},
		{"Esc", "close"},
	}
)
