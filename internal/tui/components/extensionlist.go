package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/extcat/internal/extension"
	"github.com/wexinc/extcat/internal/tui/styles"
)

// EmptyResultsText is shown when no extension passes the filters.
const EmptyResultsText = "No extensions match"

// ExtensionList is a scrollable list of filter results.
type ExtensionList struct {
	items       []*extension.Extension
	selected    int
	height      int
	width       int
	scrollStart int
	focused     bool
}

// NewExtensionList creates a new ExtensionList component.
func NewExtensionList() *ExtensionList {
	return &ExtensionList{height: 10}
}

// SetItems replaces the listed extensions. The cursor is clamped to the new list.
func (l *ExtensionList) SetItems(items []*extension.Extension) {
	l.items = items
	if l.selected >= len(items) {
		l.selected = len(items) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
	l.updateScroll()
}

// Items returns the listed extensions.
func (l *ExtensionList) Items() []*extension.Extension {
	return l.items
}

// SetSize sets both width and height.
func (l *ExtensionList) SetSize(width, height int) {
	l.width = width
	if height > 0 {
		l.height = height
	}
	l.updateScroll()
}

// SetFocused sets whether the list is focused.
func (l *ExtensionList) SetFocused(focused bool) {
	l.focused = focused
}

// Focused returns whether the list is focused.
func (l *ExtensionList) Focused() bool {
	return l.focused
}

// Selected returns the cursor index.
func (l *ExtensionList) Selected() int {
	return l.selected
}

// SelectedItem returns the extension under the cursor, or nil if the list is empty.
func (l *ExtensionList) SelectedItem() *extension.Extension {
	if len(l.items) == 0 {
		return nil
	}
	return l.items[l.selected]
}

// MoveUp moves the cursor up.
func (l *ExtensionList) MoveUp() {
	if l.selected > 0 {
		l.selected--
		l.updateScroll()
	}
}

// MoveDown moves the cursor down.
func (l *ExtensionList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
		l.updateScroll()
	}
}

// GoToTop moves the cursor to the first item.
func (l *ExtensionList) GoToTop() {
	l.selected = 0
	l.updateScroll()
}

// GoToBottom moves the cursor to the last item.
func (l *ExtensionList) GoToBottom() {
	if len(l.items) > 0 {
		l.selected = len(l.items) - 1
		l.updateScroll()
	}
}

func (l *ExtensionList) updateScroll() {
	if l.selected < l.scrollStart {
		l.scrollStart = l.selected
	}
	if l.selected >= l.scrollStart+l.height {
		l.scrollStart = l.selected - l.height + 1
	}
	if l.scrollStart > len(l.items)-1 {
		l.scrollStart = len(l.items) - 1
	}
	if l.scrollStart < 0 {
		l.scrollStart = 0
	}
}

// Update handles keyboard navigation.
func (l *ExtensionList) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "up", "k":
		l.MoveUp()
	case "down", "j":
		l.MoveDown()
	case "home", "g":
		l.GoToTop()
	case "end", "G":
		l.GoToBottom()
	}
	return nil
}

// View renders the list.
func (l *ExtensionList) View() string {
	if len(l.items) == 0 {
		return styles.EmptyStateStyle.Render(EmptyResultsText)
	}

	end := l.scrollStart + l.height
	if end > len(l.items) {
		end = len(l.items)
	}

	lines := make([]string, 0, end-l.scrollStart+2)
	if l.scrollStart > 0 {
		lines = append(lines, styles.MutedTextStyle.Render("  ↑ more above"))
	}
	for i := l.scrollStart; i < end; i++ {
		lines = append(lines, l.renderItem(l.items[i], i == l.selected))
	}
	if end < len(l.items) {
		lines = append(lines, styles.MutedTextStyle.Render("  ↓ more below"))
	}
	return strings.Join(lines, "\n")
}

func (l *ExtensionList) renderItem(e *extension.Extension, isSelected bool) string {
	indicator := "  "
	if isSelected && l.focused {
		indicator = styles.FocusedLabelStyle.Render("▶ ")
	}

	line := indicator + styles.ExtensionNameStyle.Render(e.Name)
	if cats := e.DisplayCategories(); cats != "" {
		line += "  " + styles.CategoryTextStyle.Render(cats)
	}
	if platforms := e.DisplayPlatforms(); platforms != "" {
		line += "  " + styles.PlatformTextStyle.Render("· "+platforms)
	}

	lineStyle := lipgloss.NewStyle()
	if isSelected && l.focused {
		lineStyle = styles.SelectedLineStyle
	}
	if l.width > 0 {
		lineStyle = lineStyle.MaxWidth(l.width)
	}
	return lineStyle.Render(line)
}
