package components

import (
	"slices"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/extcat/internal/extension"
	"github.com/wexinc/extcat/internal/tui/styles"
)

// PlatformPicker is a multi-select overlay listing every platform.
// Like CategoryFilter it only reports toggles; the owner updates the selection.
type PlatformPicker struct {
	platforms   []string
	selected    map[string]bool
	cursor      int
	visible     bool
	width       int
	height      int
	scrollStart int
}

// PlatformToggledMsg asks for a platform to be added to or removed from the filter.
type PlatformToggledMsg struct {
	Platform string
}

// PlatformPickerClosedMsg is sent when the picker is dismissed.
type PlatformPickerClosedMsg struct{}

// NewPlatformPicker creates a new PlatformPicker component.
func NewPlatformPicker() *PlatformPicker {
	return &PlatformPicker{
		selected: map[string]bool{},
		width:    50,
		height:   12,
	}
}

// SetPlatforms replaces the available platforms.
func (p *PlatformPicker) SetPlatforms(platforms []string) {
	p.platforms = platforms
	if p.cursor >= len(platforms) {
		p.cursor = len(platforms) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.ensureVisible()
}

// SetSelected marks the given platforms as selected.
func (p *PlatformPicker) SetSelected(platforms []string) {
	p.selected = make(map[string]bool, len(platforms))
	for _, v := range platforms {
		p.selected[v] = true
	}
}

// IsSelected reports whether platform is currently selected.
func (p *PlatformPicker) IsSelected(platform string) bool {
	return p.selected[platform]
}

// Highlighted returns the platform under the cursor, or "" when there are none.
func (p *PlatformPicker) Highlighted() string {
	if len(p.platforms) == 0 {
		return ""
	}
	return p.platforms[p.cursor]
}

// SetSize sets the picker dimensions.
func (p *PlatformPicker) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.ensureVisible()
}

// Show makes the picker visible.
func (p *PlatformPicker) Show() {
	p.visible = true
}

// Hide hides the picker.
func (p *PlatformPicker) Hide() {
	p.visible = false
}

// IsVisible returns whether the picker is visible.
func (p *PlatformPicker) IsVisible() bool {
	return p.visible
}

// Summary describes the selection for display outside the overlay.
func (p *PlatformPicker) Summary() string {
	var labels []string
	for _, v := range p.platforms {
		if p.selected[v] {
			labels = append(labels, extension.Label(v))
		}
	}
	// Selected values that are no longer in the catalog still filter.
	var stale []string
	for v := range p.selected {
		if !slices.Contains(p.platforms, v) {
			stale = append(stale, v)
		}
	}
	sort.Strings(stale)
	labels = append(labels, extension.Labels(stale)...)
	if len(labels) == 0 {
		return "Any"
	}
	return strings.Join(labels, ", ")
}

func (p *PlatformPicker) visibleRows() int {
	rows := p.height - 4 // title, help and borders
	if rows < 1 {
		rows = 5
	}
	return rows
}

func (p *PlatformPicker) ensureVisible() {
	rows := p.visibleRows()
	if p.cursor < p.scrollStart {
		p.scrollStart = p.cursor
	} else if p.cursor >= p.scrollStart+rows {
		p.scrollStart = p.cursor - rows + 1
	}
	if p.scrollStart < 0 {
		p.scrollStart = 0
	}
}

// Update handles input while the picker is visible.
func (p *PlatformPicker) Update(msg tea.Msg) tea.Cmd {
	if !p.visible {
		return nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
			p.ensureVisible()
		}
	case "down", "j":
		if p.cursor < len(p.platforms)-1 {
			p.cursor++
			p.ensureVisible()
		}
	case " ", "enter":
		if platform := p.Highlighted(); platform != "" {
			return func() tea.Msg {
				return PlatformToggledMsg{Platform: platform}
			}
		}
	case "esc", "p", "q":
		p.Hide()
		return func() tea.Msg {
			return PlatformPickerClosedMsg{}
		}
	}
	return nil
}

// View renders the picker.
func (p *PlatformPicker) View() string {
	if !p.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(styles.Secondary).
		Bold(true).
		Padding(0, 1)
	b.WriteString(titleStyle.Render("Platform"))
	b.WriteString("\n\n")

	if len(p.platforms) == 0 {
		b.WriteString(styles.MutedTextStyle.Italic(true).Render("  No platforms in this catalog"))
		b.WriteString("\n")
	} else {
		end := p.scrollStart + p.visibleRows()
		if end > len(p.platforms) {
			end = len(p.platforms)
		}

		if p.scrollStart > 0 {
			b.WriteString(styles.MutedTextStyle.Render("  ↑ more above"))
			b.WriteString("\n")
		}
		for i := p.scrollStart; i < end; i++ {
			b.WriteString(p.renderRow(p.platforms[i], i == p.cursor))
			b.WriteString("\n")
		}
		if end < len(p.platforms) {
			b.WriteString(styles.MutedTextStyle.Render("  ↓ more below"))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Italic(true).Render("j/k: navigate  Space: toggle  Esc: close"))

	return styles.FocusedBoxStyle.Width(p.width - 2).Render(b.String())
}

func (p *PlatformPicker) renderRow(platform string, highlighted bool) string {
	indicator := "  "
	if highlighted {
		indicator = styles.FocusedLabelStyle.Render("▶ ")
	}

	box := styles.CheckboxUncheckedStyle.Render("[ ]")
	if p.selected[platform] {
		box = styles.CheckboxCheckedStyle.Render("[✓]")
	}

	nameStyle := lipgloss.NewStyle().Foreground(styles.Foreground)
	if highlighted {
		nameStyle = nameStyle.Bold(true)
	}
	return indicator + box + " " + nameStyle.Render(extension.Label(platform))
}
