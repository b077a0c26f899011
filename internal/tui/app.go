// Package tui provides the interactive extension browser.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/extcat/internal/catalog"
	"github.com/wexinc/extcat/internal/filter"
	"github.com/wexinc/extcat/internal/tui/components"
	"github.com/wexinc/extcat/internal/tui/styles"
)

// FocusedPane indicates which pane receives keys.
type FocusedPane int

const (
	FocusSearch FocusedPane = iota
	FocusCategories
	FocusResults
	focusCount
)

const sidebarWidth = 30

// Options configures the browser.
type Options struct {
	Title       string
	Description string
	CatalogPath string
	// SiteURL and PathPrefix resolve the selected extension's link.
	SiteURL    string
	PathPrefix string
}

// Model is the Bubble Tea model for the extension browser.
// The filter session is the single source of truth for what is selected;
// components report toggles and are re-synced from the session's view.
type Model struct {
	// Components
	header      *components.Header
	search      *components.TextInput
	categories  *components.CategoryFilter
	picker      *components.PlatformPicker
	results     *components.ExtensionList
	statusBar   *components.StatusBar
	helpOverlay *components.HelpOverlay

	session *filter.Session
	catalog *catalog.Catalog

	siteURL    string
	pathPrefix string

	focusedPane FocusedPane
	lastError   string

	width  int
	height int

	quitting bool
}

// New creates a browser over cat.
func New(cat *catalog.Catalog, opts Options) *Model {
	if cat == nil {
		cat = catalog.New(nil)
	}

	m := &Model{
		header:      components.NewHeader(),
		search:      components.NewTextInput("Search"),
		categories:  components.NewCategoryFilter(),
		picker:      components.NewPlatformPicker(),
		results:     components.NewExtensionList(),
		statusBar:   components.NewStatusBar(),
		helpOverlay: components.NewHelpOverlay(),
		session:     filter.NewSession(nil),
		siteURL:     opts.SiteURL,
		pathPrefix:  opts.PathPrefix,
	}
	m.search.SetPlaceholder("extension name")

	title := opts.Title
	if title == "" {
		title = "extcat"
	}
	path := opts.CatalogPath
	if path == "" {
		path = cat.Path
	}
	m.header.SetData(components.HeaderData{
		Title:       title,
		Description: opts.Description,
		CatalogPath: path,
	})

	m.session.Subscribe(m.applyView)
	m.SetCatalog(cat)
	m.setFocus(FocusSearch)
	return m
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return m.search.Focus()
}

// Session returns the filter session backing the browser.
func (m *Model) Session() *filter.Session {
	return m.session
}

// Focused returns the pane that receives keys.
func (m *Model) Focused() FocusedPane {
	return m.focusedPane
}

// SetCatalog swaps the browsed catalog, keeping the current filters.
func (m *Model) SetCatalog(cat *catalog.Catalog) {
	m.catalog = cat
	m.categories.SetCategories(cat.Categories())
	m.picker.SetPlatforms(cat.Platforms())
	m.session.SetExtensions(cat.Extensions)
}

// applyView syncs every component with the session.
func (m *Model) applyView(v filter.View) {
	m.results.SetItems(v.Extensions)
	m.categories.SetSelected(v.State.Categories.Has)
	m.picker.SetSelected(v.State.Platforms.Values())
	m.statusBar.SetCounts(v.Matched(), v.Total, v.Total-v.Valid, !v.State.IsEmpty())
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case components.CategoryToggledMsg:
		m.session.ToggleCategory(msg.Category)
		return m, nil

	case components.PlatformToggledMsg:
		m.session.TogglePlatform(msg.Platform)
		return m, nil

	case components.PlatformPickerClosedMsg, components.HelpClosedMsg:
		m.updateShortcuts()
		return m, nil

	case CatalogReloadedMsg:
		if msg.Catalog != nil {
			m.SetCatalog(msg.Catalog)
			m.lastError = ""
			m.statusBar.SetMessage("catalog reloaded")
		}
		return m, nil

	case ErrorMsg:
		m.lastError = msg.Error
		return m, nil

	case QuitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	// Cursor blink and other internal messages.
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// handleKeyPress routes keyboard input. Overlays capture input first,
// then global keys, then the focused pane.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.helpOverlay.IsVisible() {
		return m, m.helpOverlay.Update(msg)
	}
	if m.picker.IsVisible() {
		return m, m.picker.Update(msg)
	}

	switch key {
	case "tab":
		return m, m.setFocus((m.focusedPane + 1) % focusCount)
	case "shift+tab":
		return m, m.setFocus((m.focusedPane + focusCount - 1) % focusCount)
	case "ctrl+r":
		m.reset()
		return m, nil
	}

	if m.focusedPane == FocusSearch {
		switch key {
		case "esc", "enter", "down":
			return m, m.setFocus(FocusResults)
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.session.SetSearch(m.search.Value())
		return m, cmd
	}

	switch key {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.helpOverlay.Toggle()
		m.updateShortcuts()
		return m, nil
	case "p":
		m.picker.Show()
		m.updateShortcuts()
		return m, nil
	case "/":
		return m, m.setFocus(FocusSearch)
	case "esc":
		m.lastError = ""
		m.statusBar.SetMessage("")
		return m, nil
	}

	switch m.focusedPane {
	case FocusCategories:
		return m, m.categories.Update(msg)
	case FocusResults:
		return m, m.results.Update(msg)
	}
	return m, nil
}

func (m *Model) reset() {
	m.search.SetValue("")
	m.session.Reset()
	m.statusBar.SetMessage("filters cleared")
}

func (m *Model) setFocus(pane FocusedPane) tea.Cmd {
	m.focusedPane = pane
	m.search.Blur()
	m.categories.Blur()
	m.results.SetFocused(false)

	var cmd tea.Cmd
	switch pane {
	case FocusSearch:
		cmd = m.search.Focus()
	case FocusCategories:
		m.categories.Focus()
	case FocusResults:
		m.results.SetFocused(true)
	}
	m.updateShortcuts()
	return cmd
}

func (m *Model) updateShortcuts() {
	switch {
	case m.picker.IsVisible():
		m.statusBar.SetShortcuts(components.PickerShortcuts)
	case m.focusedPane == FocusSearch:
		m.statusBar.SetShortcuts(components.SearchShortcuts)
	default:
		m.statusBar.SetShortcuts(components.BrowseShortcuts)
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.header.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.search.SetWidth(width - 4)

	// header, search box, status bar and box borders
	bodyHeight := height - 9
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	m.categories.SetHeight(bodyHeight - 4)
	// two lines under the list for the selected link
	m.results.SetSize(width-sidebarWidth-6, bodyHeight-2)

	pickerHeight := height - 4
	if pickerHeight > 16 {
		pickerHeight = 16
	}
	m.picker.SetSize(50, pickerHeight)
	m.helpOverlay.SetWidth(60)
}

// View renders the browser.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.header.View())
	b.WriteString("\n")

	searchBox := styles.BoxStyle
	if m.focusedPane == FocusSearch {
		searchBox = styles.FocusedBoxStyle
	}
	if m.width > 0 {
		searchBox = searchBox.Width(m.width - 2)
	}
	b.WriteString(searchBox.Render(m.search.View()))
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), m.resultsView()))
	b.WriteString("\n")

	if m.lastError != "" {
		b.WriteString(styles.ErrorTextStyle.Render("Error: " + m.lastError))
		b.WriteString("\n")
	}

	b.WriteString(m.statusBar.View())
	view := b.String()

	if m.helpOverlay.IsVisible() {
		view = m.renderOverlay(view, m.helpOverlay.View())
	}
	if m.picker.IsVisible() {
		view = m.renderOverlay(view, m.picker.View())
	}
	return view
}

func (m *Model) sidebarView() string {
	box := styles.BoxStyle
	if m.focusedPane == FocusCategories {
		box = styles.FocusedBoxStyle
	}

	platform := styles.HeaderLabelStyle.Render("Platform") + "\n" +
		styles.HeaderValueStyle.Render(m.picker.Summary()) + "\n" +
		styles.MutedTextStyle.Render("press p to change")

	return box.Width(sidebarWidth).Render(m.categories.View() + "\n\n" + platform)
}

func (m *Model) resultsView() string {
	box := styles.BoxStyle
	if m.focusedPane == FocusResults {
		box = styles.FocusedBoxStyle
	}
	if m.width > 0 {
		box = box.Width(m.width - sidebarWidth - 4)
	}
	content := m.results.View()
	if link := m.SelectedLink(); link != "" {
		content += "\n\n" + styles.MutedTextStyle.Render("Link: "+link)
	}
	return box.Render(content)
}

// SelectedLink returns the page URL of the extension under the results
// cursor, or "" when nothing matches.
func (m *Model) SelectedLink() string {
	ext := m.results.SelectedItem()
	if ext == nil {
		return ""
	}
	return ext.Link(m.siteURL, m.pathPrefix)
}

// renderOverlay centers overlay on the screen. Without a known window size
// it is appended below the base view.
func (m *Model) renderOverlay(base, overlay string) string {
	if overlay == "" {
		return base
	}
	if m.width == 0 || m.height == 0 {
		return base + "\n" + overlay
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}
