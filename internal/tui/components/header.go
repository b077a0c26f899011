// Package components provides the widgets the extcat browser is built from.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/extcat/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	Title       string
	Description string
	CatalogPath string
}

// Header displays the site title and the catalog being browsed.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{
		data: HeaderData{Title: "extcat"},
	}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// Data returns the current header data.
func (h *Header) Data() HeaderData {
	return h.data
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	content := styles.TitleStyle.Render(h.data.Title)

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	if h.data.Description != "" {
		content += sep + styles.HeaderLabelStyle.Render(h.data.Description)
	}
	if h.data.CatalogPath != "" {
		content += sep + styles.HeaderLabelStyle.Render("Catalog: ") +
			styles.HeaderValueStyle.Render(h.data.CatalogPath)
	}

	headerStyle := lipgloss.NewStyle().Padding(0, 1)
	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width)
	}
	return headerStyle.Render(content)
}
