package extension

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label converts a stored category or platform value into its display form.
// "a mine" becomes "A Mine".
func Label(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	// Casers keep state between calls, so each call gets its own.
	return cases.Title(language.Und).String(value)
}

// Labels converts every value with Label, keeping order.
func Labels(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Label(v)
	}
	return out
}

// DisplayCategories joins the display labels of the extension's categories.
func (e *Extension) DisplayCategories() string {
	return strings.Join(Labels(e.Metadata.Categories), ", ")
}

// DisplayPlatforms joins the display labels of the extension's platforms.
func (e *Extension) DisplayPlatforms() string {
	return strings.Join(Labels(e.Platforms), ", ")
}
