// Package extension provides the extension record model for extcat.
package extension

import (
	"strings"
)

// Metadata holds descriptive data about an extension.
type Metadata struct {
	// Categories lists the catalog categories the extension belongs to (e.g., "data", "web").
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty" xml:"category"`
}

// Extension represents a single entry in the extension catalog.
// Extensions are loaded once and never modified afterwards.
type Extension struct {
	// Name is the display name (e.g., "RabbitMQ Client").
	Name string `json:"name" yaml:"name" xml:"name"`
	// SortableName is the key the catalog is ordered by (e.g., "rabbitmq client").
	SortableName string `json:"sortableName" yaml:"sortableName" xml:"sortableName"`
	// Slug is the path of the extension page relative to the site root.
	Slug string `json:"slug" yaml:"slug" xml:"slug"`
	// Metadata holds categories and other descriptive data.
	Metadata Metadata `json:"metadata" yaml:"metadata" xml:"metadata"`
	// Platforms lists the platforms the extension supports, in catalog order.
	Platforms []string `json:"platforms,omitempty" yaml:"platforms,omitempty" xml:"platform"`
	// Description is a markdown description, used for feed content.
	Description string `json:"description,omitempty" yaml:"description,omitempty" xml:"-"`
	// Excerpt is a short plain-text summary.
	Excerpt string `json:"excerpt,omitempty" yaml:"excerpt,omitempty" xml:"-"`
}

// Valid reports whether the record has every field the catalog needs.
// Invalid records are excluded from every view rather than reported.
func (e *Extension) Valid() bool {
	if e == nil {
		return false
	}
	return strings.TrimSpace(e.Name) != "" &&
		strings.TrimSpace(e.SortableName) != "" &&
		strings.TrimSpace(e.Slug) != ""
}

// SortKey returns the case-folded key used for ordering.
func (e *Extension) SortKey() string {
	if e == nil {
		return ""
	}
	return strings.ToLower(e.SortableName)
}

// Categories returns the extension's categories. Never nil.
func (e *Extension) Categories() []string {
	if e.Metadata.Categories == nil {
		return []string{}
	}
	return e.Metadata.Categories
}

// HasCategory reports whether the extension is tagged with category.
func (e *Extension) HasCategory(category string) bool {
	for _, c := range e.Metadata.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// HasPlatform reports whether the extension supports platform.
func (e *Extension) HasPlatform(platform string) bool {
	for _, p := range e.Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

// NameContains reports whether text occurs in the name, ignoring case.
// Empty text matches every name.
func (e *Extension) NameContains(text string) bool {
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), strings.ToLower(text))
}

// Link returns the extension's page URL on the site at siteURL.
func (e *Extension) Link(siteURL, prefix string) string {
	return Link(siteURL, prefix, e.Slug)
}

// Link joins the site URL, optional path prefix and slug with single slashes.
// An empty slug yields the site root (with a trailing slash).
func Link(siteURL, prefix, slug string) string {
	parts := []string{strings.TrimRight(siteURL, "/")}
	for _, p := range []string{prefix, slug} {
		if p = strings.Trim(p, "/"); p != "" {
			parts = append(parts, p)
		}
	}
	link := strings.Join(parts, "/")
	if slug == "" {
		link += "/"
	}
	return link
}
