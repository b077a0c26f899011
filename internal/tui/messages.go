package tui

import (
	"github.com/wexinc/extcat/internal/catalog"
)

// CatalogReloadedMsg replaces the browsed catalog. The filter state is kept.
type CatalogReloadedMsg struct {
	Catalog *catalog.Catalog
}

// ErrorMsg displays an error below the results until the next successful
// reload or esc.
type ErrorMsg struct {
	Error string
}

// QuitMsg asks the browser to exit, e.g. when the run context is cancelled.
type QuitMsg struct {
	Reason string
}
