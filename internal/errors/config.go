// Package errors provides error types for extcat.
// This file contains configuration and catalog errors.
package errors

import (
	"fmt"
	"strings"
)

// Configuration-related error constructors.

// ConfigNotFound creates an error for missing configuration.
func ConfigNotFound(configPath string) *ExtcatError {
	return &ExtcatError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("configuration file not found: %s", configPath),
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Create a configuration file:

  Option 1: Write the defaults
    extcat init

  Option 2: Point at an existing file
    extcat --config path/to/config.yaml`,
	}
}

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *ExtcatError {
	return &ExtcatError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Check for missing colons or quotes
  3. Durations need a unit, e.g. 200ms`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *ExtcatError {
	suggestion := fmt.Sprintf("Fix the %q field in .extcat/config.yaml", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &ExtcatError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}

// ConfigExists creates an error when init would overwrite a configuration.
func ConfigExists(configPath string) *ExtcatError {
	return &ExtcatError{
		Kind:       ErrConfig,
		Message:    fmt.Sprintf("configuration already exists: %s", configPath),
		Details:    map[string]string{"path": configPath},
		Suggestion: "Use --force to overwrite it.",
	}
}

// Catalog-related error constructors.

// CatalogNotFound creates an error for a missing catalog file.
func CatalogNotFound(path string) *ExtcatError {
	return &ExtcatError{
		Kind:    ErrCatalog,
		Message: fmt.Sprintf("catalog file not found: %s", path),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Point extcat at a catalog file:
  extcat --catalog extensions.json

or set catalog.path in .extcat/config.yaml.`,
	}
}

// CatalogParseError creates an error for catalog files that cannot be decoded.
func CatalogParseError(path string, cause error) *ExtcatError {
	return &ExtcatError{
		Kind:    ErrCatalog,
		Message: fmt.Sprintf("failed to parse catalog: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `A catalog is a list of extensions, or an object with an "extensions" list.
Each extension needs name, sortableName and slug, e.g.:

  - name: JRuby
    sortableName: ruby
    slug: jruby
    metadata:
      categories: [jewellery]
    platforms: [bottom of the garden]`,
	}
}

// UnsupportedFormat creates an error for catalog files with an unknown extension.
func UnsupportedFormat(path, ext string) *ExtcatError {
	return &ExtcatError{
		Kind:    ErrCatalog,
		Message: fmt.Sprintf("unsupported catalog format %q", ext),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Use a .json, .yaml or .yml catalog file.",
	}
}

// FeedWriteError creates an error when the feed cannot be written.
func FeedWriteError(path string, cause error) *ExtcatError {
	return &ExtcatError{
		Kind:    ErrFeed,
		Message: fmt.Sprintf("failed to write feed: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check that the output directory exists and is writable.",
	}
}
