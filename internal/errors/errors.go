// Package errors provides error types with actionable suggestions for extcat.
// Errors carry a category, context details and a hint for resolving them.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrCatalog indicates the extension catalog could not be loaded.
	ErrCatalog = errors.New("catalog error")
	// ErrFeed indicates the feed could not be generated or written.
	ErrFeed = errors.New("feed error")
	// ErrNetwork indicates a network-related error.
	ErrNetwork = errors.New("network error")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
)

// ExtcatError is the base error type for extcat errors.
// It wraps an underlying error and provides additional context.
type ExtcatError struct {
	// Kind is the category of error (e.g., ErrConfig, ErrCatalog).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path).
	Details map[string]string
}

// Error implements the error interface.
func (e *ExtcatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *ExtcatError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's kind matches target.
func (e *ExtcatError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestion.
func (e *ExtcatError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *ExtcatError) WithDetails(key, value string) *ExtcatError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *ExtcatError) WithCause(cause error) *ExtcatError {
	e.Cause = cause
	return e
}

// New creates a new ExtcatError with the given kind and message.
func New(kind error, message string) *ExtcatError {
	return &ExtcatError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *ExtcatError {
	return &ExtcatError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *ExtcatError {
	return &ExtcatError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// FormatError returns the user-facing text for err. ExtcatErrors include
// their details and suggestion; other errors are printed plainly.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	var ee *ExtcatError
	if errors.As(err, &ee) {
		return ee.Format()
	}
	return "Error: " + err.Error() + "\n"
}

// IsUserError returns true if the error is due to user input or configuration.
func IsUserError(err error) bool {
	var ee *ExtcatError
	if !errors.As(err, &ee) {
		return false
	}
	switch ee.Kind {
	case ErrConfig, ErrCatalog:
		return true
	default:
		return false
	}
}
