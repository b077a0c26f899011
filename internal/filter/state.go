// Package filter provides the search, category and platform filtering that
// drives extension catalog views.
package filter

import (
	"sort"
)

// Set is an unordered set of strings.
type Set map[string]struct{}

// NewSet creates a set holding the given values. Empty values are ignored.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether v is in the set.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values in the set.
func (s Set) Len() int {
	return len(s)
}

// Values returns the set's values in ascending order.
func (s Set) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold the same values.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// State is the set of criteria a user has selected.
// The zero value matches every valid extension.
type State struct {
	// Search is matched case-insensitively against extension names.
	Search string
	// Categories holds the ticked categories. Empty means no category filter.
	Categories Set
	// Platforms holds the selected platforms. Empty means no platform filter.
	Platforms Set
}

// NewState creates an empty filter state.
func NewState() State {
	return State{
		Categories: Set{},
		Platforms:  Set{},
	}
}

// IsEmpty reports whether no filter dimension is active.
func (s State) IsEmpty() bool {
	return s.Search == "" && s.Categories.Len() == 0 && s.Platforms.Len() == 0
}

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	return State{
		Search:     s.Search,
		Categories: s.Categories.Clone(),
		Platforms:  s.Platforms.Clone(),
	}
}

// Equal reports whether both states select the same extensions.
func (s State) Equal(other State) bool {
	return s.Search == other.Search &&
		s.Categories.Equal(other.Categories) &&
		s.Platforms.Equal(other.Platforms)
}
