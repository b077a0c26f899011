package filter

import (
	"slices"
	"strings"

	"github.com/wexinc/extcat/internal/extension"
)

// Apply returns the extensions matching state, ordered by sortable name.
// It is the view the catalog browser renders. Malformed extensions are
// never returned. The input slice is not modified.
func Apply(extensions []*extension.Extension, state State) []*extension.Extension {
	return Sort(Filter(extensions, state))
}

// Filter returns the extensions matching state in their input order.
func Filter(extensions []*extension.Extension, state State) []*extension.Extension {
	out := make([]*extension.Extension, 0, len(extensions))
	for _, ext := range extensions {
		if Matches(ext, state) {
			out = append(out, ext)
		}
	}
	return out
}

// Matches reports whether ext passes every active filter dimension.
// Dimensions are combined with AND; selected values within one dimension
// are combined with OR.
func Matches(ext *extension.Extension, state State) bool {
	if !ext.Valid() {
		return false
	}
	return matchesSearch(ext, state.Search) &&
		matchesCategories(ext, state.Categories) &&
		matchesPlatforms(ext, state.Platforms)
}

func matchesSearch(ext *extension.Extension, text string) bool {
	return ext.NameContains(text)
}

func matchesCategories(ext *extension.Extension, selected Set) bool {
	if selected.Len() == 0 {
		return true
	}
	for c := range selected {
		if ext.HasCategory(c) {
			return true
		}
	}
	return false
}

func matchesPlatforms(ext *extension.Extension, selected Set) bool {
	if selected.Len() == 0 {
		return true
	}
	for p := range selected {
		if ext.HasPlatform(p) {
			return true
		}
	}
	return false
}

// Sort returns a copy of extensions ordered by sortable name, ignoring case.
// Extensions with equal keys keep their relative order.
func Sort(extensions []*extension.Extension) []*extension.Extension {
	out := make([]*extension.Extension, len(extensions))
	copy(out, extensions)
	slices.SortStableFunc(out, func(a, b *extension.Extension) int {
		return strings.Compare(a.SortKey(), b.SortKey())
	})
	return out
}
