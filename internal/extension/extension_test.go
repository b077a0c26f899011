package extension

import "testing"

func TestExtension_Valid(t *testing.T) {
	tests := []struct {
		name string
		ext  *Extension
		want bool
	}{
		{"nil", nil, false},
		{"complete", &Extension{Name: "JRuby", SortableName: "ruby", Slug: "jruby-slug"}, true},
		{"missing name", &Extension{SortableName: "ruby", Slug: "jruby-slug"}, false},
		{"blank name", &Extension{Name: "  ", SortableName: "ruby", Slug: "jruby-slug"}, false},
		{"missing sortable name", &Extension{Name: "JRuby", Slug: "jruby-slug"}, false},
		{"missing slug", &Extension{Name: "JRuby", SortableName: "ruby"}, false},
		{"no categories or platforms", &Extension{Name: "A", SortableName: "a", Slug: "a"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ext.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtension_NameContains(t *testing.T) {
	ext := &Extension{Name: "JRuby"}

	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{"ruby", true},
		{"RUBY", true},
		{"Ruby", true},
		{"jr", true},
		{"octopus", false},
		{"rubyx", false},
	}

	for _, tt := range tests {
		if got := ext.NameContains(tt.text); got != tt.want {
			t.Errorf("NameContains(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestExtension_HasCategoryAndPlatform(t *testing.T) {
	ext := &Extension{
		Metadata:  Metadata{Categories: []string{"jewellery", "gems"}},
		Platforms: []string{"a mine"},
	}

	if !ext.HasCategory("gems") {
		t.Error("HasCategory(gems) should be true")
	}
	if ext.HasCategory("snails") {
		t.Error("HasCategory(snails) should be false")
	}
	if !ext.HasPlatform("a mine") {
		t.Error("HasPlatform(a mine) should be true")
	}
	if ext.HasPlatform("A Mine") {
		t.Error("HasPlatform matches stored values exactly")
	}
}

func TestExtension_Categories_NeverNil(t *testing.T) {
	ext := &Extension{}
	if ext.Categories() == nil {
		t.Error("Categories() should not return nil")
	}
}

func TestExtension_SortKey(t *testing.T) {
	ext := &Extension{SortableName: "Ruby"}
	if got := ext.SortKey(); got != "ruby" {
		t.Errorf("SortKey() = %q, want %q", got, "ruby")
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jewellery", "Jewellery"},
		{"a mine", "A Mine"},
		{"bottom of the garden", "Bottom Of The Garden"},
		{"  snails ", "Snails"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Label(tt.in); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayCategoriesAndPlatforms(t *testing.T) {
	ext := &Extension{
		Metadata:  Metadata{Categories: []string{"jewellery", "snails"}},
		Platforms: []string{"a mine", "bottom of the garden"},
	}

	if got := ext.DisplayCategories(); got != "Jewellery, Snails" {
		t.Errorf("DisplayCategories() = %q", got)
	}
	if got := ext.DisplayPlatforms(); got != "A Mine, Bottom Of The Garden" {
		t.Errorf("DisplayPlatforms() = %q", got)
	}
}

func TestLink(t *testing.T) {
	tests := []struct {
		name    string
		siteURL string
		prefix  string
		slug    string
		want    string
	}{
		{"trailing slash on site", "http://localhost:8000/", "", "jruby", "http://localhost:8000/jruby"},
		{"no trailing slash", "http://localhost:8000", "", "jruby", "http://localhost:8000/jruby"},
		{"slug with slashes", "https://example.com/", "", "/jruby/", "https://example.com/jruby"},
		{"path prefix", "https://example.com", "/extensions.io/", "jruby", "https://example.com/extensions.io/jruby"},
		{"site root", "https://example.com", "", "", "https://example.com/"},
		{"site root with prefix", "https://example.com/", "docs", "", "https://example.com/docs/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Link(tt.siteURL, tt.prefix, tt.slug); got != tt.want {
				t.Errorf("Link() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtension_Link(t *testing.T) {
	ext := &Extension{Name: "JRuby", SortableName: "ruby", Slug: "jruby"}
	if got := ext.Link("http://localhost:8000/", ""); got != "http://localhost:8000/jruby" {
		t.Errorf("Link() = %q", got)
	}
}
