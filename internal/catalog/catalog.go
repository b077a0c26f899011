// Package catalog loads extension catalogs from disk and reports their facets.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	exterrors "github.com/wexinc/extcat/internal/errors"
	"github.com/wexinc/extcat/internal/extension"
)

// Catalog is a loaded set of extension records.
type Catalog struct {
	// Path is the file the catalog was read from, empty for in-memory catalogs.
	Path string
	// Extensions holds every record in file order, including malformed ones.
	Extensions []*extension.Extension
}

// jsonDocument and yamlDocument are the object form of a catalog file.
// Records are kept raw so each one can be decoded on its own.
type jsonDocument struct {
	Extensions []json.RawMessage `json:"extensions"`
}

type yamlDocument struct {
	Extensions []yaml.Node `yaml:"extensions"`
}

// New creates an in-memory catalog. Nil records are dropped.
func New(exts []*extension.Extension) *Catalog {
	c := &Catalog{Extensions: make([]*extension.Extension, 0, len(exts))}
	for _, e := range exts {
		if e != nil {
			c.Extensions = append(c.Extensions, e)
		}
	}
	return c
}

// Load reads a .json, .yaml or .yml catalog file.
func Load(path string) (*Catalog, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, exterrors.CatalogNotFound(path)
		}
		return nil, exterrors.Wrap(err, exterrors.ErrCatalog, fmt.Sprintf("failed to read catalog: %s", path)).
			WithDetails("path", path)
	}

	exts, err := Parse(data, format)
	if err != nil {
		return nil, exterrors.CatalogParseError(path, err)
	}

	c := New(exts)
	c.Path = path
	return c, nil
}

// Parse decodes catalog data. format is "json" or "yaml". Both the bare list
// form and the {extensions: [...]} object form are accepted.
//
// Only document-level problems are errors. A record that cannot be decoded,
// such as one with a string where a list belongs, is returned as an empty
// record, which is malformed and so excluded from every view.
func Parse(data []byte, format string) ([]*extension.Extension, error) {
	switch format {
	case "json":
		return parseJSON(data)
	case "yaml":
		return parseYAML(data)
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}
}

func parseJSON(data []byte) ([]*extension.Extension, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var raw []json.RawMessage
	if trimmed[0] == '{' {
		var doc jsonDocument
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, err
		}
		raw = doc.Extensions
	} else if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, err
	}

	exts := make([]*extension.Extension, 0, len(raw))
	for _, r := range raw {
		if bytes.Equal(bytes.TrimSpace(r), []byte("null")) {
			continue
		}
		ext := &extension.Extension{}
		if err := json.Unmarshal(r, ext); err != nil {
			// Unmarshal fills what it can before failing; drop the partial record.
			ext = &extension.Extension{}
		}
		exts = append(exts, ext)
	}
	return exts, nil
}

func parseYAML(data []byte) ([]*extension.Extension, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	// Empty file
	if len(root.Content) == 0 {
		return nil, nil
	}

	var nodes []*yaml.Node
	top := root.Content[0]
	switch top.Kind {
	case yaml.SequenceNode:
		nodes = top.Content
	case yaml.MappingNode:
		var doc yamlDocument
		if err := top.Decode(&doc); err != nil {
			return nil, err
		}
		for i := range doc.Extensions {
			nodes = append(nodes, &doc.Extensions[i])
		}
	default:
		return nil, fmt.Errorf("line %d: expected a list of extensions or an extensions key", top.Line)
	}

	exts := make([]*extension.Extension, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
			continue
		}
		ext := &extension.Extension{}
		if err := n.Decode(ext); err != nil {
			ext = &extension.Extension{}
		}
		exts = append(exts, ext)
	}
	return exts, nil
}

func formatOf(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", exterrors.UnsupportedFormat(path, ext)
	}
}

// Len returns the number of records, malformed ones included.
func (c *Catalog) Len() int {
	return len(c.Extensions)
}

// Malformed returns how many records are missing a name, sortable name or
// slug. Records that could not be decoded count as malformed.
func (c *Catalog) Malformed() int {
	n := 0
	for _, e := range c.Extensions {
		if !e.Valid() {
			n++
		}
	}
	return n
}

// Facet is one distinct category or platform value.
type Facet struct {
	Value string `json:"value" xml:"value,attr"`
	Label string `json:"label" xml:"label,attr"`
	Count int    `json:"count" xml:"count,attr"`
}

// Categories returns the distinct categories of valid records in ascending order.
func (c *Catalog) Categories() []string {
	return values(c.CategoryFacets())
}

// Platforms returns the distinct platforms of valid records in ascending order.
func (c *Catalog) Platforms() []string {
	return values(c.PlatformFacets())
}

// CategoryFacets counts valid records per category.
func (c *Catalog) CategoryFacets() []Facet {
	return c.facets(func(e *extension.Extension) []string { return e.Categories() })
}

// PlatformFacets counts valid records per platform.
func (c *Catalog) PlatformFacets() []Facet {
	return c.facets(func(e *extension.Extension) []string { return e.Platforms })
}

func (c *Catalog) facets(field func(*extension.Extension) []string) []Facet {
	counts := make(map[string]int)
	for _, e := range c.Extensions {
		if !e.Valid() {
			continue
		}
		// A value listed twice on one record counts once.
		seen := make(map[string]bool)
		for _, v := range field(e) {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			counts[v]++
		}
	}

	facets := make([]Facet, 0, len(counts))
	for v, n := range counts {
		facets = append(facets, Facet{Value: v, Label: extension.Label(v), Count: n})
	}
	sort.Slice(facets, func(i, j int) bool {
		return facets[i].Value < facets[j].Value
	})
	return facets
}

func values(facets []Facet) []string {
	out := make([]string, len(facets))
	for i, f := range facets {
		out[i] = f.Value
	}
	return out
}
