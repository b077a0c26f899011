// Package output writes extension listings and facet counts for the CLI
// as a table, JSON, CSV or XML.
package output

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/wexinc/extcat/internal/catalog"
	"github.com/wexinc/extcat/internal/extension"
)

// Format is an output format name.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatXML   Format = "xml"
)

// EmptyMessage is printed by the table format when nothing matches.
const EmptyMessage = "No extensions match"

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatCSV, FormatXML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json, csv or xml)", s)
	}
}

// Formatter writes results in one format.
type Formatter struct {
	format     Format
	w          io.Writer
	siteURL    string
	pathPrefix string
}

// NewFormatter creates a formatter writing to w.
func NewFormatter(format Format, w io.Writer) *Formatter {
	return &Formatter{format: format, w: w}
}

// WithSite sets the site extension links are resolved against. Without
// one, links are site-relative paths.
func (f *Formatter) WithSite(siteURL, pathPrefix string) *Formatter {
	f.siteURL = siteURL
	f.pathPrefix = pathPrefix
	return f
}

// Format returns the formatter's format.
func (f *Formatter) Format() Format {
	return f.format
}

type extensionList struct {
	XMLName    xml.Name               `xml:"extensions"`
	Count      int                    `xml:"count,attr"`
	Extensions []*extension.Extension `xml:"extension"`
}

// WriteExtensions writes an already filtered and sorted list.
func (f *Formatter) WriteExtensions(exts []*extension.Extension) error {
	if exts == nil {
		exts = []*extension.Extension{}
	}

	switch f.format {
	case FormatJSON:
		return f.writeJSON(exts)
	case FormatCSV:
		rows := make([][]string, len(exts))
		for i, e := range exts {
			rows[i] = []string{
				e.Name,
				e.SortableName,
				e.Slug,
				strings.Join(e.Categories(), ";"),
				strings.Join(e.Platforms, ";"),
				e.Link(f.siteURL, f.pathPrefix),
			}
		}
		return f.writeCSV([]string{"name", "sortableName", "slug", "categories", "platforms", "link"}, rows)
	case FormatXML:
		return f.writeXML(extensionList{Count: len(exts), Extensions: exts})
	default:
		if len(exts) == 0 {
			_, err := fmt.Fprintln(f.w, EmptyMessage)
			return err
		}
		t := NewTable("NAME", "CATEGORIES", "PLATFORMS", "LINK")
		for _, e := range exts {
			t.AddRow(e.Name, e.DisplayCategories(), e.DisplayPlatforms(), e.Link(f.siteURL, f.pathPrefix))
		}
		return t.Fprint(f.w)
	}
}

type facetList struct {
	XMLName xml.Name
	Facets  []catalog.Facet `xml:"facet"`
}

// WriteFacets writes facet counts. kind names the facet ("categories" or
// "platforms") and becomes the XML root element.
func (f *Formatter) WriteFacets(kind string, facets []catalog.Facet) error {
	switch f.format {
	case FormatJSON:
		// value -> count, in facet order
		m := orderedmap.New()
		m.SetEscapeHTML(false)
		for _, fc := range facets {
			m.Set(fc.Value, fc.Count)
		}
		return f.writeJSON(m)
	case FormatCSV:
		rows := make([][]string, len(facets))
		for i, fc := range facets {
			rows[i] = []string{fc.Value, fc.Label, strconv.Itoa(fc.Count)}
		}
		return f.writeCSV([]string{"value", "label", "count"}, rows)
	case FormatXML:
		if facets == nil {
			facets = []catalog.Facet{}
		}
		return f.writeXML(facetList{XMLName: xml.Name{Local: kind}, Facets: facets})
	default:
		if len(facets) == 0 {
			_, err := fmt.Fprintf(f.w, "No %s\n", kind)
			return err
		}
		t := NewTable(strings.ToUpper(kind), "EXTENSIONS")
		for _, fc := range facets {
			t.AddRow(fc.Label, strconv.Itoa(fc.Count))
		}
		return t.Fprint(f.w)
	}
}

func (f *Formatter) writeJSON(data any) error {
	enc := json.NewEncoder(f.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// csv.Writer only reports write errors after Flush.
func (f *Formatter) writeCSV(headers []string, rows [][]string) error {
	w := csv.NewWriter(f.w)
	_ = w.Write(headers)
	for _, row := range rows {
		_ = w.Write(row)
	}
	w.Flush()
	return w.Error()
}

func (f *Formatter) writeXML(data any) error {
	if _, err := io.WriteString(f.w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(f.w)
	enc.Indent("", "  ")
	if err := enc.Encode(data); err != nil {
		return err
	}
	_, err := fmt.Fprintln(f.w)
	return err
}
