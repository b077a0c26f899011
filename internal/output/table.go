package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table lays out rows in columns padded to their widest cell.
// Widths are measured in terminal cells, so wide runes line up.
type Table struct {
	headers   []string
	widths    []int
	rows      [][]string
	separator string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	t := &Table{
		headers:   headers,
		widths:    make([]int, len(headers)),
		separator: "  ",
	}
	for i, h := range headers {
		t.widths[i] = DisplayWidth(h)
	}
	return t
}

// AddRow appends a row. Missing cells are blank; extra cells are dropped.
func (t *Table) AddRow(values ...string) *Table {
	row := make([]string, len(t.headers))
	copy(row, values)
	for i, v := range row {
		if w := DisplayWidth(v); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, row)
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HeaderRow returns the formatted header line.
func (t *Table) HeaderRow() string {
	return t.format(t.headers)
}

// SeparatorRow returns a dashed line matching the column widths.
func (t *Table) SeparatorRow() string {
	parts := make([]string, len(t.widths))
	for i, w := range t.widths {
		parts[i] = strings.Repeat("-", w)
	}
	return strings.Join(parts, t.separator)
}

func (t *Table) format(values []string) string {
	parts := make([]string, len(values))
	last := len(values) - 1
	for i, v := range values {
		if i == last {
			// No trailing padding on the last column.
			parts[i] = v
			continue
		}
		parts[i] = ToWidth(v, t.widths[i])
	}
	return strings.Join(parts, t.separator)
}

// Fprint writes the header, separator and rows to w.
func (t *Table) Fprint(w io.Writer) error {
	if _, err := fmt.Fprintln(w, t.HeaderRow()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, t.SeparatorRow()); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(w, t.format(row)); err != nil {
			return err
		}
	}
	return nil
}

// DisplayWidth returns the number of terminal cells s occupies.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// ToWidth pads s with spaces to width cells. Longer strings are returned unchanged.
func ToWidth(s string, width int) string {
	current := DisplayWidth(s)
	if width <= 0 || current >= width {
		return s
	}
	return s + strings.Repeat(" ", width-current)
}
