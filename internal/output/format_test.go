package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wexinc/extcat/internal/catalog"
	"github.com/wexinc/extcat/internal/extension"
)

func sample() []*extension.Extension {
	return []*extension.Extension{
		{
			Name: "JDiamond", SortableName: "diamond", Slug: "jdiamond",
			Metadata:  extension.Metadata{Categories: []string{"jewellery"}},
			Platforms: []string{"a mine"},
		},
		{
			Name: "JRuby", SortableName: "ruby", Slug: "jruby",
			Metadata:  extension.Metadata{Categories: []string{"lump", "jewellery"}},
			Platforms: []string{"bottom of the garden"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" csv ", FormatCSV, false},
		{"XmL", FormatXML, false},
		{"", FormatTable, false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFormatter(t *testing.T) {
	f := NewFormatter(FormatCSV, &bytes.Buffer{})
	assert.Equal(t, FormatCSV, f.Format())
}

func TestWriteExtensions_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable, &buf).WriteExtensions(sample()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.True(t, strings.HasPrefix(lines[1], "--------"))
	assert.Equal(t, "JDiamond  Jewellery        A Mine                /jdiamond", lines[2])
	assert.Equal(t, "JRuby     Lump, Jewellery  Bottom Of The Garden  /jruby", lines[3])
}

func TestWriteExtensions_TableLinks(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTable, &buf).WithSite("http://localhost:8000/", "")
	require.NoError(t, f.WriteExtensions(sample()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[0], "LINK"))
	assert.True(t, strings.HasSuffix(lines[2], "  http://localhost:8000/jdiamond"))
	assert.True(t, strings.HasSuffix(lines[3], "  http://localhost:8000/jruby"))
}

func TestWriteExtensions_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable, &buf).WriteExtensions(nil))
	assert.Equal(t, EmptyMessage+"\n", buf.String())
}

func TestWriteExtensions_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON, &buf).WriteExtensions(sample()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "JDiamond", decoded[0]["name"])
	assert.Equal(t, "diamond", decoded[0]["sortableName"])
	assert.Equal(t, []any{"a mine"}, decoded[0]["platforms"])
}

func TestWriteExtensions_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON, &buf).WriteExtensions(nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteExtensions_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatCSV, &buf).WriteExtensions(sample()))

	want := "name,sortableName,slug,categories,platforms,link\n" +
		"JDiamond,diamond,jdiamond,jewellery,a mine,/jdiamond\n" +
		"JRuby,ruby,jruby,lump;jewellery,bottom of the garden,/jruby\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteExtensions_XML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatXML, &buf).WriteExtensions(sample()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, xml.Header))
	assert.Contains(t, out, `<extensions count="2">`)
	assert.Contains(t, out, "<name>JRuby</name>")
	assert.Contains(t, out, "<platform>a mine</platform>")
	assert.Contains(t, out, "<category>lump</category>")
}

func facets() []catalog.Facet {
	return []catalog.Facet{
		{Value: "a mine", Label: "A Mine", Count: 1},
		{Value: "bottom of the garden", Label: "Bottom Of The Garden", Count: 3},
	}
}

func TestWriteFacets_JSONKeepsOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON, &buf).WriteFacets("platforms", facets()))

	assert.JSONEq(t, `{"a mine": 1, "bottom of the garden": 3}`, buf.String())
	assert.Less(t, strings.Index(buf.String(), "a mine"), strings.Index(buf.String(), "bottom of the garden"))
}

func TestWriteFacets_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable, &buf).WriteFacets("platforms", facets()))

	out := buf.String()
	assert.Contains(t, out, "PLATFORMS")
	assert.Contains(t, out, "A Mine                1")
	assert.Contains(t, out, "Bottom Of The Garden  3")
}

func TestWriteFacets_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable, &buf).WriteFacets("categories", nil))
	assert.Equal(t, "No categories\n", buf.String())
}

func TestWriteFacets_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatCSV, &buf).WriteFacets("platforms", facets()))
	assert.Equal(t, "value,label,count\na mine,A Mine,1\nbottom of the garden,Bottom Of The Garden,3\n", buf.String())
}

func TestWriteFacets_XML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatXML, &buf).WriteFacets("categories", facets()))

	out := buf.String()
	assert.Contains(t, out, "<categories>")
	assert.Contains(t, out, `<facet value="a mine" label="A Mine" count="1"></facet>`)
}
