package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wexinc/extcat/internal/catalog"
	"github.com/wexinc/extcat/internal/output"
)

// facetKind describes one facet command.
type facetKind struct {
	name   string
	short  string
	facets func(*catalog.Catalog) []catalog.Facet
}

var (
	facetCategories = facetKind{
		name:   "categories",
		short:  "List categories with extension counts",
		facets: (*catalog.Catalog).CategoryFacets,
	}
	facetPlatforms = facetKind{
		name:   "platforms",
		short:  "List platforms with extension counts",
		facets: (*catalog.Catalog).PlatformFacets,
	}
)

func newFacetCmd(opts *globalOptions, kind facetKind) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   kind.name,
		Short: kind.short,
		Long: fmt.Sprintf(`%s.

Every distinct value found in the catalog is listed once, sorted, with the
number of well-formed extensions that carry it. These are the values
accepted by "extcat list".

Examples:
  extcat %s
  extcat %s --format json`, kind.short, kind.name, kind.name),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFacet(cmd, opts, kind, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", "", "Output format: table, json, csv or xml (default from config)")
	return cmd
}

func runFacet(cmd *cobra.Command, opts *globalOptions, kind facetKind, flag string) error {
	e, err := opts.setup(cmd, false)
	if err != nil {
		return err
	}
	defer e.close()

	format, err := resolveFormat(flag, e.cfg)
	if err != nil {
		return err
	}

	cat, err := e.loadCatalog()
	if err != nil {
		return err
	}

	facets := kind.facets(cat)
	e.log.Debug("listed facet", "facet", kind.name, "values", len(facets))
	return output.NewFormatter(format, cmd.OutOrStdout()).WriteFacets(kind.name, facets)
}
