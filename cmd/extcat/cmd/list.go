package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/extcat/internal/config"
	exterrors "github.com/wexinc/extcat/internal/errors"
	"github.com/wexinc/extcat/internal/filter"
	"github.com/wexinc/extcat/internal/output"
)

type listOptions struct {
	search     string
	categories []string
	platforms  []string
	format     string
}

func newListCmd(opts *globalOptions) *cobra.Command {
	lo := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print extensions matching the given filters",
		Long: `Print the extensions that match the given filters, sorted by sortable name.

--category and --platform may be repeated. An extension matches when its
name contains the search text (ignoring case), it has at least one of the
given categories, and it supports at least one of the given platforms.
Omitted filters match everything.

Examples:
  extcat list                                # Every extension
  extcat list --search ruby                  # Name contains "ruby"
  extcat list --platform "a mine"            # Supported on "a mine"
  extcat list -c jewellery -c snails -o json # Either category, as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts, lo)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&lo.search, "search", "s", "", "Only extensions whose name contains this text")
	f.StringArrayVarP(&lo.categories, "category", "c", nil, "Only extensions in this category (repeatable)")
	f.StringArrayVarP(&lo.platforms, "platform", "p", nil, "Only extensions supporting this platform (repeatable)")
	f.StringVarP(&lo.format, "format", "o", "", "Output format: table, json, csv or xml (default from config)")
	return cmd
}

func runList(cmd *cobra.Command, opts *globalOptions, lo *listOptions) error {
	e, err := opts.setup(cmd, false)
	if err != nil {
		return err
	}
	defer e.close()

	format, err := resolveFormat(lo.format, e.cfg)
	if err != nil {
		return err
	}

	cat, err := e.loadCatalog()
	if err != nil {
		return err
	}

	state := filter.State{
		Search:     lo.search,
		Categories: filter.NewSet(lo.categories...),
		Platforms:  filter.NewSet(lo.platforms...),
	}
	result := filter.Apply(cat.Extensions, state)
	e.log.Info("listed extensions",
		"search", state.Search,
		"categories", state.Categories.Len(),
		"platforms", state.Platforms.Len(),
		"matched", len(result),
		"total", cat.Len())

	return output.NewFormatter(format, cmd.OutOrStdout()).
		WithSite(e.cfg.Site.SiteURL, e.cfg.Site.PathPrefix).
		WriteExtensions(result)
}

// resolveFormat picks the --format flag, falling back to output.format.
func resolveFormat(flag string, cfg *config.Config) (output.Format, error) {
	name := flag
	if name == "" {
		name = string(cfg.Output.Format)
	}
	format, err := output.ParseFormat(name)
	if err != nil {
		return "", exterrors.WithSuggestion(exterrors.ErrConfig, err.Error(),
			"Use --format table, json, csv or xml, or fix output.format in .extcat/config.yaml.")
	}
	return format, nil
}
