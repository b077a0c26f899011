package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/extcat/internal/tui"
)

func newBrowseCmd(opts *globalOptions) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: `Open the interactive browser.

Type to search by name, tick categories, and press p to pick platforms.
With --watch (or catalog.watch in the config) the catalog is reloaded
whenever the file changes, keeping the current filters.

Examples:
  extcat browse                              # Browse the configured catalog
  extcat browse --catalog ext.yaml --watch   # Browse and follow edits`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, opts, watch, cmd.Flags().Changed("watch"))
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the catalog when the file changes")
	return cmd
}

// runBrowse starts the browser. watchSet reports whether --watch was given;
// otherwise catalog.watch decides.
func runBrowse(cmd *cobra.Command, opts *globalOptions, watch, watchSet bool) error {
	e, err := opts.setup(cmd, true)
	if err != nil {
		return err
	}
	defer e.close()

	cat, err := e.loadCatalog()
	if err != nil {
		return err
	}
	if !watchSet {
		watch = e.cfg.Catalog.Watch
	}

	return tui.Run(e.ctx, cat, tui.RunOptions{
		Options: tui.Options{
			Title:       e.cfg.Site.Title,
			Description: e.cfg.Site.Description,
			CatalogPath: e.cfg.Catalog.Path,
			SiteURL:     e.cfg.Site.SiteURL,
			PathPrefix:  e.cfg.Site.PathPrefix,
		},
		Watch:    watch,
		Debounce: e.cfg.Catalog.WatchDebounce,
		Logger:   e.log,
	})
}
