package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/wexinc/extcat/internal/feed"
)

type feedOptions struct {
	out     string
	siteURL string
}

func newFeedCmd(opts *globalOptions) *cobra.Command {
	fo := &feedOptions{}

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Write an RSS feed of the catalog",
		Long: `Write an RSS 2.0 feed with one item per well-formed extension.

Item links are built from site.site_url, site.path_prefix and the
extension slug. Markdown descriptions are rendered as item content.

Examples:
  extcat feed                                   # Write feed.path (rss.xml)
  extcat feed --out public/rss.xml
  extcat feed --site-url https://example.org/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeed(cmd, opts, fo)
		},
	}
	cmd.Flags().StringVar(&fo.out, "out", "", "Output path (default from feed.path)")
	cmd.Flags().StringVar(&fo.siteURL, "site-url", "", "Site URL, overrides site.site_url")
	return cmd
}

func runFeed(cmd *cobra.Command, opts *globalOptions, fo *feedOptions) error {
	e, err := opts.setup(cmd, false)
	if err != nil {
		return err
	}
	defer e.close()

	cat, err := e.loadCatalog()
	if err != nil {
		return err
	}

	path := fo.out
	if path == "" {
		path = e.cfg.Feed.Path
	}
	siteURL := fo.siteURL
	if siteURL == "" {
		siteURL = e.cfg.Site.SiteURL
	}
	if siteURL == "" {
		e.log.Warn("site.site_url is not set, feed links will be relative")
	}

	err = feed.Write(path, cat.Extensions, feed.Options{
		Title:       e.cfg.Site.Title,
		Description: e.cfg.Site.Description,
		SiteURL:     siteURL,
		PathPrefix:  e.cfg.Site.PathPrefix,
		BuildDate:   time.Now(),
	})
	if err != nil {
		e.log.Error("failed to write feed", "path", path, "error", err)
		return err
	}

	e.log.Info("feed written", "path", path, "items", cat.Len()-cat.Malformed())
	cmd.Printf("✓ Wrote %s\n", path)
	return nil
}
