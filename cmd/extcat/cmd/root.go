// Package cmd provides the CLI commands for extcat.
package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	exterrors "github.com/wexinc/extcat/internal/errors"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath  string
	catalogPath string
	logLevel    string
}

// NewRootCmd builds the full command tree. Each call returns fresh
// commands, so flag state never leaks between executions.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "extcat",
		Short: "Browse and filter an extension catalog",
		Long: `extcat browses a catalog of extensions.

Extensions can be searched by name and filtered by category and platform,
interactively or from scripts. Filters combine with AND across search,
categories and platforms, and with OR within categories or platforms.

Run without a subcommand to open the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Same as "extcat browse"
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, opts, false, false)
		},
	}
	root.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	root.SetVersionTemplate("extcat {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file (default .extcat/config.yaml)")
	pf.StringVar(&opts.catalogPath, "catalog", "", "Catalog file, overrides catalog.path")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	root.AddCommand(
		newBrowseCmd(opts),
		newListCmd(opts),
		newFacetCmd(opts, facetCategories),
		newFacetCmd(opts, facetPlatforms),
		newFeedCmd(opts),
		newInitCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprint(root.ErrOrStderr(), exterrors.FormatError(err))
		return 1
	}
	return 0
}
