package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	exterrors "github.com/wexinc/extcat/internal/errors"
	"github.com/wexinc/extcat/internal/version"
)

func newVersionCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show detailed version information for extcat.

Displays the current version, commit hash, build date,
and Go/platform information.

Examples:
  extcat version           # Show detailed version info
  extcat version --check   # Check for updates`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.NewInfo(Version, Commit, Date)
			cmd.Println(info.FullString())
			if check {
				return checkForUpdate(cmd, version.NewChecker())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&check, "check", "c", false, "Check for available updates")
	return cmd
}

// checkForUpdate checks for available updates and reports.
func checkForUpdate(cmd *cobra.Command, checker *version.Checker) error {
	cmd.Println("")
	cmd.Println("Checking for updates...")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	release, err := checker.CheckForUpdate(ctx, Version)
	if err != nil && exterrors.IsRetryable(err) && ctx.Err() == nil {
		release, err = checker.CheckForUpdate(ctx, Version)
	}
	if err != nil {
		var ee *exterrors.ExtcatError
		if errors.As(err, &ee) {
			return err
		}
		return exterrors.Wrap(err, exterrors.ErrNetwork, "failed to check for updates")
	}

	if release == nil {
		cmd.Println("✓ You are running the latest version.")
		return nil
	}

	cmd.Println("")
	cmd.Printf("📦 A new version is available: %s (current: %s)\n", release.TagName, Version)
	cmd.Println("")
	cmd.Printf("Release notes: %s\n", release.HTMLURL)
	return nil
}
