package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wexinc/extcat/internal/config"
	exterrors "github.com/wexinc/extcat/internal/errors"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write .extcat/config.yaml with the default settings.

Use --config to write somewhere else and --force to overwrite an existing file.

Examples:
  extcat init          # Create .extcat/config.yaml
  extcat init --force  # Overwrite it`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts, force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")
	return cmd
}

func runInit(cmd *cobra.Command, opts *globalOptions, force bool) error {
	path := opts.configPath
	if path == "" {
		path = config.DefaultConfigPath
	}

	if _, err := os.Stat(path); err == nil && !force {
		return exterrors.ConfigExists(path)
	}

	cfg := config.NewConfig()
	if opts.catalogPath != "" {
		cfg.Catalog.Path = opts.catalogPath
	}
	if err := config.Save(cfg, path); err != nil {
		return exterrors.Wrap(err, exterrors.ErrConfig, "failed to write configuration")
	}

	cmd.Printf("Created %s\n", path)
	cmd.Println("")
	cmd.Printf("Edit %s to point at your catalog, then run 'extcat' to browse it.\n", path)
	return nil
}
