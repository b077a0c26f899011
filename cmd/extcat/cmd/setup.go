package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wexinc/extcat/internal/catalog"
	"github.com/wexinc/extcat/internal/config"
	exterrors "github.com/wexinc/extcat/internal/errors"
	"github.com/wexinc/extcat/internal/logging"
	"github.com/wexinc/extcat/internal/workspace"
)

// env is what every command starts from: the resolved configuration and
// a logger tagged with the command and catalog.
type env struct {
	cfg *config.Config
	log *logging.Logger
	ctx context.Context
}

func (e *env) close() {
	_ = logging.CloseGlobal()
}

// setup loads configuration, applies the global flags and initializes logging.
// Interactive commands never log to the console.
func (o *globalOptions) setup(cmd *cobra.Command, interactive bool) (*env, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(string(cfg.Log.Level))
	if err != nil {
		return nil, exterrors.ConfigValidationError("log.level", err.Error(),
			[]string{"debug", "info", "warn", "error"})
	}
	logConfig := &logging.Config{
		Level:       level,
		LogDir:      cfg.Log.Dir,
		MaxLogFiles: 10,
		MaxLogAge:   logging.DefaultConfig().MaxLogAge,
		Console:     cfg.Log.Console && !interactive,
		JSONFormat:  cfg.Log.JSON,
	}
	if cfg.Log.Dir == "" {
		// Nowhere to write files
		if logConfig.Console {
			logging.SetGlobal(logging.NewWriter(cmd.ErrOrStderr(), logConfig))
		}
	} else if err := logging.InitGlobal(logConfig); err != nil {
		// Non-fatal: warn but continue without file logging
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithCommand(ctx, cmd.Name())
	ctx = logging.WithCatalog(ctx, cfg.Catalog.Path)

	e := &env{cfg: cfg, ctx: ctx, log: logging.Global().WithContext(ctx)}
	e.log.Debug("configuration loaded", "config", o.configPath, "format", cfg.Output.Format)
	return e, nil
}

// loadConfig reads the config file named by --config, or the one in the
// nearest workspace, and applies --catalog and --log-level on top.
// Relative paths in a discovered workspace config are resolved against
// the workspace directory.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return nil, configError(o.configPath, err)
		}
		return o.applyFlags(cfg), nil
	}

	d := workspace.NewDetector()
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	ws, err := d.FindRoot(cwd)
	if err != nil {
		return nil, fmt.Errorf("failed to detect workspace: %w", err)
	}
	if ws != nil {
		path := filepath.Join(ws.Path, config.DefaultConfigPath)
		cfg, err := config.Load(path)
		if err != nil {
			return nil, configError(path, err)
		}
		cfg.Catalog.Path = resolve(ws.Path, cfg.Catalog.Path)
		cfg.Feed.Path = resolve(ws.Path, cfg.Feed.Path)
		cfg.Log.Dir = resolve(ws.Path, cfg.Log.Dir)
		return o.applyFlags(cfg), nil
	}

	cfg, err := config.LoadOrDefault(config.DefaultConfigPath)
	if err != nil {
		return nil, configError(config.DefaultConfigPath, err)
	}
	// No config anywhere: fall back to a catalog file next to us.
	if _, err := os.Stat(cfg.Catalog.Path); os.IsNotExist(err) {
		if info, _ := d.Detect(cwd); info != nil && len(info.Catalogs) > 0 {
			cfg.Catalog.Path = info.Catalogs[0]
		}
	}
	// Outside a workspace, logs go to the user cache, not the working directory.
	if cfg.Log.Dir == config.DefaultLogDir {
		cfg.Log.Dir = userLogDir()
	}
	return o.applyFlags(cfg), nil
}

// userLogDir returns the per-user log directory, or "" if the platform
// has no cache directory.
func userLogDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "extcat", "logs")
}

func (o *globalOptions) applyFlags(cfg *config.Config) *config.Config {
	if o.catalogPath != "" {
		cfg.Catalog.Path = o.catalogPath
	}
	if o.logLevel != "" {
		cfg.Log.Level = config.LogLevel(strings.ToLower(o.logLevel))
	}
	return cfg
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// configError converts config loading errors into user-facing errors.
func configError(path string, err error) error {
	var verrs config.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := exterrors.ConfigValidationError(verrs[0].Field, verrs.Error(), nil)
		return e.WithDetails("path", path)
	}

	var lerr *config.LoadError
	if errors.As(err, &lerr) && lerr.Message == "config file not found" {
		return exterrors.ConfigNotFound(path)
	}
	return exterrors.ConfigParseError(path, err)
}

// loadCatalog loads the configured catalog and logs what was found.
func (e *env) loadCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Load(e.cfg.Catalog.Path)
	if err != nil {
		e.log.Error("failed to load catalog", "error", err)
		return nil, err
	}
	if n := cat.Malformed(); n > 0 {
		e.log.Warn("skipping malformed extensions", "count", n)
	}
	e.log.Debug("catalog loaded", "extensions", cat.Len())
	return cat, nil
}
