// Package config provides configuration loading and management for extcat.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is the default path to the config file relative to the working directory.
	DefaultConfigPath = ".extcat/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "EXTCAT"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// If path is empty, it uses DefaultConfigPath relative to the working directory.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &LoadError{
			Path:    path,
			Message: "config file not found",
			Err:     err,
		}
	}

	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read config file",
			Err:     err,
		}
	}

	// Start with defaults
	cfg := NewConfig()

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	return l.finish(cfg, path)
}

// LoadOrDefault loads configuration from path, falling back to defaults
// (with environment overrides) when the file does not exist.
func (l *Loader) LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return l.finish(NewConfig(), path)
	}
	return l.LoadConfig(path)
}

// LoadConfigFromDir loads configuration from .extcat/config.yaml in the specified directory.
func (l *Loader) LoadConfigFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultConfigPath)
	return l.LoadConfig(path)
}

// finish applies environment overrides and defaults, then validates.
func (l *Loader) finish(cfg *Config, path string) (*Config, error) {
	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	// Site settings
	if v := os.Getenv(EnvPrefix + "_SITE_TITLE"); v != "" {
		cfg.Site.Title = v
	}
	if v := os.Getenv(EnvPrefix + "_SITE_DESCRIPTION"); v != "" {
		cfg.Site.Description = v
	}
	if v := os.Getenv(EnvPrefix + "_SITE_SITE_URL"); v != "" {
		cfg.Site.SiteURL = v
	}
	if v := os.Getenv(EnvPrefix + "_SITE_PATH_PREFIX"); v != "" {
		cfg.Site.PathPrefix = v
	}

	// Catalog settings
	if v := os.Getenv(EnvPrefix + "_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv(EnvPrefix + "_CATALOG_WATCH"); v != "" {
		cfg.Catalog.Watch = parseBool(v)
	}
	if v := os.Getenv(EnvPrefix + "_CATALOG_WATCH_DEBOUNCE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Catalog.WatchDebounce = d
		}
	}

	// Output and feed settings
	if v := os.Getenv(EnvPrefix + "_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = OutputFormat(v)
	}
	if v := os.Getenv(EnvPrefix + "_FEED_PATH"); v != "" {
		cfg.Feed.Path = v
	}

	// Log settings
	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Log.Level = LogLevel(v)
	}
	if v := os.Getenv(EnvPrefix + "_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_CONSOLE"); v != "" {
		cfg.Log.Console = parseBool(v)
	}
	if v := os.Getenv(EnvPrefix + "_LOG_JSON"); v != "" {
		cfg.Log.JSON = parseBool(v)
	}
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
// Returns false for anything else.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
// It composes the standard mapstructure hooks with our custom ones.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc creates a decode hook for our custom types.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		switch to {
		case reflect.TypeOf(OutputFormat("")):
			return OutputFormat(data.(string)), nil
		case reflect.TypeOf(LogLevel("")):
			return LogLevel(data.(string)), nil
		}

		return data, nil
	}
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// LoadOrDefault is a convenience function for Loader.LoadOrDefault.
func LoadOrDefault(path string) (*Config, error) {
	return NewLoader().LoadOrDefault(path)
}

// LoadFromDir is a convenience function that loads configuration from a directory.
func LoadFromDir(dir string) (*Config, error) {
	return NewLoader().LoadConfigFromDir(dir)
}

// savedConfig mirrors Config with durations written as strings ("200ms").
type savedConfig struct {
	Site    SiteConfig   `yaml:"site"`
	Catalog savedCatalog `yaml:"catalog"`
	Output  OutputConfig `yaml:"output"`
	Feed    FeedConfig   `yaml:"feed"`
	Log     LogConfig    `yaml:"log"`
}

type savedCatalog struct {
	Path          string `yaml:"path"`
	Watch         bool   `yaml:"watch"`
	WatchDebounce string `yaml:"watch_debounce,omitempty"`
}

// Save writes cfg as YAML to path, creating parent directories.
// If path is empty, it uses DefaultConfigPath.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath
	}

	out := savedConfig{
		Site: cfg.Site,
		Catalog: savedCatalog{
			Path:  cfg.Catalog.Path,
			Watch: cfg.Catalog.Watch,
		},
		Output: cfg.Output,
		Feed:   cfg.Feed,
		Log:    cfg.Log,
	}
	if cfg.Catalog.WatchDebounce > 0 {
		out.Catalog.WatchDebounce = cfg.Catalog.WatchDebounce.String()
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
