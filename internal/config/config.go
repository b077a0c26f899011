// Package config provides configuration data structures for extcat.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config represents the complete extcat configuration loaded from .extcat/config.yaml.
type Config struct {
	Site    SiteConfig    `yaml:"site"    json:"site"    mapstructure:"site"`
	Catalog CatalogConfig `yaml:"catalog" json:"catalog" mapstructure:"catalog"`
	Output  OutputConfig  `yaml:"output"  json:"output"  mapstructure:"output"`
	Feed    FeedConfig    `yaml:"feed"    json:"feed"    mapstructure:"feed"`
	Log     LogConfig     `yaml:"log"     json:"log"     mapstructure:"log"`
}

// SiteConfig describes the site the catalog is published on.
type SiteConfig struct {
	// Title is the site title, used as the feed title and browser header.
	Title string `yaml:"title" json:"title" mapstructure:"title"`
	// Description is a one-line description of the catalog.
	Description string `yaml:"description" json:"description" mapstructure:"description"`
	// SiteURL is the absolute base URL extension slugs are resolved against.
	SiteURL string `yaml:"site_url" json:"site_url" mapstructure:"site_url"`
	// PathPrefix is prepended to slugs when the site is served from a sub-path.
	PathPrefix string `yaml:"path_prefix" json:"path_prefix" mapstructure:"path_prefix"`
}

// CatalogConfig configures where extensions are loaded from.
type CatalogConfig struct {
	// Path is the catalog file (.json, .yaml or .yml).
	Path string `yaml:"path" json:"path" mapstructure:"path"`
	// Watch reloads the catalog in the browser when the file changes (default: false).
	Watch bool `yaml:"watch" json:"watch" mapstructure:"watch"`
	// WatchDebounce groups bursts of file events into one reload (default: 200ms).
	WatchDebounce time.Duration `yaml:"watch_debounce" json:"watch_debounce" mapstructure:"watch_debounce"`
}

// OutputFormat selects how non-interactive commands print results.
type OutputFormat string

const (
	// OutputTable prints an aligned text table.
	OutputTable OutputFormat = "table"
	// OutputJSON prints JSON.
	OutputJSON OutputFormat = "json"
	// OutputCSV prints comma-separated values.
	OutputCSV OutputFormat = "csv"
	// OutputXML prints XML.
	OutputXML OutputFormat = "xml"
)

// OutputConfig configures command output.
type OutputConfig struct {
	// Format is the default output format (default: table).
	Format OutputFormat `yaml:"format" json:"format" mapstructure:"format"`
}

// FeedConfig configures RSS feed generation.
type FeedConfig struct {
	// Path is where the feed is written (default: rss.xml).
	Path string `yaml:"path" json:"path" mapstructure:"path"`
}

// LogLevel is the minimum severity written to the log.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum level written (default: info).
	Level LogLevel `yaml:"level" json:"level" mapstructure:"level"`
	// Dir is the directory log files are written to (default: .extcat/logs).
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// Console also writes log lines to stderr.
	Console bool `yaml:"console" json:"console" mapstructure:"console"`
	// JSON switches the log format to JSON.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
}

// Default values.
const (
	DefaultSiteTitle       = "Welcome to the Quarkiverse"
	DefaultSiteDescription = "A prototype extensions catalogue."
	DefaultCatalogPath     = "extensions.json"
	DefaultWatchDebounce   = 200 * time.Millisecond
	DefaultFeedPath        = "rss.xml"
	DefaultLogDir          = ".extcat/logs"
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:       DefaultSiteTitle,
			Description: DefaultSiteDescription,
		},
		Catalog: CatalogConfig{
			Path:          DefaultCatalogPath,
			Watch:         false,
			WatchDebounce: DefaultWatchDebounce,
		},
		Output: OutputConfig{
			Format: OutputTable,
		},
		Feed: FeedConfig{
			Path: DefaultFeedPath,
		},
		Log: LogConfig{
			Level: LogLevelInfo,
			Dir:   DefaultLogDir,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Site.Title == "" {
		c.Site.Title = defaults.Site.Title
	}
	if c.Site.Description == "" {
		c.Site.Description = defaults.Site.Description
	}

	if c.Catalog.Path == "" {
		c.Catalog.Path = defaults.Catalog.Path
	}
	if c.Catalog.WatchDebounce == 0 {
		c.Catalog.WatchDebounce = defaults.Catalog.WatchDebounce
	}

	if c.Output.Format == "" {
		c.Output.Format = defaults.Output.Format
	}
	// Accept "JSON" as well as "json".
	c.Output.Format = OutputFormat(strings.ToLower(string(c.Output.Format)))

	if c.Feed.Path == "" {
		c.Feed.Path = defaults.Feed.Path
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	c.Log.Level = LogLevel(strings.ToLower(string(c.Log.Level)))
	if c.Log.Dir == "" {
		c.Log.Dir = defaults.Log.Dir
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Site.SiteURL != "" {
		u, err := url.Parse(c.Site.SiteURL)
		if err != nil || !u.IsAbs() || u.Host == "" {
			errs = append(errs, &ValidationError{
				Field:   "site.site_url",
				Message: fmt.Sprintf("must be an absolute URL, got %q", c.Site.SiteURL),
			})
		}
	}

	if c.Catalog.WatchDebounce < 0 {
		errs = append(errs, &ValidationError{Field: "catalog.watch_debounce", Message: "must be non-negative"})
	}

	if c.Output.Format != "" {
		switch c.Output.Format {
		case OutputTable, OutputJSON, OutputCSV, OutputXML:
			// valid
		default:
			errs = append(errs, &ValidationError{
				Field:   "output.format",
				Message: "must be 'table', 'json', 'csv', or 'xml'",
			})
		}
	}

	if c.Log.Level != "" {
		switch c.Log.Level {
		case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
			// valid
		default:
			errs = append(errs, &ValidationError{
				Field:   "log.level",
				Message: "must be 'debug', 'info', 'warn', or 'error'",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
