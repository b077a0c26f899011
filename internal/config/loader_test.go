package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	loadErr, ok := err.(*LoadError)
	if !ok {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if loadErr.Path != "nonexistent/config.yaml" {
		t.Errorf("expected path 'nonexistent/config.yaml', got %q", loadErr.Path)
	}
	if loadErr.Message != "config file not found" {
		t.Errorf("expected message 'config file not found', got %q", loadErr.Message)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
site:
  title: Quarkiverse
  description: Extensions for everyone
  site_url: http://localhost:8000/
  path_prefix: extensions.io

catalog:
  path: data/extensions.yaml
  watch: true
  watch_debounce: 500ms

output:
  format: csv

feed:
  path: public/rss.xml

log:
  level: debug
  dir: /tmp/extcat-logs
  console: true
  json: true
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Site.Title != "Quarkiverse" {
		t.Errorf("expected site.title 'Quarkiverse', got %q", cfg.Site.Title)
	}
	if cfg.Site.SiteURL != "http://localhost:8000/" {
		t.Errorf("expected site.site_url, got %q", cfg.Site.SiteURL)
	}
	if cfg.Site.PathPrefix != "extensions.io" {
		t.Errorf("expected site.path_prefix, got %q", cfg.Site.PathPrefix)
	}
	if cfg.Catalog.Path != "data/extensions.yaml" {
		t.Errorf("expected catalog.path, got %q", cfg.Catalog.Path)
	}
	if !cfg.Catalog.Watch {
		t.Error("expected catalog.watch to be true")
	}
	if cfg.Catalog.WatchDebounce != 500*time.Millisecond {
		t.Errorf("expected catalog.watch_debounce 500ms, got %v", cfg.Catalog.WatchDebounce)
	}
	if cfg.Output.Format != OutputCSV {
		t.Errorf("expected output.format 'csv', got %q", cfg.Output.Format)
	}
	if cfg.Feed.Path != "public/rss.xml" {
		t.Errorf("expected feed.path, got %q", cfg.Feed.Path)
	}
	if cfg.Log.Level != LogLevelDebug || !cfg.Log.Console || !cfg.Log.JSON {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	configPath := writeConfig(t, `
site:
  title: Minimal
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Site.Title != "Minimal" {
		t.Errorf("expected site.title 'Minimal', got %q", cfg.Site.Title)
	}
	if cfg.Catalog.Path != DefaultCatalogPath {
		t.Errorf("expected default catalog.path, got %q", cfg.Catalog.Path)
	}
	if cfg.Output.Format != OutputTable {
		t.Errorf("expected default output.format, got %q", cfg.Output.Format)
	}
	if cfg.Catalog.WatchDebounce != DefaultWatchDebounce {
		t.Errorf("expected default watch_debounce, got %v", cfg.Catalog.WatchDebounce)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	configPath := writeConfig(t, `
catalog:
  path: from-file.json
output:
  format: table
`)

	t.Setenv("EXTCAT_CATALOG_PATH", "from-env.yaml")
	t.Setenv("EXTCAT_CATALOG_WATCH", "yes")
	t.Setenv("EXTCAT_CATALOG_WATCH_DEBOUNCE", "1s")
	t.Setenv("EXTCAT_OUTPUT_FORMAT", "json")
	t.Setenv("EXTCAT_SITE_SITE_URL", "https://example.com/")
	t.Setenv("EXTCAT_LOG_LEVEL", "warn")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Catalog.Path != "from-env.yaml" {
		t.Errorf("expected catalog.path from env, got %q", cfg.Catalog.Path)
	}
	if !cfg.Catalog.Watch {
		t.Error("expected catalog.watch true from env")
	}
	if cfg.Catalog.WatchDebounce != time.Second {
		t.Errorf("expected watch_debounce 1s from env, got %v", cfg.Catalog.WatchDebounce)
	}
	if cfg.Output.Format != OutputJSON {
		t.Errorf("expected output.format 'json' from env, got %q", cfg.Output.Format)
	}
	if cfg.Site.SiteURL != "https://example.com/" {
		t.Errorf("expected site.site_url from env, got %q", cfg.Site.SiteURL)
	}
	if cfg.Log.Level != LogLevelWarn {
		t.Errorf("expected log.level 'warn' from env, got %q", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrides_InvalidDurationIgnored(t *testing.T) {
	configPath := writeConfig(t, `
catalog:
  watch_debounce: 300ms
`)
	t.Setenv("EXTCAT_CATALOG_WATCH_DEBOUNCE", "soon")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Catalog.WatchDebounce != 300*time.Millisecond {
		t.Errorf("expected file value to survive, got %v", cfg.Catalog.WatchDebounce)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	configPath := writeConfig(t, `
output:
  format: yaml
`)

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}

	loadErr, ok := err.(*LoadError)
	if !ok {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if loadErr.Message != "configuration validation failed" {
		t.Errorf("expected message 'configuration validation failed', got %q", loadErr.Message)
	}
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Error("expected ValidationErrors in the chain")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, "site: [unclosed\n  title: x")

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	loadErr, ok := err.(*LoadError)
	if !ok {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if loadErr.Message != "failed to read config file" {
		t.Errorf("unexpected message %q", loadErr.Message)
	}
}

func TestLoad_EmptyConfigFile(t *testing.T) {
	configPath := writeConfig(t, "")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("empty config should load: %v", err)
	}
	if cfg.Catalog.Path != DefaultCatalogPath {
		t.Errorf("expected defaults, got %q", cfg.Catalog.Path)
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	t.Setenv("EXTCAT_CATALOG_PATH", "env.json")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault should not fail for a missing file: %v", err)
	}
	if cfg.Catalog.Path != "env.json" {
		t.Errorf("expected env override on defaults, got %q", cfg.Catalog.Path)
	}
}

func TestLoadOrDefault_ExistingFile(t *testing.T) {
	configPath := writeConfig(t, `
feed:
  path: out.xml
`)
	cfg, err := LoadOrDefault(configPath)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if cfg.Feed.Path != "out.xml" {
		t.Errorf("expected feed.path from file, got %q", cfg.Feed.Path)
	}
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("output:\n  format: xml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("LoadFromDir failed: %v", err)
	}
	if cfg.Output.Format != OutputXML {
		t.Errorf("expected output.format 'xml', got %q", cfg.Output.Format)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{" yes ", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := parseBool(tt.in); got != tt.want {
			t.Errorf("parseBool(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadError_Error(t *testing.T) {
	withErr := &LoadError{Path: "c.yaml", Message: "bad", Err: errors.New("boom")}
	if withErr.Error() != "c.yaml: bad: boom" {
		t.Errorf("unexpected message %q", withErr.Error())
	}
	noErr := &LoadError{Path: "c.yaml", Message: "bad"}
	if noErr.Error() != "c.yaml: bad" {
		t.Errorf("unexpected message %q", noErr.Error())
	}
}

func TestLoadError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &LoadError{Err: inner}
	if !errors.Is(err, inner) {
		t.Error("LoadError should unwrap to its cause")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := NewConfig()
	cfg.Site.SiteURL = "https://example.com/"
	cfg.Catalog.Watch = true
	cfg.Catalog.WatchDebounce = 750 * time.Millisecond
	cfg.Output.Format = OutputCSV

	if err := Save(cfg, configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read saved config: %v", err)
	}
	if !strings.Contains(string(data), "watch_debounce: 750ms") {
		t.Errorf("durations should be written as strings:\n%s", data)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Site.SiteURL != "https://example.com/" {
		t.Errorf("expected site.site_url round-trip, got %q", loaded.Site.SiteURL)
	}
	if !loaded.Catalog.Watch || loaded.Catalog.WatchDebounce != 750*time.Millisecond {
		t.Errorf("unexpected catalog config: %+v", loaded.Catalog)
	}
	if loaded.Output.Format != OutputCSV {
		t.Errorf("expected output.format round-trip, got %q", loaded.Output.Format)
	}
}

func TestSave_DefaultPath(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, _ := os.Getwd()
	defer os.Chdir(originalWd)
	os.Chdir(tmpDir)

	if err := Save(NewConfig(), ""); err != nil {
		t.Fatalf("failed to save config with default path: %v", err)
	}
	if _, err := os.Stat(DefaultConfigPath); os.IsNotExist(err) {
		t.Fatal("config file was not created at default path")
	}
}
