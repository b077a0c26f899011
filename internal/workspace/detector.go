// Package workspace locates extcat workspaces: directories holding an
// .extcat/ configuration directory or a catalog file.
package workspace

import (
	"os"
	"path/filepath"
)

// ConfigDir is the per-workspace configuration directory.
const ConfigDir = ".extcat"

// Info describes a detected workspace.
type Info struct {
	// Path is the absolute path to the workspace directory.
	Path string `json:"path"`
	// Name is the directory name.
	Name string `json:"name"`
	// HasConfig reports whether .extcat/config.yaml exists.
	HasConfig bool `json:"has_config"`
	// Catalogs are the catalog files found, in marker order.
	Catalogs []string `json:"catalogs,omitempty"`
	// Markers are the markers found.
	Markers []string `json:"markers,omitempty"`
}

// Marker is a file or directory that identifies a workspace.
type Marker struct {
	// Name is the file or directory name, optionally a glob.
	Name string
	// IsDir indicates whether this is a directory marker.
	IsDir bool
	// Catalog marks files that can be loaded as a catalog.
	Catalog bool
}

// DefaultMarkers are checked during detection. Catalog markers are listed
// in order of preference.
var DefaultMarkers = []Marker{
	{Name: ConfigDir, IsDir: true},
	{Name: "extensions.json", Catalog: true},
	{Name: "extensions.yaml", Catalog: true},
	{Name: "extensions.yml", Catalog: true},
	{Name: "*.extensions.json", Catalog: true},
	{Name: "*.extensions.yaml", Catalog: true},
}

// Detector detects workspace directories.
type Detector struct {
	Markers []Marker
}

// NewDetector creates a new Detector with default markers.
func NewDetector() *Detector {
	return &Detector{
		Markers: DefaultMarkers,
	}
}

// Detect checks whether dir is a workspace.
// Returns nil, nil when no marker is present.
func (d *Detector) Detect(dir string) (*Info, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	fi, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, os.ErrNotExist
	}

	info := &Info{
		Path: absPath,
		Name: filepath.Base(absPath),
	}

	for _, marker := range d.Markers {
		matches := d.match(absPath, marker)
		if len(matches) == 0 {
			continue
		}
		info.Markers = append(info.Markers, marker.Name)
		if marker.Catalog {
			info.Catalogs = append(info.Catalogs, matches...)
		}
		if marker.Name == ConfigDir {
			info.HasConfig = fileExists(filepath.Join(absPath, ConfigDir, "config.yaml"))
		}
	}

	if len(info.Markers) == 0 {
		return nil, nil
	}
	return info, nil
}

// FindRoot walks up from start to the nearest directory with an
// .extcat/config.yaml. The search stops after the home or root directory.
// Returns nil, nil when there is none.
func (d *Detector) FindRoot(start string) (*Info, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, err
	}

	for {
		info, err := d.Detect(dir)
		if err != nil {
			return nil, err
		}
		if info != nil && info.HasConfig {
			return info, nil
		}
		if IsHomeDirectory(dir) || IsRootDirectory(dir) {
			return nil, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// match returns the paths in dir matching marker.
func (d *Detector) match(dir string, marker Marker) []string {
	if containsGlob(marker.Name) {
		matches, err := filepath.Glob(filepath.Join(dir, marker.Name))
		if err != nil {
			return nil
		}
		var out []string
		for _, m := range matches {
			if fi, err := os.Stat(m); err == nil && fi.IsDir() == marker.IsDir {
				out = append(out, m)
			}
		}
		return out
	}

	path := filepath.Join(dir, marker.Name)
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() != marker.IsDir {
		return nil
	}
	return []string{path}
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}

// containsGlob checks if a string contains glob characters.
func containsGlob(s string) bool {
	for _, c := range s {
		if c == '*' || c == '?' || c == '[' {
			return true
		}
	}
	return false
}

// IsHomeDirectory returns true if the directory is the user's home directory.
func IsHomeDirectory(dir string) bool {
	home, err := os.UserHomeDir()
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absHome, err := filepath.Abs(home)
	if err != nil {
		return false
	}
	return absDir == absHome
}

// IsRootDirectory returns true if the directory is the root directory.
func IsRootDirectory(dir string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	return absDir == "/" || absDir == filepath.VolumeName(absDir)+"\\"
}
