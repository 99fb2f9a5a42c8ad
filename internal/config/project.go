package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Project represents the optional minijava.yaml configuration.
type Project struct {
	// MaxErrors caps how many diagnostics the CLI prints per run.
	// 0 means no cap.
	MaxErrors int `yaml:"max_errors,omitempty"`

	// Color controls diagnostic coloring: "auto" (default), "always", "never".
	Color string `yaml:"color,omitempty"`

	// Cache enables the incremental check-result cache.
	Cache bool `yaml:"cache,omitempty"`

	// CacheDir is where the cache database lives. Defaults to ".mjcache"
	// next to the project file.
	CacheDir string `yaml:"cache_dir,omitempty"`
}

// DefaultProject returns the configuration used when no project file exists.
func DefaultProject() *Project {
	return &Project{Color: "auto"}
}

// LoadProject reads minijava.yaml from dir. A missing file is not an
// error: the defaults are returned.
func LoadProject(dir string) (*Project, error) {
	path := filepath.Join(dir, ProjectFileName)
	p := DefaultProject()
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if p.CacheDir == "" {
		p.CacheDir = filepath.Join(dir, ".mjcache")
	}
	return p, nil
}

func (p *Project) validate() error {
	switch p.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", p.Color)
	}
	if p.MaxErrors < 0 {
		return fmt.Errorf("max_errors must not be negative")
	}
	return nil
}
