// Package project locates and parses the optional fern.toml manifest, which
// supplies workspace-level defaults for the CLI.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest is a parsed fern.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the fern.toml layout.
type Config struct {
	Output OutputConfig `toml:"output"`
	Limits LimitsConfig `toml:"limits"`
}

// OutputConfig holds default output settings for tokenize.
type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// LimitsConfig holds resource limits.
type LimitsConfig struct {
	MaxDiagnostics int `toml:"max-diagnostics"`
}

// FindFernToml walks up from startDir to locate fern.toml.
func FindFernToml(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "fern.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest finds and parses fern.toml starting at startDir. ok is false
// when no manifest exists, which is not an error.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindFernToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}

	var cfg Config
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, true, fmt.Errorf("failed to parse %s: %w", manifestPath, err)
	}

	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}
