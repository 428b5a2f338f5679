// Package config loads optional keel.toml tool configuration. Flags
// override the file; the file overrides the defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the full keel.toml schema.
type Config struct {
	Check  CheckConfig  `toml:"check"`
	Output OutputConfig `toml:"output"`
}

// CheckConfig controls the ownership checker.
type CheckConfig struct {
	// Jobs is the number of parallel workers, 0 means one per CPU.
	Jobs int `toml:"jobs"`
	// MaxDiagnostics caps the number of reported findings.
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	// Color is one of auto, on, off.
	Color string `toml:"color"`
}

// Default returns the configuration used when no keel.toml exists.
func Default() Config {
	return Config{
		Check:  CheckConfig{Jobs: 0, MaxDiagnostics: 100},
		Output: OutputConfig{Color: "auto"},
	}
}

// FindKeelToml walks up from startDir to locate keel.toml.
func FindKeelToml(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "keel.toml")
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

// Load parses and validates the file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault searches upward from startDir and loads the nearest
// keel.toml, falling back to Default when none exists.
func LoadOrDefault(startDir string) (Config, error) {
	path, ok, err := FindKeelToml(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) validate() error {
	var errs []error
	if c.Check.Jobs < 0 {
		errs = append(errs, fmt.Errorf("check.jobs must not be negative, got %d", c.Check.Jobs))
	}
	if c.Check.MaxDiagnostics <= 0 {
		errs = append(errs, fmt.Errorf("check.max_diagnostics must be positive, got %d", c.Check.MaxDiagnostics))
	}
	switch strings.ToLower(c.Output.Color) {
	case "auto", "on", "off":
	default:
		errs = append(errs, fmt.Errorf("output.color must be auto, on or off, got %q", c.Output.Color))
	}
	return errors.Join(errs...)
}
