// Package config holds tool-wide constants and the treewright.yaml
// project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level treewright.yaml configuration.
type Config struct {
	// Color controls colored diagnostics output: "auto", "always" or
	// "never". Defaults to "auto".
	Color string `yaml:"color,omitempty"`

	// MaxErrors caps how many diagnostics one run prints. Zero means
	// no cap.
	MaxErrors int `yaml:"max_errors,omitempty"`
}

// LoadConfig loads and parses a treewright.yaml file from disk.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses treewright.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig searches for treewright.yaml starting from dir and walking
// up to parent directories. It returns the path to the config file if
// found, or an empty string and nil error if not.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range []string{"treewright.yaml", "treewright.yml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *Config) validate(path string) error {
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("%s: color must be auto, always or never, got %q", path, c.Color)
	}
	if c.MaxErrors < 0 {
		return fmt.Errorf("%s: max_errors must not be negative", path)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Color == "" {
		c.Color = "auto"
	}
}
