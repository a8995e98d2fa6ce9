// Package config loads the optional tool configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file location consulted when --config is
// not given.
const DefaultPath = "/etc/voltopo/config.yaml"

// Config carries the tool defaults a host administrator may pin down.
// Everything is optional; flags override the file.
type Config struct {
	// Units is the default byte-size rendering: raw, binary or decimal.
	Units string `yaml:"units,omitempty"`
	// Format is the default show output format: text, table, json, yaml.
	Format string `yaml:"format,omitempty"`
	// MountsFile overrides the mount table location, for containers
	// that bind a host /proc elsewhere.
	MountsFile string `yaml:"mounts_file,omitempty"`
	// Tool is the path of the privileged helper binary.
	Tool string `yaml:"tool,omitempty"`
	// ExcludeDevices drops scanned devices whose path starts with any
	// of these prefixes (e.g. /dev/loop).
	ExcludeDevices []string `yaml:"exclude_devices,omitempty"`
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Units {
	case "", "raw", "binary", "decimal":
	default:
		return fmt.Errorf("units must be raw, binary or decimal, got %q", c.Units)
	}
	switch c.Format {
	case "", "text", "table", "json", "yaml":
	default:
		return fmt.Errorf("format must be text, table, json or yaml, got %q", c.Format)
	}
	return nil
}

// Load reads the configuration file at path, or at DefaultPath when
// path is empty. A missing default file yields the zero configuration;
// an explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
