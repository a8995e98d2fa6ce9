package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
units: raw
format: table
mounts_file: /host/proc/mounts
tool: /usr/local/bin/btrfs
exclude_devices:
  - /dev/loop
  - /dev/ram
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Units != "raw" {
		t.Errorf("Units = %q, want raw", cfg.Units)
	}
	if cfg.Format != "table" {
		t.Errorf("Format = %q, want table", cfg.Format)
	}
	if cfg.MountsFile != "/host/proc/mounts" {
		t.Errorf("MountsFile = %q", cfg.MountsFile)
	}
	if cfg.Tool != "/usr/local/bin/btrfs" {
		t.Errorf("Tool = %q", cfg.Tool)
	}
	if len(cfg.ExcludeDevices) != 2 || cfg.ExcludeDevices[0] != "/dev/loop" {
		t.Errorf("ExcludeDevices = %v", cfg.ExcludeDevices)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Units != "" || cfg.Format != "" || cfg.MountsFile != "" ||
		cfg.Tool != "" || len(cfg.ExcludeDevices) != 0 {
		t.Errorf("Load(empty) = %+v, want zero config", cfg)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() error = nil for a missing explicit file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "units: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil for invalid YAML")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad units", content: "units: hex\n"},
		{name: "bad format", content: "format: csv\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Load() error = nil for invalid value")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "zero", cfg: Config{}},
		{name: "all valid", cfg: Config{Units: "binary", Format: "json"}},
		{name: "bad units", cfg: Config{Units: "decimalish"}, wantErr: true},
		{name: "bad format", cfg: Config{Format: "tsv"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
