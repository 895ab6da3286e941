package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the gitmeta settings read from config.yaml.
type Config struct {
	// Binary is the name the external tool is resolved by on PATH.
	// Empty means the built-in default (git-meta).
	Binary string `yaml:"binary"`
}

// FileName is the config file name inside the config directory.
const FileName = "config.yaml"

// Load reads the config file from the gitmeta config directory.
// A missing file is not an error and yields the zero Config.
func Load() (*Config, error) {
	dir := Dir()
	if dir == "" {
		return &Config{}, nil
	}
	return LoadFrom(filepath.Join(dir, FileName))
}

// LoadFrom reads a config file at an explicit path.
// A missing file is not an error and yields the zero Config.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// ResolveBinary returns the binary name to use for the external tool.
//
// Precedence: $GITMETA_BIN, then the config file's binary field, then "".
// Empty means the caller should fall back to the built-in default.
func ResolveBinary(cfg *Config) string {
	if bin := os.Getenv("GITMETA_BIN"); bin != "" {
		return bin
	}
	if cfg != nil && cfg.Binary != "" {
		return cfg.Binary
	}
	return ""
}
