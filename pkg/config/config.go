// Package config loads shelfd server configuration from YAML or JSON files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
	ErrEmptyFile    = errors.New("configuration file is empty")
)

// DefaultPort is the port the API server listens on when none is
// configured.
const DefaultPort = 5000

// Config holds the server configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int `json:"port" yaml:"port"`

	// LogLevel is the minimum log level: debug, info, warn, error.
	LogLevel string `json:"logLevel" yaml:"logLevel"`

	// LogFormat is the log output format: text or json.
	LogFormat string `json:"logFormat" yaml:"logFormat"`

	// SeedDir is a directory containing users.json, posts.json, and
	// books.json seed files. Empty means the built-in seed data.
	SeedDir string `json:"seedDir" yaml:"seedDir"`
}

// Default returns the configuration used when no file or flags are given.
func Default() Config {
	return Config{
		Port:      DefaultPort,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads a Config from a JSON or YAML file, merged over the defaults.
// The format is auto-detected from the extension (.yaml/.yml for YAML,
// otherwise JSON).
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	cfg := Default()
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
	} else {
		if !json.Valid(data) {
			return nil, fmt.Errorf("%w in file: %s", ErrInvalidJSON, path)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.SeedDir != "" {
		info, err := os.Stat(c.SeedDir)
		if err != nil {
			return fmt.Errorf("seed directory %s: %w", c.SeedDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("seed path is not a directory: %s", c.SeedDir)
		}
	}
	return nil
}
