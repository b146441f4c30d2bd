// Package config provides configuration management for dref.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the dref configuration.
type Config struct {
	ContentDir   string `yaml:"content_dir"`
	OutputDir    string `yaml:"output_dir"`
	BasePath     string `yaml:"base_path,omitempty"`
	CompatData   string `yaml:"compat_data,omitempty"`
	Locale       string `yaml:"locale,omitempty"`
	OutputFormat string `yaml:"output_format,omitempty"`
	Jobs         int    `yaml:"jobs,omitempty"`
}

// Validate checks that all required fields are present and valid.
func (c *Config) Validate() error {
	if c.ContentDir == "" {
		return errors.New("content_dir is required")
	}
	if c.OutputDir == "" {
		return errors.New("output_dir is required")
	}
	if c.Jobs < 0 {
		return errors.New("jobs must not be negative")
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if dir := os.Getenv("DREF_CONTENT_DIR"); dir != "" {
		c.ContentDir = dir
	}
	if dir := os.Getenv("DREF_OUTPUT_DIR"); dir != "" {
		c.OutputDir = dir
	}
	if base := os.Getenv("DREF_BASE_PATH"); base != "" {
		c.BasePath = base
	}
	if data := os.Getenv("DREF_COMPAT_DATA"); data != "" {
		c.CompatData = data
	}
	if locale := os.Getenv("DREF_LOCALE"); locale != "" {
		c.Locale = locale
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "dref", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".dref", "config.yml")
	}

	return filepath.Join(home, ".config", "dref", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// If file doesn't exist, start with empty config
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
