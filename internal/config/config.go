// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"mouldflow/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Database contains persistence settings
	Database DatabaseConfig `json:"database"`

	// Catalog contains material/machine catalog settings
	Catalog CatalogConfig `json:"catalog"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// MaxUploadBytes caps STL upload size
	MaxUploadBytes int64 `json:"max_upload_bytes"`
}

// DatabaseConfig contains persistence settings
type DatabaseConfig struct {
	// Path is the SQLite database path
	Path string `json:"path"`
}

// CatalogConfig contains catalog settings
type CatalogConfig struct {
	// Dir is an optional directory of .hcl catalog files that
	// replaces the built-in catalog when set
	Dir string `json:"dir,omitempty"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	base := filepath.Join(homeDir, ".mouldflow")

	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr:           ":8080",
			MaxUploadBytes: 50 * 1024 * 1024,
		},
		Database: DatabaseConfig{
			Path: filepath.Join(base, "mouldflow.db"),
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
