// Package config provides configuration loading and validation for the
// scoring service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the service configuration, loadable from a JSON file. All
// fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Port is the HTTP listen port for serve mode.
	Port int `json:"port,omitempty"`

	// CatalogPath optionally points to a JSON file with a custom skill
	// vocabulary; empty means the built-in reference catalog.
	CatalogPath string `json:"catalog_path,omitempty"`

	// JSONLogs switches log output from console to JSON encoding.
	JSONLogs bool `json:"json_logs,omitempty"`

	// Verbose enables debug-level logging.
	Verbose bool `json:"verbose,omitempty"`
}

// DefaultPort is used when neither config nor flags set one.
const DefaultPort = 8000

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration holds usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
		}
	}

	return nil
}

// MergeWithDefaults fills zero-valued fields from defaults. Bool fields
// are not merged; flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}

	return result
}
