package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/hirescore/internal/catalog"
	"github.com/jonathan/hirescore/internal/config"
	"github.com/jonathan/hirescore/internal/engine"
	"github.com/jonathan/hirescore/internal/logger"
	"go.uber.org/zap"
)

// loadConfig merges the optional config file with flag and built-in
// defaults.
func loadConfig() (config.Config, error) {
	var cfg config.Config

	if rootConfigPath != "" {
		loaded, err := config.Load(rootConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.Config{})
	cfg.JSONLogs = cfg.JSONLogs || rootJSONLogs
	cfg.Verbose = cfg.Verbose || rootVerbose

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the zap logger from config.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.JSONLogs, cfg.Verbose)
}

// newEngine builds the scoring engine, loading a custom skill catalog
// when the config names one.
func newEngine(cfg config.Config, log *zap.Logger) (*engine.Engine, error) {
	var cat *catalog.Catalog
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load skill catalog: %w", err)
		}
		cat = loaded
	}

	return engine.New(cat, log)
}

// readInput reads a payload from a file path, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}

// printJSON writes a result as indented JSON to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(data))
	return nil
}
