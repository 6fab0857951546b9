package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.simcheck.yaml",               // Project-specific config (highest priority)
	"~/.config/simcheck/config.yaml", // User config
	"/etc/simcheck/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.simcheck.yaml
// 4. ~/.config/simcheck/config.yaml
// 5. /etc/simcheck/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Load standard paths in reverse priority order so the highest
		// priority file wins the merge.
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file and merges it into config
func (l *Loader) loadFromFile(config *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // config paths come from the user
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// NaN marks the threshold as unset so a configured 0.0 survives the merge.
	fileConfig := Config{Report: ReportConfig{Threshold: math.NaN()}}
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		"SIMCHECK_INPUT_DIRECTORY":    func(v string) error { config.Input.Directory = v; return nil },
		"SIMCHECK_REPORT_FORMAT":      func(v string) error { config.Report.Format = v; return nil },
		"SIMCHECK_REPORT_OUTPUT_FILE": func(v string) error { config.Report.OutputFile = v; return nil },
		"SIMCHECK_REPORT_THRESHOLD":   func(v string) error { return parseFloat(v, &config.Report.Threshold) },
		"SIMCHECK_OUTPUT_COLOR_MODE":  func(v string) error { config.Output.ColorMode = v; return nil },
		"SIMCHECK_OUTPUT_VERBOSE":     func(v string) error { return parseBool(v, &config.Output.Verbose) },
		"SIMCHECK_EXTRA_STOPWORDS": func(v string) error {
			config.Tokenizer.ExtraStopWords = splitList(v)
			return nil
		},
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the expanded config search paths in priority order
func GetConfigPaths() []string {
	paths := make([]string, len(ConfigPaths))
	for i, path := range ConfigPaths {
		paths[i] = expandPath(path)
	}
	return paths
}

// FindConfigFile returns the highest priority config file that exists
func FindConfigFile() (string, bool) {
	for _, path := range GetConfigPaths() {
		if fileExists(path) {
			return path, true
		}
	}
	return "", false
}

func parseFloat(value string, target *float64) error {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid float value: %s", value)
	}
	*target = parsed
	return nil
}

func parseBool(value string, target *bool) error {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean value: %s", value)
	}
	*target = parsed
	return nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
