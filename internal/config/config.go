package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the optional configuration file passed with --config.
// Command-line flags override any value set here.
type Config struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Symbol controls how the array symbol is checked.
	Symbol SymbolConfig `yaml:"symbol"`
	// Verify, if true, decodes the written header and compares it with the input.
	Verify bool `yaml:"verify"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path string `yaml:"path"`
}

// SymbolConfig controls symbol validation.
type SymbolConfig struct {
	// AllowAny disables the C identifier check on the symbol.
	AllowAny bool `yaml:"allow_any"`
}

// Load reads and parses the YAML file at path. Unknown keys are rejected so
// that typos do not silently fall back to defaults.
//
// Parameters:
//   - path: The configuration file to read.
//
// Returns:
//   - *Config: The parsed configuration, with defaults applied.
//   - error: An error if the file cannot be read, parsed or validated.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for errors.
func Validate(config *Config) error {
	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}
	return nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}
