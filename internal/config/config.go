// Package config loads and validates YAML configuration for the travelplan CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/avence/go-travelplan/internal/fileutil"
	"github.com/avence/go-travelplan/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidConfig  = errors.New("invalid config")
)

// Defaults and limits.
const (
	DefaultFileName            = "travelplan.yaml"
	DefaultTimeoutSeconds      = 120
	DefaultMaxCompletionTokens = 2200
	DefaultBaseName            = "travel_plan"
	MaxModels                  = 10
	MaxBaseNameLength          = 100
)

// Config holds all CLI configuration. Precedence is resolved by the caller:
// flags > environment > config file > defaults.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Output     OutputConfig     `yaml:"output"`
}

// GenerationConfig defines model call options.
type GenerationConfig struct {
	Models              []string `yaml:"models"`              // ordered fallback list (empty = library default)
	MaxCompletionTokens int      `yaml:"maxCompletionTokens"` // completion token cap
	TimeoutSeconds      int      `yaml:"timeoutSeconds"`      // per-generation timeout
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir      string `yaml:"dir"`      // output directory (empty = current directory)
	BaseName string `yaml:"baseName"` // artifact base name, e.g. "travel_plan"
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Generation: GenerationConfig{
			MaxCompletionTokens: DefaultMaxCompletionTokens,
			TimeoutSeconds:      DefaultTimeoutSeconds,
		},
		Output: OutputConfig{
			Dir:      ".",
			BaseName: DefaultBaseName,
		},
	}
}

// LoadConfig reads and validates a YAML config file. Missing fields keep
// their defaults; unknown fields are rejected to catch typos early.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from user flag/env
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve returns the config path to use. An explicit path wins; otherwise
// the default file name is searched in the working directory. found is false
// when no config applies (which is not an error).
func Resolve(explicit string) (path string, found bool) {
	if explicit != "" {
		return explicit, true
	}
	if fileutil.FileExists(DefaultFileName) {
		return DefaultFileName, true
	}
	return "", false
}

// Validate checks field bounds.
func (c *Config) Validate() error {
	if c.Generation.MaxCompletionTokens <= 0 {
		return fmt.Errorf("%w: maxCompletionTokens must be positive", ErrInvalidConfig)
	}
	if c.Generation.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: timeoutSeconds must be positive", ErrInvalidConfig)
	}
	if len(c.Generation.Models) > MaxModels {
		return fmt.Errorf("%w: at most %d models allowed", ErrInvalidConfig, MaxModels)
	}
	for _, m := range c.Generation.Models {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("%w: model names cannot be blank", ErrInvalidConfig)
		}
	}
	if len(c.Output.BaseName) > MaxBaseNameLength {
		return fmt.Errorf("%w: baseName exceeds %d characters", ErrInvalidConfig, MaxBaseNameLength)
	}
	if strings.ContainsAny(c.Output.BaseName, "/\\\x00") {
		return fmt.Errorf("%w: baseName must not contain path separators", ErrInvalidConfig)
	}
	return nil
}
