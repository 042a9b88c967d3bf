package main

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring flags or YAML files.
type envConfig struct {
	APIKey    string        // OPENAI_API_KEY: OpenAI credential
	Config    string        // TRAVELPLAN_CONFIG: config file path
	Models    []string      // TRAVELPLAN_MODEL: comma-separated fallback list
	Timeout   time.Duration // TRAVELPLAN_TIMEOUT: generation timeout
	OutputDir string        // TRAVELPLAN_OUTPUT_DIR: default output directory
}

// knownEnvVars lists valid TRAVELPLAN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TRAVELPLAN_CONFIG":     true,
	"TRAVELPLAN_MODEL":      true,
	"TRAVELPLAN_TIMEOUT":    true,
	"TRAVELPLAN_OUTPUT_DIR": true,
}

// loadEnvConfig reads configuration from the environment.
// An invalid TRAVELPLAN_TIMEOUT is an error rather than a silent default.
func loadEnvConfig(getenv func(string) string) (*envConfig, error) {
	cfg := &envConfig{
		APIKey:    getenv("OPENAI_API_KEY"),
		Config:    getenv("TRAVELPLAN_CONFIG"),
		OutputDir: getenv("TRAVELPLAN_OUTPUT_DIR"),
	}

	if models := getenv("TRAVELPLAN_MODEL"); models != "" {
		for _, m := range strings.Split(models, ",") {
			if m = strings.TrimSpace(m); m != "" {
				cfg.Models = append(cfg.Models, m)
			}
		}
	}

	if raw := getenv("TRAVELPLAN_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: invalid TRAVELPLAN_TIMEOUT %q (use e.g. \"90s\", \"2m\")", ErrUsage, raw)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// warnUnknownEnvVars reports TRAVELPLAN_* variables that are not recognized,
// catching typos like TRAVELPLAN_MODELS.
func warnUnknownEnvVars(environ []string, w io.Writer) {
	for _, kv := range environ {
		name, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, "TRAVELPLAN_") {
			continue
		}
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "Warning: unknown environment variable %s (ignored)\n", name)
		}
	}
}
