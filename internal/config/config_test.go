package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Generation.MaxCompletionTokens != DefaultMaxCompletionTokens {
		t.Errorf("maxCompletionTokens = %d, want %d", cfg.Generation.MaxCompletionTokens, DefaultMaxCompletionTokens)
	}
	if cfg.Generation.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("timeoutSeconds = %d, want %d", cfg.Generation.TimeoutSeconds, DefaultTimeoutSeconds)
	}
	if cfg.Output.BaseName != DefaultBaseName {
		t.Errorf("baseName = %q, want %q", cfg.Output.BaseName, DefaultBaseName)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "travelplan.yaml")
	content := `generation:
  models:
    - gpt-5
    - gpt-4.1
  timeoutSeconds: 60
output:
  dir: ./plans
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if want := []string{"gpt-5", "gpt-4.1"}; !reflect.DeepEqual(cfg.Generation.Models, want) {
		t.Errorf("models = %v, want %v", cfg.Generation.Models, want)
	}
	if cfg.Generation.TimeoutSeconds != 60 {
		t.Errorf("timeoutSeconds = %d, want 60", cfg.Generation.TimeoutSeconds)
	}
	if cfg.Output.Dir != "./plans" {
		t.Errorf("dir = %q, want ./plans", cfg.Output.Dir)
	}
	// Unset fields keep their defaults.
	if cfg.Generation.MaxCompletionTokens != DefaultMaxCompletionTokens {
		t.Errorf("maxCompletionTokens = %d, want default", cfg.Generation.MaxCompletionTokens)
	}
	if cfg.Output.BaseName != DefaultBaseName {
		t.Errorf("baseName = %q, want default", cfg.Output.BaseName)
	}
}

func TestLoadConfig_NotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfig_UnknownField(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("generation:\n  modelz: [x]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero max tokens", func(c *Config) { c.Generation.MaxCompletionTokens = 0 }},
		{"negative timeout", func(c *Config) { c.Generation.TimeoutSeconds = -1 }},
		{"too many models", func(c *Config) {
			c.Generation.Models = make([]string, MaxModels+1)
			for i := range c.Generation.Models {
				c.Generation.Models[i] = "m"
			}
		}},
		{"blank model name", func(c *Config) { c.Generation.Models = []string{"gpt-5", "  "} }},
		{"base name with separator", func(c *Config) { c.Output.BaseName = "plans/plan" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	// Explicit path always wins, even if it does not exist yet.
	if path, found := Resolve("/etc/travelplan.yaml"); !found || path != "/etc/travelplan.yaml" {
		t.Errorf("Resolve(explicit) = (%q, %v)", path, found)
	}

	// Without an explicit path and no default file in the working
	// directory, no config applies.
	if _, found := Resolve(""); found {
		t.Error("Resolve(\"\") found a config in a directory without one")
	}
}
