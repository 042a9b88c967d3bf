// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// ForMissingAPIKey returns hints for a missing OpenAI API key.
func ForMissingAPIKey() string {
	var hints []string
	if os.Getenv("OPENAI_API_KEY") == "" {
		hints = append(hints, "set OPENAI_API_KEY in the environment or a .env file")
	}
	hints = append(hints, "use --env-file to point at a different .env")
	return formatHints(hints)
}

// ForGenerationFailure returns hints for exhausted model fallbacks.
func ForGenerationFailure() string {
	return formatHints([]string{
		"verify the API key has access to the configured models",
		"override the model list with --model or TRAVELPLAN_MODEL",
	})
}

// ForTimeout returns a hint about increasing timeout for slow generations.
func ForTimeout() string {
	return format("for long trips, raise the timeout with --timeout")
}

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound() string {
	return formatHints([]string{
		"use --config /path/to/travelplan.yaml",
		"or drop a travelplan.yaml in the working directory",
	})
}

// format renders a single hint line.
func format(hint string) string {
	return "\n  hint: " + hint
}

// formatHints renders multiple hint lines.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	var b strings.Builder
	for _, h := range hints {
		b.WriteString(format(h))
	}
	return b.String()
}
