package main

import (
	"context"
	"errors"
	"os"

	travelplan "github.com/avence/go-travelplan"
	"github.com/avence/go-travelplan/internal/config"
)

// Exit codes for the travelplan CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Plan generated and artifacts written
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, config, or validation
	ExitIO         = 3 // File not found, permission denied
	ExitGeneration = 4 // Model/API failure, no plan text produced
	ExitRender     = 5 // PDF/HTML rendering failure (plan text was kept)
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage and validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, travelplan.ErrEmptyDestination) ||
		errors.Is(err, travelplan.ErrInvalidDays) ||
		errors.Is(err, travelplan.ErrMissingAPIKey) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteArtifact) {
		return ExitIO
	}

	// Generation failures (exit 4)
	if errors.Is(err, travelplan.ErrAllModelsFailed) ||
		errors.Is(err, travelplan.ErrEmptyPlan) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitGeneration
	}

	// Rendering failures (exit 5)
	if errors.Is(err, travelplan.ErrMissingStyle) ||
		errors.Is(err, travelplan.ErrPDFRender) ||
		errors.Is(err, travelplan.ErrHTMLConversion) {
		return ExitRender
	}

	return ExitGeneral
}
