package travelplan

import "errors"

// Sentinel errors for library operations.
var (
	// Trip request validation errors.
	ErrEmptyDestination = errors.New("destination cannot be empty")
	ErrInvalidDays      = errors.New("number of days must be between 1 and 30")

	// Plan generation errors.
	ErrMissingAPIKey   = errors.New("no API key configured")
	ErrAllModelsFailed = errors.New("all model attempts failed")
	ErrEmptyPlan       = errors.New("model returned empty plan text")

	// Rendering errors.
	ErrMissingStyle   = errors.New("no style entry for block kind")
	ErrPDFRender      = errors.New("PDF rendering failed")
	ErrHTMLConversion = errors.New("HTML conversion failed")
)
