package main

import (
	"errors"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks flag and argument errors so they map to the usage exit code.
var ErrUsage = errors.New("usage error")

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	destination string
	days        int
	interests   string
	constraints string

	output       string
	config       string
	envFile      string
	models       []string
	timeout      time.Duration
	markdownOnly bool
	withHTML     bool

	quiet   bool
	verbose bool
}

// parseGenerateFlags parses generate command flags.
// Returns flag.ErrHelp when --help was requested.
func parseGenerateFlags(args []string) (*generateFlags, error) {
	flags := &generateFlags{}

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {} // usage is printed by the caller

	fs.StringVarP(&flags.destination, "destination", "d", "", "destination to travel (required)")
	fs.IntVarP(&flags.days, "days", "n", 3, "number of days (1-30)")
	fs.StringVarP(&flags.interests, "interests", "i", "", "special interests, comma-separated")
	fs.StringVar(&flags.constraints, "constraints", "", "guardrails, e.g. \"no walking tours\"")

	fs.StringVarP(&flags.output, "output", "o", "", "output directory")
	fs.StringVarP(&flags.config, "config", "c", "", "config file path")
	fs.StringVar(&flags.envFile, "env-file", "", "env file to load (default: .env if present)")
	fs.StringSliceVar(&flags.models, "model", nil, "model fallback list, in order")
	fs.DurationVar(&flags.timeout, "timeout", 0, "generation timeout (e.g. 90s)")
	fs.BoolVar(&flags.markdownOnly, "markdown-only", false, "skip PDF rendering")
	fs.BoolVar(&flags.withHTML, "html", false, "also write an HTML preview")

	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, flag.ErrHelp
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	if flags.quiet && flags.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}

	return flags, nil
}
