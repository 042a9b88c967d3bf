package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: travelplan <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate a travel plan and render it as PDF")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'travelplan help generate' for details.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: travelplan generate --destination <place> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a day-by-day travel plan and render it as a paginated PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trip:")
	fmt.Fprintln(w, "  -d, --destination <s>     Destination to travel (required)")
	fmt.Fprintln(w, "  -n, --days <n>            Number of days, 1-30 (default 3)")
	fmt.Fprintln(w, "  -i, --interests <s>       Special interests, comma-separated")
	fmt.Fprintln(w, "      --constraints <s>     Guardrails, e.g. \"no walking tours; kids-friendly\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: current directory)")
	fmt.Fprintln(w, "      --markdown-only       Skip PDF rendering")
	fmt.Fprintln(w, "      --html                Also write an HTML preview")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generation:")
	fmt.Fprintln(w, "      --model <s,...>       Model fallback list, in order")
	fmt.Fprintln(w, "      --timeout <dur>       Generation timeout (e.g. 90s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <path>       Config file (default: ./travelplan.yaml if present)")
	fmt.Fprintln(w, "      --env-file <path>     Env file to load (default: .env if present)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Misc:")
	fmt.Fprintln(w, "  -q, --quiet               Suppress progress output")
	fmt.Fprintln(w, "  -v, --verbose             Verbose output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  OPENAI_API_KEY            OpenAI credential (required)")
	fmt.Fprintln(w, "  TRAVELPLAN_CONFIG         Config file path")
	fmt.Fprintln(w, "  TRAVELPLAN_MODEL          Comma-separated model fallback list")
	fmt.Fprintln(w, "  TRAVELPLAN_TIMEOUT        Generation timeout")
	fmt.Fprintln(w, "  TRAVELPLAN_OUTPUT_DIR     Default output directory")
}
