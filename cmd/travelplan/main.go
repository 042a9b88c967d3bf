package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args, DefaultEnv()))
}

// run dispatches to the requested command and returns the process exit code.
func run(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[1] {
	case "generate":
		if err := runGenerate(args[2:], env); err != nil {
			fmt.Fprintln(env.Stderr, "Error:", err)
			return exitCodeFor(err)
		}
		return ExitSuccess

	case "version":
		fmt.Fprintln(env.Stdout, "travelplan", Version)
		return ExitSuccess

	case "help":
		if len(args) > 2 && args[2] == "generate" {
			printGenerateUsage(env.Stdout)
		} else {
			printUsage(env.Stdout)
		}
		return ExitSuccess

	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", args[1])
		printUsage(env.Stderr)
		return ExitUsage
	}
}
