package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	travelplan "github.com/avence/go-travelplan"
	"github.com/avence/go-travelplan/internal/config"
	"github.com/avence/go-travelplan/internal/fileutil"
	"github.com/avence/go-travelplan/internal/hints"
)

// ErrWriteArtifact marks failures writing output files.
var ErrWriteArtifact = errors.New("failed to write output file")

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// runGenerate executes the generate command: resolve configuration, call the
// model, and write the plan artifacts. The Markdown file is written before
// PDF rendering starts, so a render failure never loses the generated text.
func runGenerate(args []string, env *Environment) error {
	flags, err := parseGenerateFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printGenerateUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	// Load .env before reading the environment. A missing default .env is
	// fine; an explicitly requested file must exist.
	if flags.envFile != "" {
		if err := godotenv.Load(flags.envFile); err != nil {
			return fmt.Errorf("loading env file %q: %w", flags.envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	warnUnknownEnvVars(env.Environ(), env.Stderr)
	envCfg, err := loadEnvConfig(env.Getenv)
	if err != nil {
		return err
	}

	cfg, err := loadFileConfig(flags.config, envCfg.Config)
	if err != nil {
		return err
	}

	req := travelplan.TripRequest{
		Destination: flags.destination,
		Days:        flags.days,
		Interests:   flags.interests,
		Constraints: flags.constraints,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if envCfg.APIKey == "" {
		return fmt.Errorf("%w%s", travelplan.ErrMissingAPIKey, hints.ForMissingAPIKey())
	}

	svc := travelplan.New(
		travelplan.WithAPIKey(envCfg.APIKey),
		travelplan.WithModels(resolveModels(flags, envCfg, cfg)...),
		travelplan.WithTimeout(resolveTimeout(flags, envCfg, cfg)),
		travelplan.WithMaxCompletionTokens(cfg.Generation.MaxCompletionTokens),
		travelplan.WithNow(env.Now),
	)

	if !flags.quiet {
		fmt.Fprintf(env.Stderr, "Generating travel plan for %s (%d days)...\n", req.Destination, req.Days)
	}

	plan, err := svc.GeneratePlan(context.Background(), req)
	if err != nil {
		return decorateGenerationError(err)
	}
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Model: %s\n", plan.Model)
	}

	outputDir := resolveOutputDir(flags, envCfg, cfg)
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteArtifact, err)
	}
	base := filepath.Join(outputDir, cfg.Output.BaseName)

	// Markdown first: the text must survive any later rendering failure.
	mdPath := base + ".md"
	if err := fileutil.WriteFileAtomic(mdPath, []byte(plan.Markdown), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteArtifact, err)
	}
	if !flags.quiet {
		fmt.Fprintf(env.Stderr, "Plan written: %s\n", mdPath)
	}

	if flags.withHTML {
		htmlContent, err := svc.RenderHTML(context.Background(), plan.Markdown)
		if err != nil {
			return fmt.Errorf("rendering HTML (plan kept at %s): %w", mdPath, err)
		}
		htmlPath := base + ".html"
		if err := fileutil.WriteFileAtomic(htmlPath, []byte(htmlContent), filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteArtifact, err)
		}
		if !flags.quiet {
			fmt.Fprintf(env.Stderr, "Preview written: %s\n", htmlPath)
		}
	}

	if flags.markdownOnly {
		return nil
	}

	pdfBytes, err := svc.RenderPDF(plan.Markdown)
	if err != nil {
		return fmt.Errorf("rendering PDF (plan kept at %s): %w", mdPath, err)
	}
	pdfPath := base + ".pdf"
	if err := fileutil.WriteFileAtomic(pdfPath, pdfBytes, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteArtifact, err)
	}
	if !flags.quiet {
		fmt.Fprintf(env.Stderr, "PDF written: %s\n", pdfPath)
	}

	return nil
}

// loadFileConfig resolves and loads the YAML config, if any.
// Flag path wins over env path; without either, travelplan.yaml in the
// working directory is used when present, defaults otherwise.
func loadFileConfig(flagPath, envPath string) (*config.Config, error) {
	explicit := flagPath
	if explicit == "" {
		explicit = envPath
	}

	path, found := config.Resolve(explicit)
	if !found {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound())
		}
		return nil, err
	}
	return cfg, nil
}

// resolveModels applies precedence: flags > environment > config file.
func resolveModels(flags *generateFlags, envCfg *envConfig, cfg *config.Config) []string {
	if len(flags.models) > 0 {
		return flags.models
	}
	if len(envCfg.Models) > 0 {
		return envCfg.Models
	}
	return cfg.Generation.Models
}

// resolveTimeout applies precedence: flags > environment > config file.
func resolveTimeout(flags *generateFlags, envCfg *envConfig, cfg *config.Config) time.Duration {
	if flags.timeout > 0 {
		return flags.timeout
	}
	if envCfg.Timeout > 0 {
		return envCfg.Timeout
	}
	return time.Duration(cfg.Generation.TimeoutSeconds) * time.Second
}

// resolveOutputDir applies precedence: flags > environment > config file.
func resolveOutputDir(flags *generateFlags, envCfg *envConfig, cfg *config.Config) string {
	if flags.output != "" {
		return flags.output
	}
	if envCfg.OutputDir != "" {
		return envCfg.OutputDir
	}
	return cfg.Output.Dir
}

// decorateGenerationError attaches actionable hints to generation failures.
func decorateGenerationError(err error) error {
	switch {
	case errors.Is(err, travelplan.ErrAllModelsFailed):
		return fmt.Errorf("%w%s", err, hints.ForGenerationFailure())
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	default:
		return err
	}
}
