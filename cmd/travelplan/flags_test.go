package main

import (
	"errors"
	"reflect"
	"testing"
	"time"

	flag "github.com/spf13/pflag"
)

func TestParseGenerateFlags(t *testing.T) {
	t.Parallel()

	args := []string{
		"--destination", "Tokyo, Japan",
		"--days", "5",
		"--interests", "Museums",
		"--constraints", "no walking tours",
		"--output", "out",
		"--model", "gpt-5,gpt-4.1",
		"--timeout", "90s",
		"--markdown-only",
		"--html",
		"--quiet",
	}

	flags, err := parseGenerateFlags(args)
	if err != nil {
		t.Fatalf("parseGenerateFlags() error: %v", err)
	}

	if flags.destination != "Tokyo, Japan" {
		t.Errorf("destination = %q", flags.destination)
	}
	if flags.days != 5 {
		t.Errorf("days = %d, want 5", flags.days)
	}
	if want := []string{"gpt-5", "gpt-4.1"}; !reflect.DeepEqual(flags.models, want) {
		t.Errorf("models = %v, want %v", flags.models, want)
	}
	if flags.timeout != 90*time.Second {
		t.Errorf("timeout = %v, want 90s", flags.timeout)
	}
	if !flags.markdownOnly || !flags.withHTML || !flags.quiet {
		t.Errorf("booleans not set: %+v", flags)
	}
}

func TestParseGenerateFlags_Defaults(t *testing.T) {
	t.Parallel()

	flags, err := parseGenerateFlags([]string{"-d", "Lisbon"})
	if err != nil {
		t.Fatalf("parseGenerateFlags() error: %v", err)
	}

	if flags.days != 3 {
		t.Errorf("default days = %d, want 3", flags.days)
	}
	if flags.markdownOnly || flags.withHTML || flags.quiet || flags.verbose {
		t.Errorf("booleans should default to false: %+v", flags)
	}
}

func TestParseGenerateFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--bogus"}},
		{"positional argument", []string{"Tokyo"}},
		{"quiet and verbose together", []string{"-d", "x", "-q", "-v"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parseGenerateFlags(tt.args)
			if !errors.Is(err, ErrUsage) {
				t.Errorf("error = %v, want ErrUsage", err)
			}
		})
	}
}

func TestParseGenerateFlags_Help(t *testing.T) {
	t.Parallel()

	_, err := parseGenerateFlags([]string{"--help"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("error = %v, want flag.ErrHelp", err)
	}
}
