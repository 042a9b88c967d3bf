package travelplan

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// fakeGenerator returns scripted plan text without touching the network.
type fakeGenerator struct {
	text  string
	model string
	err   error

	gotSystem string
	gotUser   string
}

func (g *fakeGenerator) GeneratePlan(_ context.Context, system, user string) (string, string, error) {
	g.gotSystem = system
	g.gotUser = user
	return g.text, g.model, g.err
}

// Compile-time interface implementation check.
var _ PlanGenerator = (*fakeGenerator)(nil)

func validRequest() TripRequest {
	return TripRequest{Destination: "Tokyo, Japan", Days: 3}
}

func TestService_GeneratePlan(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{text: "## Trip Overview\nA plan.", model: "gpt-5"}
	svc := New(WithGenerator(gen))

	plan, err := svc.GeneratePlan(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("GeneratePlan() error: %v", err)
	}
	if plan.Model != "gpt-5" {
		t.Errorf("model = %q, want gpt-5", plan.Model)
	}
	if !strings.Contains(plan.Markdown, "Trip Overview") {
		t.Errorf("unexpected markdown %q", plan.Markdown)
	}
	if gen.gotSystem != systemPrompt {
		t.Error("generator did not receive the system prompt")
	}
	if !strings.Contains(gen.gotUser, "Tokyo, Japan") {
		t.Error("generator did not receive the trip destination")
	}
}

func TestService_GeneratePlan_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     TripRequest
		wantErr error
	}{
		{
			name:    "empty destination",
			req:     TripRequest{Days: 3},
			wantErr: ErrEmptyDestination,
		},
		{
			name:    "zero days",
			req:     TripRequest{Destination: "Lisbon"},
			wantErr: ErrInvalidDays,
		},
		{
			name:    "too many days",
			req:     TripRequest{Destination: "Lisbon", Days: 31},
			wantErr: ErrInvalidDays,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := New(WithGenerator(&fakeGenerator{text: "plan"}))
			_, err := svc.GeneratePlan(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestService_GeneratePlan_NoGenerator(t *testing.T) {
	t.Parallel()

	svc := New() // no API key, no injected generator

	_, err := svc.GeneratePlan(context.Background(), validRequest())
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("error = %v, want ErrMissingAPIKey", err)
	}
}

func TestService_GeneratePlan_EmptyText(t *testing.T) {
	t.Parallel()

	svc := New(WithGenerator(&fakeGenerator{text: "   \n "}))

	_, err := svc.GeneratePlan(context.Background(), validRequest())
	if !errors.Is(err, ErrEmptyPlan) {
		t.Errorf("error = %v, want ErrEmptyPlan", err)
	}
}

func TestService_GeneratePlan_GeneratorError(t *testing.T) {
	t.Parallel()

	genErr := errors.New("network down")
	svc := New(WithGenerator(&fakeGenerator{err: genErr}))

	_, err := svc.GeneratePlan(context.Background(), validRequest())
	if !errors.Is(err, genErr) {
		t.Errorf("error = %v, want wrapped %v", err, genErr)
	}
}

func TestService_RenderPDF(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	svc := New(WithNow(func() time.Time { return fixed }))

	pdfBytes, err := svc.RenderPDF("## Trip Overview\nSample text.\n\n### Day 1\n- Museum visit\n")
	if err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF-")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestService_RenderPDF_MissingStyle(t *testing.T) {
	t.Parallel()

	sheet := DefaultStyleSheet()
	delete(sheet, StyleKey{Kind: KindList})
	svc := New(WithStyleSheet(sheet))

	pdfBytes, err := svc.RenderPDF("- only a list\n")
	if !errors.Is(err, ErrMissingStyle) {
		t.Fatalf("error = %v, want ErrMissingStyle", err)
	}
	if pdfBytes != nil {
		t.Error("failed render must not return an artifact")
	}
}

func TestService_RenderHTML(t *testing.T) {
	t.Parallel()

	svc := New()

	html, err := svc.RenderHTML(context.Background(), "## Trip Overview\n\n- Museum visit\n")
	if err != nil {
		t.Fatalf("RenderHTML() error: %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "<h2", "Trip Overview", "<li>", "Museum visit"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q:\n%s", want, html)
		}
	}
}

func TestService_Options(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{text: "plan"}
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	svc := New(
		WithAPIKey("unused-because-generator-injected"),
		WithGenerator(gen),
		WithModels("model-a"),
		WithMaxCompletionTokens(512),
		WithTimeout(30*time.Second),
		WithNow(func() time.Time { return fixed }),
	)

	if svc.cfg.timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", svc.cfg.timeout)
	}
	if svc.cfg.maxTokens != 512 {
		t.Errorf("maxTokens = %d, want 512", svc.cfg.maxTokens)
	}
	if svc.generator != gen {
		t.Error("injected generator was replaced")
	}
	if !svc.now().Equal(fixed) {
		t.Error("injected clock not used")
	}
}

func TestService_TimeoutOptionIgnoresZero(t *testing.T) {
	t.Parallel()

	svc := New(WithTimeout(0))
	if svc.cfg.timeout != defaultTimeout {
		t.Errorf("timeout = %v, want default %v", svc.cfg.timeout, defaultTimeout)
	}
}
