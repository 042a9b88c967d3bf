package travelplan

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// defaultTimeout bounds one generation call, including model fallbacks.
const defaultTimeout = 2 * time.Minute

// serviceConfig holds the resolved settings for a Service.
type serviceConfig struct {
	apiKey    string
	models    []string
	maxTokens int
	timeout   time.Duration
	sheet     StyleSheet
	geom      Geometry
}

// Service orchestrates the plan-generation and rendering pipeline.
// One Service may be shared across calls; it holds no per-call state.
type Service struct {
	cfg       serviceConfig
	generator PlanGenerator
	html      htmlConverter
	now       func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithAPIKey sets the OpenAI API key used by the default generator.
// The key is scoped to this Service, not to the process.
func WithAPIKey(key string) Option {
	return func(s *Service) { s.cfg.apiKey = key }
}

// WithModels overrides the ordered model-fallback list.
func WithModels(models ...string) Option {
	return func(s *Service) { s.cfg.models = models }
}

// WithMaxCompletionTokens caps the completion size per model call.
// Zero keeps the default.
func WithMaxCompletionTokens(n int) Option {
	return func(s *Service) { s.cfg.maxTokens = n }
}

// WithTimeout bounds each generation call. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.cfg.timeout = d
		}
	}
}

// WithGenerator injects a custom generator (e.g., a fake in tests).
// Takes precedence over WithAPIKey.
func WithGenerator(g PlanGenerator) Option {
	return func(s *Service) { s.generator = g }
}

// WithNow injects the clock used for the generation timestamp.
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithStyleSheet overrides the default print styles.
func WithStyleSheet(sheet StyleSheet) Option {
	return func(s *Service) { s.cfg.sheet = sheet }
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithAPIKey, WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout: defaultTimeout,
			sheet:   DefaultStyleSheet(),
			geom:    LetterGeometry(),
		},
		html: newGoldmarkConverter(),
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the OpenAI generator if none was injected (e.g., by tests).
	if s.generator == nil && s.cfg.apiKey != "" {
		s.generator = newOpenAIGenerator(s.cfg.apiKey, s.cfg.models, s.cfg.maxTokens)
	}

	return s
}

// GeneratePlan validates the request, prompts the model, and returns the
// plan text. Empty or unusable model output is reported here, before any
// rendering happens.
func (s *Service) GeneratePlan(ctx context.Context, req TripRequest) (*Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.generator == nil {
		return nil, ErrMissingAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	text, model, err := s.generator.GeneratePlan(ctx, systemPrompt, BuildUserPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("generating plan: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyPlan
	}

	return &Plan{Markdown: text, Model: model}, nil
}

// RenderPDF classifies the plan Markdown into layout blocks and renders the
// paginated document. The full document is buffered in memory: on error no
// partial artifact exists, and the Markdown the caller already holds stays
// valid.
func (s *Service) RenderPDF(markdown string) ([]byte, error) {
	blocks := BuildBlocks(markdown)
	return renderPDF(blocks, s.cfg.sheet, s.cfg.geom, s.now())
}

// RenderHTML converts the plan Markdown to a standalone HTML document for
// browser preview.
func (s *Service) RenderHTML(ctx context.Context, markdown string) (string, error) {
	return s.html.ToHTML(ctx, markdown)
}
