package travelplan

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Default generation settings.
const defaultMaxCompletionTokens = 2200

// defaultModels is the ordered fallback list: each model is tried in turn
// until one returns non-empty text.
var defaultModels = []string{"gpt-5", "gpt-5-mini", "gpt-4.1"}

// PlanGenerator abstracts the text-generation call: prompts in, Markdown
// plan text out, or failure. The service never invokes the renderer when
// generation fails. Implementations other than the OpenAI one exist mainly
// for tests.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, system, user string) (text, model string, err error)
}

// chatClient is the subset of the OpenAI client the generator needs.
// Narrowing the dependency keeps the fallback loop testable offline.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Compile-time interface implementation checks.
var (
	_ chatClient    = (*openai.Client)(nil)
	_ PlanGenerator = (*openAIGenerator)(nil)
)

// openAIGenerator calls the OpenAI chat-completion API with model fallbacks.
type openAIGenerator struct {
	client    chatClient
	models    []string
	maxTokens int
}

// newOpenAIGenerator creates a generator for the given API key.
// The client is scoped to this generator; there is no process-global state.
func newOpenAIGenerator(apiKey string, models []string, maxTokens int) *openAIGenerator {
	if len(models) == 0 {
		models = defaultModels
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxCompletionTokens
	}
	return &openAIGenerator{
		client:    openai.NewClient(apiKey),
		models:    models,
		maxTokens: maxTokens,
	}
}

// GeneratePlan tries each configured model in order and returns the first
// non-empty completion along with the model that produced it. An empty
// completion counts as a failure and falls through to the next model.
// When every model fails, the last error is wrapped in ErrAllModelsFailed.
func (g *openAIGenerator) GeneratePlan(ctx context.Context, system, user string) (string, string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
		{Role: openai.ChatMessageRoleUser, Content: user},
	}

	var lastErr error
	for _, model := range g.models {
		resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:               model,
			Messages:            messages,
			MaxCompletionTokens: g.maxTokens,
		})
		if err != nil {
			lastErr = fmt.Errorf("model %q: %w", model, err)
			continue
		}

		if text := extractCompletionText(resp); text != "" {
			return text, model, nil
		}
		lastErr = fmt.Errorf("model %q returned empty content", model)
	}

	return "", "", fmt.Errorf("%w: %v", ErrAllModelsFailed, lastErr)
}

// extractCompletionText pulls the assistant text out of a completion
// response, tolerating minor response-shape differences: plain content
// first, then multi-part content joined by newlines. Returns "" when no
// usable text is present.
func extractCompletionText(resp openai.ChatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	msg := resp.Choices[0].Message

	if text := strings.TrimSpace(msg.Content); text != "" {
		return text
	}

	var parts []string
	for _, p := range msg.MultiContent {
		if p.Type == openai.ChatMessagePartTypeText && p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
