package narrate

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/rajveda/jyotish/internal/model"
)

const personaPrompt = `You are a warm, grounded Vedic astrology narrator.
Rephrase the provided analysis in two or three sentences.

RULES:
1. Never change, add, or remove any number, lord name, sign, or score.
2. Never predict specific events; describe influences and themes only.
3. Always keep the guidance disclaimer intact when one is present.`

// OpenAIRenderer rephrases template output through a chat model. Every
// call renders the deterministic template first and sends it as the
// analysis; any generation failure returns that template text unchanged,
// so output never degrades below the deterministic floor.
type OpenAIRenderer struct {
	client   *openai.Client
	config   model.LLMConfig
	fallback *TemplateRenderer
	limiter  *rate.Limiter
}

// NewOpenAIRenderer creates a generative renderer.
func NewOpenAIRenderer(cfg model.LLMConfig) (*OpenAIRenderer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 20
	}

	return &OpenAIRenderer{
		client:   openai.NewClientWithConfig(clientConfig),
		config:   cfg,
		fallback: NewTemplateRenderer(),
		limiter:  rate.NewLimiter(rate.Limit(rpm/60.0), 1),
	}, nil
}

// Name returns the renderer name.
func (r *OpenAIRenderer) Name() string {
	return "openai"
}

// IsAvailable checks that the provider is configured and reachable.
func (r *OpenAIRenderer) IsAvailable(ctx context.Context) bool {
	_, err := r.client.ListModels(ctx)
	return err == nil
}

// generate rephrases the analysis text, returning it unchanged on any
// failure.
func (r *OpenAIRenderer) generate(ctx context.Context, analysis string) string {
	if err := r.limiter.Wait(ctx); err != nil {
		return analysis
	}

	modelName := r.config.Model
	if modelName == "" {
		modelName = openai.GPT4oMini
	}
	maxTokens := r.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 400
	}
	timeout := time.Duration(r.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := r.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: personaPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Analysis: " + analysis},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.2,
	})
	if err != nil || len(resp.Choices) == 0 {
		return analysis
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return analysis
	}
	return text
}

// ChartSummary narrates lagna, moon sign, and detected yogas.
func (r *OpenAIRenderer) ChartSummary(ctx context.Context, name, lagna, moon string, yogas []string) string {
	return r.generate(ctx, r.fallback.ChartSummary(ctx, name, lagna, moon, yogas))
}

// DashaNow narrates the running periods.
func (r *OpenAIRenderer) DashaNow(ctx context.Context, maha, antar, pratyantar string) string {
	return r.generate(ctx, r.fallback.DashaNow(ctx, maha, antar, pratyantar))
}

// Compatibility narrates an Ashta Kuta result.
func (r *OpenAIRenderer) Compatibility(ctx context.Context, result *model.CompatibilityResult) string {
	return r.generate(ctx, r.fallback.Compatibility(ctx, result))
}

// Transit narrates transit highlights.
func (r *OpenAIRenderer) Transit(ctx context.Context, highlights []string) string {
	return r.generate(ctx, r.fallback.Transit(ctx, highlights))
}
