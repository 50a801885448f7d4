// Package llm implements the generation client against the OpenAI
// chat-completions API.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"github.com/heshanf/agridataset-backend/internal/config"
	"github.com/heshanf/agridataset-backend/internal/domain"
)

// systemPrompt anchors the model role for every generation request.
const systemPrompt = "You are an expert Sri Lankan agricultural linguist specializing in Sinhala-English translation. Respond ONLY with valid JSON, no explanations."

// Client calls the OpenAI chat-completions API to synthesize dataset batches.
// A circuit breaker fails fast while the provider is down; there is no retry —
// the first failure is terminal for the request.
type Client struct {
	api     *openai.Client
	cfg     config.OpenAIConfig
	breaker *gobreaker.CircuitBreaker
}

// New creates a generation client from configuration. A missing API key is
// not an error here; it surfaces as ErrUpstreamUnavailable on the first call.
func New(cfg config.OpenAIConfig) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		api: openai.NewClientWithConfig(apiCfg),
		cfg: cfg,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openai",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// Generate sends the prompt and returns the raw completion text.
// Errors map onto the domain taxonomy: ErrUpstreamUnavailable (missing or
// rejected credential, open breaker), ErrRateLimited (provider throttling),
// ErrUpstream (anything else provider-side).
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", fmt.Errorf("openai api key not configured: %w", domain.ErrUpstreamUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxCompletionTokens: c.cfg.MaxCompletionTokens,
		Temperature:         c.cfg.Temperature,
	}
	if c.cfg.JSONMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	out, err := c.breaker.Execute(func() (any, error) {
		return c.api.CreateChatCompletion(ctx, req)
	})
	if err != nil {
		return "", mapUpstreamError(err)
	}

	resp := out.(openai.ChatCompletionResponse)
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned: %w", domain.ErrUpstream)
	}

	return resp.Choices[0].Message.Content, nil
}

// mapUpstreamError converts transport/provider errors into domain sentinels.
func mapUpstreamError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("circuit breaker open: %w", domain.ErrUpstreamUnavailable)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("openai credential rejected: %w", domain.ErrUpstreamUnavailable)
		case http.StatusTooManyRequests:
			return fmt.Errorf("openai throttled: %w", domain.ErrRateLimited)
		}
		return fmt.Errorf("openai: %s: %w", apiErr.Message, domain.ErrUpstream)
	}

	return fmt.Errorf("openai: %v: %w", err, domain.ErrUpstream)
}
