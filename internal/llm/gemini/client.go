package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"resume-assistant/internal/llm"
	"resume-assistant/internal/shared/telemetry"
)

// DefaultModel is used when Config.Model is empty.
const DefaultModel = "gemini-1.5-flash"

var (
	// ErrMissingAPIKey is returned by NewClient when no API key is supplied.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")
	// ErrEmptyResponse is returned when the model answers with no text.
	ErrEmptyResponse = errors.New("gemini response empty content")
)

// Config configures the Gemini client.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// BaseURL overrides the Gemini API endpoint.
	BaseURL    string
	HTTPClient *http.Client
}

// Client implements llm.Generator using the Gemini API. It is safe for
// concurrent use and meant to be built once per process.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewClient validates cfg and constructs a Gemini client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: base}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{
		client:  client,
		model:   model,
		timeout: cfg.Timeout,
	}, nil
}

// Model returns the model identifier requests are sent to.
func (c *Client) Model() string {
	return c.model
}

// Generate sends prompt as a single user turn and returns the response text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	fields := map[string]any{
		"model":        c.model,
		"prompt_chars": len(prompt),
		"duration_ms":  float64(time.Since(start).Microseconds()) / 1000.0,
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("gemini request timeout: %w", err)
		}
		fields["err"] = err
		telemetry.Error("llm.generate", fields)
		return "", err
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		fields["err"] = ErrEmptyResponse
		telemetry.Error("llm.generate", fields)
		return "", ErrEmptyResponse
	}

	if usage := resp.UsageMetadata; usage != nil {
		fields["prompt_tokens"] = usage.PromptTokenCount
		fields["completion_tokens"] = usage.CandidatesTokenCount
		fields["total_tokens"] = usage.TotalTokenCount
	}
	telemetry.Info("llm.generate", fields)
	return text, nil
}

var _ llm.Generator = (*Client)(nil)
