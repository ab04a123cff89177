package prompt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"journalguru/internal/domain"
)

type AnthropicOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	Version    string
	MaxTokens  int
	HTTPClient *http.Client
}

type AnthropicGenerator struct {
	apiKey    string
	model     string
	baseURL   string
	version   string
	maxTokens int
	client    *http.Client
}

const (
	anthropicDefaultTimeout = 60 * time.Second
	defaultAnthropicModel   = "claude-sonnet-4-20250514"
	defaultAnthropicVersion = "2023-06-01"
)

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func NewAnthropicGenerator(opts AnthropicOptions) (*AnthropicGenerator, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("anthropic api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.anthropic.com/v1"
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: anthropicDefaultTimeout}
	}
	return &AnthropicGenerator{
		apiKey:    strings.TrimSpace(opts.APIKey),
		model:     coalesce(opts.Model, defaultAnthropicModel),
		baseURL:   baseURL,
		version:   coalesce(opts.Version, defaultAnthropicVersion),
		maxTokens: maxTokens,
		client:    client,
	}, nil
}

func (a *AnthropicGenerator) Generate(ctx context.Context, req domain.PromptRequest) (*Result, error) {
	payload := anthropicRequest{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: buildInstruction(req)},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, fmt.Errorf("encode anthropic request: %w", err)
	}
	endpoint := fmt.Sprintf("%s/messages", a.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("build anthropic request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", a.apiKey)
	httpReq.Header.Set("anthropic-version", a.version)
	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: anthropic request: %w", domain.ErrProviderFailure, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return nil, statusError(anthropicProviderName, resp)
	}
	var out anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode anthropic response: %w", err)
	}
	for _, block := range out.Content {
		if block.Type == "text" || block.Type == "" {
			return &Result{Text: block.Text, Provider: anthropicProviderName, Model: coalesce(out.Model, a.model)}, nil
		}
	}
	return nil, fmt.Errorf("%w: anthropic returned no text content", domain.ErrEmptyGeneration)
}

// Model reports the configured model identifier.
func (a *AnthropicGenerator) Model() string {
	return a.model
}

var _ Generator = (*AnthropicGenerator)(nil)
