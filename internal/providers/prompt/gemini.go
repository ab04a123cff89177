package prompt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"journalguru/internal/domain"
)

type GeminiOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	MaxTokens  int
	HTTPClient *http.Client
}

type GeminiGenerator struct {
	apiKey    string
	model     string
	baseURL   string
	maxTokens int
	client    *http.Client
}

const (
	geminiDefaultTimeout = 60 * time.Second
	defaultGeminiModel   = "gemini-1.5-flash"
)

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiGenerationConfig struct {
	CandidateCount  int `json:"candidateCount,omitempty"`
	MaxOutputTokens int `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func NewGeminiGenerator(opts GeminiOptions) (*GeminiGenerator, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: geminiDefaultTimeout}
	}
	return &GeminiGenerator{
		apiKey:    strings.TrimSpace(opts.APIKey),
		model:     coalesce(opts.Model, defaultGeminiModel),
		baseURL:   baseURL,
		maxTokens: maxTokens,
		client:    client,
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, req domain.PromptRequest) (*Result, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{{
				Text: buildInstruction(req),
			}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			CandidateCount:  1,
			MaxOutputTokens: g.maxTokens,
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, fmt.Errorf("encode gemini request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), &buf)
	if err != nil {
		return nil, fmt.Errorf("build gemini request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)
	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: gemini request: %w", domain.ErrProviderFailure, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return nil, statusError(geminiProviderName, resp)
	}
	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}
	text, ok := g.extractText(out)
	if !ok {
		return nil, fmt.Errorf("%w: gemini returned no candidates", domain.ErrEmptyGeneration)
	}
	return &Result{Text: text, Provider: geminiProviderName, Model: g.model}, nil
}

// Model reports the configured model identifier.
func (g *GeminiGenerator) Model() string {
	return g.model
}

func (g *GeminiGenerator) endpoint() string {
	model := url.PathEscape(g.model)
	return fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, model)
}

func (g *GeminiGenerator) extractText(resp geminiResponse) (string, bool) {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", false
	}
	return resp.Candidates[0].Content.Parts[0].Text, true
}

var _ Generator = (*GeminiGenerator)(nil)
