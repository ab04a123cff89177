package prompt

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"journalguru/internal/domain"
	"journalguru/internal/instruction"
)

const (
	mockProviderName      = "mock"
	anthropicProviderName = "anthropic"
	geminiProviderName    = "gemini"
	openAIProviderName    = "openai"
)

// DefaultMaxTokens bounds the length of generated replies.
const DefaultMaxTokens = 2048

// maxErrorBody caps how much of a failed response is read for diagnostics.
const maxErrorBody = 4 << 10

func buildInstruction(req domain.PromptRequest) string {
	return instruction.Build(req, instruction.Options{OutputDirective: true})
}

// statusError converts a non-2xx provider response into an error that keeps
// the provider's own message when one is present.
func statusError(provider string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := providerErrorMessage(body)
	if msg == "" {
		return fmt.Errorf("%w: %s status %d", domain.ErrProviderFailure, provider, resp.StatusCode)
	}
	return fmt.Errorf("%w: %s status %d: %s", domain.ErrProviderFailure, provider, resp.StatusCode, msg)
}

// providerErrorMessage understands the {"error":{"message":...}} envelope that
// Anthropic, OpenAI and Gemini share, and falls back to the raw text.
func providerErrorMessage(body []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return strings.TrimSpace(envelope.Error.Message)
	}
	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}

func coalesce(values ...string) string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			return v
		}
	}
	return ""
}
