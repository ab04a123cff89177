package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"journalguru/internal/domain"
)

// Options selects and configures the generator used by the endpoint.
type Options struct {
	// Provider is one of anthropic, openai or gemini; empty means anthropic.
	Provider  string
	Anthropic AnthropicOptions
	OpenAI    OpenAIOptions
	Gemini    GeminiOptions
	MockDelay time.Duration
	Logger    zerolog.Logger
}

// New builds the generator for opts.Provider. When that provider has no API
// key the mock generator is returned instead; a missing key is not an error.
func New(opts Options) (Generator, error) {
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	if provider == "" {
		provider = anthropicProviderName
	}
	var (
		gen   Generator
		model string
		err   error
	)
	switch provider {
	case anthropicProviderName:
		if strings.TrimSpace(opts.Anthropic.APIKey) == "" {
			break
		}
		var g *AnthropicGenerator
		if g, err = NewAnthropicGenerator(opts.Anthropic); err == nil {
			gen, model = g, g.Model()
		}
	case openAIProviderName:
		if strings.TrimSpace(opts.OpenAI.APIKey) == "" {
			break
		}
		var g *OpenAIGenerator
		if g, err = NewOpenAIGenerator(opts.OpenAI); err == nil {
			gen, model = g, g.Model()
		}
	case geminiProviderName:
		if strings.TrimSpace(opts.Gemini.APIKey) == "" {
			break
		}
		var g *GeminiGenerator
		if g, err = NewGeminiGenerator(opts.Gemini); err == nil {
			gen, model = g, g.Model()
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, opts.Provider)
	}
	if err != nil {
		return nil, err
	}
	if gen == nil {
		opts.Logger.Warn().Str("provider", provider).Dur("delay", opts.MockDelay).Msg("no api key configured, serving mock prompts")
		return Observe(NewMockGenerator(opts.MockDelay), mockProviderName, opts.Logger), nil
	}
	opts.Logger.Info().Str("provider", provider).Str("model", model).Msg("prompt generator ready")
	return Observe(gen, provider, opts.Logger), nil
}

// IsMock reports whether g serves canned prompts.
func IsMock(g Generator) bool {
	if o, ok := g.(*observed); ok {
		g = o.next
	}
	_, ok := g.(*MockGenerator)
	return ok
}
