package prompt

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"journalguru/internal/domain"
	"journalguru/internal/metrics"
)

type observed struct {
	next     Generator
	provider string
	logger   zerolog.Logger
}

// Observe wraps g so every call is logged and counted under provider.
func Observe(g Generator, provider string, logger zerolog.Logger) Generator {
	return &observed{next: g, provider: provider, logger: logger}
}

func (o *observed) Generate(ctx context.Context, req domain.PromptRequest) (*Result, error) {
	logger := &o.logger
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		logger = l
	}
	start := time.Now()
	logger.Info().Str("provider", o.provider).Msg("generating journal prompts")
	res, err := o.next.Generate(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		metrics.ObserveGeneration(o.provider, "error", elapsed)
		logger.Error().Err(err).Str("provider", o.provider).Dur("elapsed", elapsed).Msg("prompt generation failed")
		return nil, err
	}
	metrics.ObserveGeneration(o.provider, "success", elapsed)
	logger.Info().Str("provider", o.provider).Dur("elapsed", elapsed).Int("chars", len(res.Text)).Msg("generated journal prompts")
	return res, nil
}
