package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"journalguru/internal/domain"
	"journalguru/internal/http/handlers"
	httpapi "journalguru/internal/http/httpapi"
	"journalguru/internal/infra"
	"journalguru/internal/providers/prompt"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	providerClient := &http.Client{Timeout: cfg.ProviderTimeout}
	gen, err := prompt.New(prompt.Options{
		Provider: cfg.PromptProvider,
		Anthropic: prompt.AnthropicOptions{
			APIKey:     cfg.AnthropicAPIKey,
			Model:      cfg.AnthropicModel,
			BaseURL:    cfg.AnthropicBaseURL,
			MaxTokens:  cfg.MaxTokens,
			HTTPClient: providerClient,
		},
		OpenAI: prompt.OpenAIOptions{
			APIKey:       cfg.OpenAIAPIKey,
			Model:        cfg.OpenAIModel,
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrg,
			MaxTokens:    cfg.MaxTokens,
			HTTPClient:   providerClient,
			OnWarning: func(reason, detail string) {
				logger.Warn().Str("reason", reason).Str("detail", detail).Msg("openai model adjusted")
			},
		},
		Gemini: prompt.GeminiOptions{
			APIKey:     cfg.GeminiAPIKey,
			Model:      cfg.GeminiModel,
			BaseURL:    cfg.GeminiBaseURL,
			MaxTokens:  cfg.MaxTokens,
			HTTPClient: providerClient,
		},
		MockDelay: cfg.MockDelay,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure prompt generator")
	}

	app := handlers.NewApp(gen, domain.CanonicalScheme, logger)
	router := httpapi.NewRouter(app, httpapi.Options{Logger: logger, AllowedOrigins: cfg.AllowedOrigins})
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
