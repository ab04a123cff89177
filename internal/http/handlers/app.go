package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"journalguru/internal/domain"
	"journalguru/internal/providers/prompt"
)

// App carries the dependencies shared by every handler. It holds no
// per-request state.
type App struct {
	Generator prompt.Generator
	Scheme    domain.FieldScheme
	Logger    zerolog.Logger
}

func NewApp(gen prompt.Generator, scheme domain.FieldScheme, logger zerolog.Logger) *App {
	if scheme == nil {
		scheme = domain.CanonicalScheme
	}
	return &App{Generator: gen, Scheme: scheme, Logger: logger}
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message, details string) {
	a.json(w, code, errorResponse{Error: message, Details: details})
}

// logger prefers the request-scoped logger installed by the access log
// middleware.
func (a *App) logger(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &a.Logger
}
