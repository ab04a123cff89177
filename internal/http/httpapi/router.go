package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"journalguru/internal/http/handlers"
	"journalguru/internal/middleware"
)

// Options tunes the router.
type Options struct {
	Logger         zerolog.Logger
	AllowedOrigins []string
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(opts.Logger),
		chimw.Recoverer,
	)
	if len(opts.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(opts.AllowedOrigins))
	}

	r.Get("/healthz", app.Health)
	r.Get("/metrics", app.Metrics)
	r.Get("/openapi.json", app.OpenAPIJSON)
	r.Get("/docs", app.OpenAPIDocs)

	// Copy-paste form.
	r.Get("/", app.Index)
	r.Post("/", app.IndexSubmit)

	// Method checking happens in the handler so every verb gets the JSON 405.
	r.HandleFunc("/api/generate-prompts", app.GeneratePrompts)

	return r
}
