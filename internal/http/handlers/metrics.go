package handlers

import (
	"net/http"

	"journalguru/internal/metrics"
)

func (a *App) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics.Handler().ServeHTTP(w, r)
}
