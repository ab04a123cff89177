package handlers

import (
	"net/http"

	"journalguru/internal/providers/prompt"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	mode := "live"
	if prompt.IsMock(a.Generator) {
		mode = "mock"
	}
	a.json(w, http.StatusOK, map[string]string{"status": "ok", "mode": mode})
}
