package handlers

import (
	"net/http"
	"strconv"

	"journalguru/internal/domain"
	"journalguru/internal/domain/jsoncfg"
	"journalguru/internal/metrics"
)

const (
	msgMethodNotAllowed  = "Method not allowed"
	msgMissingFields     = "Missing required fields"
	msgGenerationFailure = "Failed to generate prompts"
)

type generatePromptsResponse struct {
	Prompts string `json:"prompts"`
}

// GeneratePrompts validates a preference payload and answers with the text
// produced by the configured generator.
func (a *App) GeneratePrompts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		a.respondError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed, "")
		return
	}
	req, err := jsoncfg.DecodePromptRequest(r.Body, a.Scheme)
	if err != nil {
		a.logger(r).Error().Err(err).Msg("failed to read generation payload")
		a.respondError(w, http.StatusInternalServerError, msgGenerationFailure, err.Error())
		return
	}
	if check := domain.Validate(req, domain.AllFieldsRequired); !check.OK {
		a.logger(r).Debug().Strs("missing", check.MissingNames()).Msg("rejected incomplete generation payload")
		a.respondError(w, http.StatusBadRequest, msgMissingFields, "")
		return
	}
	res, err := a.Generator.Generate(r.Context(), req)
	if err != nil {
		a.respondError(w, http.StatusInternalServerError, msgGenerationFailure, err.Error())
		return
	}
	metrics.IncEndpointResponse(strconv.Itoa(http.StatusOK))
	a.json(w, http.StatusOK, generatePromptsResponse{Prompts: res.Text})
}

func (a *App) respondError(w http.ResponseWriter, code int, message, details string) {
	metrics.IncEndpointResponse(strconv.Itoa(code))
	a.error(w, code, message, details)
}
