package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitForm(app *App, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.IndexSubmit(rec, req)
	return rec
}

func TestIndexRendersOptions(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestApp(&fakeGenerator{}).Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, expect := range []string{`name="age"`, `value="over 55"`, `value="rastafarianism"`, `value="3-5"`, "/api/generate-prompts"} {
		assert.Contains(t, body, expect)
	}
	assert.NotContains(t, body, "Your Custom LLM Prompt")
}

func TestIndexSubmitRendersInstruction(t *testing.T) {
	gen := &fakeGenerator{}
	rec := submitForm(newTestApp(gen), url.Values{
		"age":        {"26-35"},
		"issue":      {"new job"},
		"lens":       {"stoic"},
		"numPrompts": {"1"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Your Custom LLM Prompt")
	assert.Contains(t, body, "1 journal prompt for")
	assert.Contains(t, body, `<option value="stoic" selected>`)
	assert.EqualValues(t, 0, gen.calls.Load(), "the copy-paste form never calls the generator")
}

func TestIndexSubmitListsMissingFields(t *testing.T) {
	rec := submitForm(newTestApp(&fakeGenerator{}), url.Values{"age": {"26-35"}})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Please fill out all fields")
	assert.Contains(t, body, "situation, lens, count")
	assert.NotContains(t, body, "Your Custom LLM Prompt")
}
