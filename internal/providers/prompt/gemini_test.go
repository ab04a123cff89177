package prompt

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"journalguru/internal/domain"
)

func TestGeminiGeneratorFirstPart(t *testing.T) {
	var captured geminiRequest
	var endpoint, key string
	gen, err := NewGeminiGenerator(GeminiOptions{
		APIKey:  "dummy",
		BaseURL: "https://gemini.test/v1beta",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			endpoint = r.URL.String()
			key = r.Header.Get("x-goog-api-key")
			_ = json.NewDecoder(r.Body).Decode(&captured)
			return jsonResponse(http.StatusOK, `{"candidates":[{"content":{"role":"model","parts":[{"text":"prompt one"},{"text":"tail"}]}}]}`), nil
		})},
	})
	if err != nil {
		t.Fatalf("NewGeminiGenerator returned error: %v", err)
	}
	res, err := gen.Generate(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if res.Text != "prompt one" {
		t.Fatalf("Text = %q", res.Text)
	}
	if endpoint != "https://gemini.test/v1beta/models/gemini-1.5-flash:generateContent" || key != "dummy" {
		t.Fatalf("endpoint=%q key=%q", endpoint, key)
	}
	if captured.GenerationConfig == nil || captured.GenerationConfig.MaxOutputTokens != DefaultMaxTokens {
		t.Fatalf("generation config = %#v", captured.GenerationConfig)
	}
}

func TestGeminiGeneratorNoCandidates(t *testing.T) {
	gen, _ := NewGeminiGenerator(GeminiOptions{
		APIKey: "dummy",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"candidates":[]}`), nil
		})},
	})
	if _, err := gen.Generate(context.Background(), sampleRequest()); !errors.Is(err, domain.ErrEmptyGeneration) {
		t.Fatalf("error = %v, want ErrEmptyGeneration", err)
	}
}
