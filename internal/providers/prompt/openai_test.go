package prompt

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestOpenAIGeneratorFirstChoice(t *testing.T) {
	var captured openAIChatRequest
	var auth, org string
	gen, err := NewOpenAIGenerator(OpenAIOptions{
		APIKey:       "dummy",
		Organization: "org-1",
		MaxTokens:    512,
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			auth = r.Header.Get("Authorization")
			org = r.Header.Get("OpenAI-Organization")
			_ = json.NewDecoder(r.Body).Decode(&captured)
			return jsonResponse(http.StatusOK, `{"choices":[{"message":{"content":"first"}},{"message":{"content":"second"}}]}`), nil
		})},
	})
	if err != nil {
		t.Fatalf("NewOpenAIGenerator returned error: %v", err)
	}
	res, err := gen.Generate(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if res.Text != "first" || res.Provider != openAIProviderName {
		t.Fatalf("result = %#v", res)
	}
	if auth != "Bearer dummy" || org != "org-1" {
		t.Fatalf("headers auth=%q org=%q", auth, org)
	}
	if captured.MaxTokens != 512 || captured.Model != defaultOpenAIModel {
		t.Fatalf("payload = %#v", captured)
	}
}

func TestNormalizeOpenAIModel(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		input  string
		model  string
		reason string
	}{
		{name: "exact_default", input: "gpt-4o-mini", model: "gpt-4o-mini", reason: ""},
		{name: "exact_free", input: "gpt-3.5-turbo", model: "gpt-3.5-turbo", reason: ""},
		{name: "alias_short", input: "gpt-3.5", model: "gpt-3.5-turbo", reason: "alias"},
		{name: "alias_spaces", input: "GPT4O mini", model: "gpt-4o-mini", reason: "alias"},
		{name: "unsupported", input: "gpt-4.1", model: "gpt-4o-mini", reason: "defaulted"},
		{name: "empty", input: "", model: "gpt-4o-mini", reason: ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gotModel, gotReason := normalizeOpenAIModel(tc.input)
			if gotModel != tc.model {
				t.Fatalf("model = %q, want %q", gotModel, tc.model)
			}
			if gotReason != tc.reason {
				t.Fatalf("reason = %q, want %q", gotReason, tc.reason)
			}
		})
	}
}

func TestNewOpenAIGeneratorWarnsOnUnsupportedModel(t *testing.T) {
	t.Parallel()
	var capturedReason, capturedDetail string
	gen, err := NewOpenAIGenerator(OpenAIOptions{
		APIKey: "dummy",
		Model:  "gpt-4.1",
		OnWarning: func(reason, detail string) {
			capturedReason = reason
			capturedDetail = detail
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen == nil {
		t.Fatal("generator is nil")
	}
	if capturedReason != "model_defaulted" {
		t.Fatalf("warning reason = %q, want %q", capturedReason, "model_defaulted")
	}
	if capturedDetail == "" {
		t.Fatal("expected warning detail to be set")
	}
}
