package prompt

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"journalguru/internal/domain"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func sampleRequest() domain.PromptRequest {
	return domain.PromptRequest{Age: "26-35", Situation: "new job", Lens: "stoic", Style: "reflective", Count: "3-5"}
}

func TestMockGeneratorWaitsAndRenders(t *testing.T) {
	gen := NewMockGenerator(30 * time.Millisecond)
	start := time.Now()
	res, err := gen.Generate(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Fatalf("mock returned after %s, want at least 30ms", elapsed)
	}
	if res.Provider != mockProviderName {
		t.Fatalf("Provider = %q, want %q", res.Provider, mockProviderName)
	}
	if !strings.Contains(res.Text, "new job") {
		t.Fatalf("mock text missing situation: %s", res.Text)
	}
}

func TestMockGeneratorHonoursCancellation(t *testing.T) {
	gen := NewMockGenerator(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := gen.Generate(ctx, sampleRequest()); !errors.Is(err, context.Canceled) {
		t.Fatalf("Generate error = %v, want context.Canceled", err)
	}
}

func TestNewSelectsMockWithoutKey(t *testing.T) {
	for _, provider := range []string{"", "anthropic", "OpenAI", "gemini"} {
		gen, err := New(Options{Provider: provider, MockDelay: time.Millisecond, Logger: zerolog.Nop()})
		if err != nil {
			t.Fatalf("New(%q) returned error: %v", provider, err)
		}
		if !IsMock(gen) {
			t.Fatalf("New(%q) should fall back to the mock generator", provider)
		}
	}
}

func TestNewSelectsLiveProvider(t *testing.T) {
	gen, err := New(Options{
		Provider:  "anthropic",
		Anthropic: AnthropicOptions{APIKey: "sk-test"},
		Logger:    zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if IsMock(gen) {
		t.Fatal("expected live generator when a key is configured")
	}
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	if _, err := New(Options{Provider: "cohere", Logger: zerolog.Nop()}); !errors.Is(err, domain.ErrUnknownProvider) {
		t.Fatalf("New error = %v, want ErrUnknownProvider", err)
	}
}

func TestProviderErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "envelope", body: `{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`, want: "invalid x-api-key"},
		{name: "plain", body: "upstream unavailable", want: "upstream unavailable"},
		{name: "empty", body: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := providerErrorMessage([]byte(tc.body)); got != tc.want {
				t.Fatalf("providerErrorMessage = %q, want %q", got, tc.want)
			}
		})
	}
}
