package prompt

import (
	"context"
	"time"

	"journalguru/internal/domain"
	"journalguru/internal/instruction"
)

// Result is the text returned by a generator together with its origin.
type Result struct {
	Text     string `json:"text"`
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
}

// Generator turns a validated request into journal prompts.
type Generator interface {
	Generate(ctx context.Context, req domain.PromptRequest) (*Result, error)
}

// DefaultMockDelay mimics the latency of a hosted model.
const DefaultMockDelay = 1500 * time.Millisecond

// MockGenerator answers from a fixed template after a fixed delay. It is used
// when no credential is configured and never touches the network.
type MockGenerator struct {
	delay time.Duration
}

// NewMockGenerator returns a MockGenerator; a negative delay disables waiting.
func NewMockGenerator(delay time.Duration) *MockGenerator {
	if delay < 0 {
		delay = 0
	}
	return &MockGenerator{delay: delay}
}

func (m *MockGenerator) Generate(ctx context.Context, req domain.PromptRequest) (*Result, error) {
	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return &Result{Text: instruction.Mock(req), Provider: mockProviderName}, nil
}

// Delay reports the artificial latency.
func (m *MockGenerator) Delay() time.Duration {
	return m.delay
}

var _ Generator = (*MockGenerator)(nil)
