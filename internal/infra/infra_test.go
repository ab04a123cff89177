package infra

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestNewLoggerProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "production")
	logger.Debug().Msg("hidden")
	logger.Info().Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %s", out)
	}
	if !strings.Contains(out, `"service":"journalguru"`) || !strings.Contains(out, `"message":"visible"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestNewHTTPServerWriteTimeoutCoversProvider(t *testing.T) {
	cfg := &Config{Port: "9999", HTTPWriteTimeout: 10 * time.Second, ProviderTimeout: 60 * time.Second}
	srv := NewHTTPServer(cfg, nil)
	if srv.Addr() != ":9999" {
		t.Fatalf("Addr = %q", srv.Addr())
	}
	if srv.server.WriteTimeout != 65*time.Second {
		t.Fatalf("WriteTimeout = %s, want 65s", srv.server.WriteTimeout)
	}
}
