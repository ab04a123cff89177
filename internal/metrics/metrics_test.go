package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveGeneration(t *testing.T) {
	before := testutil.ToFloat64(GenerationRequests.WithLabelValues("mock", "success"))
	ObserveGeneration("mock", "success", 10*time.Millisecond)
	after := testutil.ToFloat64(GenerationRequests.WithLabelValues("mock", "success"))
	if after != before+1 {
		t.Fatalf("counter = %v, want %v", after, before+1)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	IncEndpointResponse("200")
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "journalguru_endpoint_responses_total") {
		t.Fatal("endpoint counter missing from exposition")
	}
}
