package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Generation
	GenerationRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journalguru_generation_requests_total",
			Help: "Number of prompt generations by provider and result",
		},
		[]string{"provider", "result"}, // result: success|error
	)
	GenerationDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "journalguru_generation_duration_seconds",
			Help:    "Duration of prompt generations",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8), // 0.25s..32s
		},
		[]string{"provider"},
	)

	// Endpoint
	EndpointResponses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journalguru_endpoint_responses_total",
			Help: "Responses of the generation endpoint by status code",
		},
		[]string{"status"},
	)

	// Form
	FormSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journalguru_form_submissions_total",
			Help: "Form submissions by result",
		},
		[]string{"result"}, // result: rendered|incomplete
	)
)

func init() {
	prometheus.MustRegister(
		GenerationRequests,
		GenerationDurationSeconds,
		EndpointResponses,
		FormSubmissions,
	)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Generation
func ObserveGeneration(provider, result string, d time.Duration) {
	GenerationRequests.WithLabelValues(provider, result).Inc()
	GenerationDurationSeconds.WithLabelValues(provider).Observe(d.Seconds())
}

// Endpoint
func IncEndpointResponse(status string) {
	EndpointResponses.WithLabelValues(status).Inc()
}

// Form
func IncFormSubmission(result string) {
	FormSubmissions.WithLabelValues(result).Inc()
}
