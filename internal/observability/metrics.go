package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the web client backend.
type Metrics struct {
	// Upstream notification API.
	APIRequests        *prometheus.CounterVec   // labels: method={GET,PUT,HEAD}, outcome={success,status_error,transport_error}
	APIRequestDuration *prometheus.HistogramVec // labels: method

	// Map navigation.
	Navigations *prometheus.CounterVec // labels: kind={directions,search,none}

	// Page rendering.
	PageRenders *prometheus.CounterVec // labels: mode={animated,static}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.APIRequests,
		m.APIRequestDuration,
		m.Navigations,
		m.PageRenders,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storm_web",
			Name:      "api_requests_total",
			Help:      "Notification API requests by method and outcome.",
		}, []string{"method", "outcome"}),
		APIRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "storm_web",
			Name:      "api_request_duration_seconds",
			Help:      "Notification API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method"}),
		Navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storm_web",
			Name:      "navigations_total",
			Help:      "Map navigations by resolved target kind.",
		}, []string{"kind"}),
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storm_web",
			Name:      "page_renders_total",
			Help:      "Pages rendered through the page transition wrapper, by mode.",
		}, []string{"mode"}),
	}
}
