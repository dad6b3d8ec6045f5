package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the service.
type Metrics struct {
	// Upstream call metrics.
	UpstreamRequests *prometheus.CounterVec   // labels: upstream={agmarknet,openweather,nominatim}, outcome={success,error,empty}
	UpstreamDuration *prometheus.HistogramVec // labels: upstream

	// Fallback substitution metrics.
	FallbackServed *prometheus.CounterVec // labels: reason={error,empty,breaker_open}

	// Geocoding cache metrics.
	GeocodeCache *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agri_data",
			Name:      "upstream_requests_total",
			Help:      "Upstream API requests by upstream and outcome.",
		}, []string{"upstream", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "agri_data",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"upstream"}),
		FallbackServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agri_data",
			Name:      "fallback_served_total",
			Help:      "Price responses served from the sample set, by reason.",
		}, []string{"reason"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agri_data",
			Name:      "geocode_cache_total",
			Help:      "Forward geocode cache lookups by result.",
		}, []string{"result"}),
	}

	prometheus.MustRegister(
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.FallbackServed,
		m.GeocodeCache,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "agri_data", Name: "upstream_requests_total"}, []string{"upstream", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "agri_data", Name: "upstream_request_duration_seconds"}, []string{"upstream"}),
		FallbackServed:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "agri_data", Name: "fallback_served_total"}, []string{"reason"}),
		GeocodeCache:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "agri_data", Name: "geocode_cache_total"}, []string{"result"}),
	}
}
