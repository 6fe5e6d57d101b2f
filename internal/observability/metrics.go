package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the quoting service.
type Metrics struct {
	QuotesCreated   prometheus.Counter
	QuotesRejected  *prometheus.CounterVec // labels: reason={address,previous_policy}
	QuoteFailures   prometheus.Counter
	QuoteCollisions prometheus.Counter
	PoliciesIssued  prometheus.Counter

	// Postal code lookups.
	PostalLookups        *prometheus.CounterVec // labels: outcome={valid,invalid,error}
	PostalCache          *prometheus.CounterVec // labels: result={hit,miss}
	PostalLookupDuration prometheus.Histogram

	// HTTP layer.
	HTTPRequests *prometheus.CounterVec   // labels: method, route, status
	HTTPDuration *prometheus.HistogramVec // labels: method, route
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.QuotesCreated,
		m.QuotesRejected,
		m.QuoteFailures,
		m.QuoteCollisions,
		m.PoliciesIssued,
		m.PostalLookups,
		m.PostalCache,
		m.PostalLookupDuration,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, so tests
// can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		QuotesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "volcano",
			Name:      "quotes_created_total",
			Help:      "Quotes persisted.",
		}),
		QuotesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "volcano",
			Name:      "quotes_rejected_total",
			Help:      "Quote requests rejected because of client input, by reason.",
		}, []string{"reason"}),
		QuoteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "volcano",
			Name:      "quote_failures_total",
			Help:      "Quote requests that failed in storage.",
		}),
		QuoteCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "volcano",
			Name:      "quote_number_collisions_total",
			Help:      "Generated quote numbers that were already taken.",
		}),
		PoliciesIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "volcano",
			Name:      "policies_issued_total",
			Help:      "Policies created by checkout.",
		}),
		PostalLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "volcano",
			Name:      "postal_lookups_total",
			Help:      "Postal code lookups by outcome.",
		}, []string{"outcome"}),
		PostalCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "volcano",
			Name:      "postal_cache_total",
			Help:      "Postal code cache lookups by result.",
		}, []string{"result"}),
		PostalLookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "volcano",
			Name:      "postal_lookup_duration_seconds",
			Help:      "Postal API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "volcano",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "volcano",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}
