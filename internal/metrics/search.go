package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sitesearch",
			Name:      "search_queries_total",
			Help:      "Total number of per-index search executions",
		},
		[]string{"index"},
	)

	SearchUpstreamErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sitesearch",
			Name:      "search_upstream_errors_total",
			Help:      "Upstream query failures swallowed during search fan-out",
		},
		[]string{"index", "field"},
	)

	SearchResultsReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sitesearch",
			Name:      "search_results_returned",
			Help:      "Result count per aggregated search response",
			Buckets:   []float64{0, 1, 2, 5, 10, 15, 20, 25},
		},
	)
)

// RegisterSearchMetrics registers search metrics explicitly (no init()).
func RegisterSearchMetrics() {
	prometheus.MustRegister(
		SearchQueriesTotal,
		SearchUpstreamErrorsTotal,
		SearchResultsReturned,
	)
}
