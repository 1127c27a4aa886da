package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scentsearch",
			Name:      "searches_total",
			Help:      "Total number of search calls",
		},
		[]string{"outcome"},
	)

	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "scentsearch",
			Name:      "search_results",
			Help:      "Result count per search call",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
		[]string{"bucket"},
	)

	SuggestionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "scentsearch",
			Name:      "suggestions_total",
			Help:      "Total number of suggestion calls",
		},
	)

	CatalogLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scentsearch",
			Name:      "catalog_loads_total",
			Help:      "Catalog dataset loads by serving source",
		},
		[]string{"dataset", "source"},
	)
)

// RegisterSearchMetrics registers search metrics explicitly (no init()).
func RegisterSearchMetrics() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(SuggestionsTotal)
	prometheus.MustRegister(CatalogLoads)
}
