package api

import "github.com/prometheus/client_golang/prometheus"

var (
	facetSelectionTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "facet_selection_total",
			Help: "Number of selection requests by outcome.",
		},
		[]string{"outcome"},
	)

	facetSelectionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "facet_selection_duration_seconds",
			Help:    "Time taken to select a variant.",
			Buckets: prometheus.DefBuckets,
		},
	)

	facetRegisteredComponents = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "facet_registered_components",
			Help: "Number of components currently registered.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		facetSelectionTotal,
		facetSelectionDuration,
		facetRegisteredComponents,
	)
}
