package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Catalog client metrics
var (
	// APIRequestsTotal counts catalog API requests by endpoint and outcome.
	// Outcome is "ok" or the error kind (unauthorized, not_found,
	// request_failed, network, invalid_url).
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_api_requests_total",
			Help: "Total number of catalog API requests.",
		},
		[]string{"endpoint", "outcome"},
	)

	// ImageLoadsTotal counts image loads by where the bytes came from:
	// "cache", "network", or "placeholder".
	ImageLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_loads_total",
			Help: "Total number of image loads by source.",
		},
		[]string{"source"},
	)
)

func init() {
	prometheus.MustRegister(
		APIRequestsTotal,
		ImageLoadsTotal,
	)
}
