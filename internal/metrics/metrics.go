package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts API requests by method, chi route pattern and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency per route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// PendleSyncTotal counts Pendle market sync runs per chain
	PendleSyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pendle_sync_total",
			Help: "Total number of Pendle market sync runs",
		},
		[]string{"chain_id", "status"},
	)

	// PendleMarketsSynced tracks how many markets the last successful sync stored
	PendleMarketsSynced = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pendle_markets_synced",
			Help: "Number of Pendle markets stored by the last sync",
		},
		[]string{"chain_id"},
	)
)
