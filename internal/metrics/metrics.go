// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts handled HTTP requests by route and status class.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketmind_http_requests_total",
		Help: "Handled HTTP requests",
	}, []string{"route", "status"})

	// UpstreamDuration tracks latency of calls to the completion API.
	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "marketmind_upstream_duration_seconds",
		Help:    "Latency of completion API calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})

	// CacheLookups counts completion cache hits and misses.
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketmind_completion_cache_lookups_total",
		Help: "Completion cache lookups",
	}, []string{"result"})

	// GenerationsTotal counts persisted generations by kind.
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketmind_generations_total",
		Help: "Completed generations",
	}, []string{"kind"})
)
