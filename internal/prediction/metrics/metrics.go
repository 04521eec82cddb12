package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PredictionsTotal tracks predictions by outcome (success, fallback)
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_predictions_total",
			Help: "Total number of prediction requests by outcome",
		},
		[]string{"outcome"},
	)

	// PredictionErrorsTotal tracks failed calls by error kind
	PredictionErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_prediction_errors_total",
			Help: "Total number of prediction call failures by error kind",
		},
		[]string{"kind"},
	)

	// FallbacksTotal tracks degraded-mode results by scenario
	FallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_fallbacks_total",
			Help: "Total number of fallback results served by scenario",
		},
		[]string{"scenario"},
	)

	// PredictionLatency tracks the end-to-end predict latency
	PredictionLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gateway_prediction_latency_seconds",
			Help:    "End-to-end prediction latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// BackendHealthy exposes the current health belief
	BackendHealthy = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gateway_backend_healthy",
			Help: "Whether the inference service is believed reachable (1/0)",
		},
	)

	// CacheHitsTotal tracks prediction cache hits
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gateway_cache_hits_total",
			Help: "Total number of prediction cache hits",
		},
	)

	// CacheMissesTotal tracks prediction cache misses
	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gateway_cache_misses_total",
			Help: "Total number of prediction cache misses",
		},
	)
)
