// Package metrics defines the Prometheus collectors exported by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis sources.
const (
	SourceLLM      = "llm"
	SourceCache    = "cache"
	SourceFallback = "fallback"
)

// Metrics holds every collector. Use New with a dedicated registry in tests.
type Metrics struct {
	Registry prometheus.Gatherer

	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	RateLimited     *prometheus.CounterVec
	Analyses        *prometheus.CounterVec
	LLMDuration     prometheus.Histogram
	CacheOperations *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathfinder_http_requests_total",
				Help: "Total number of HTTP requests handled",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pathfinder_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		RateLimited: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathfinder_rate_limited_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
			[]string{"endpoint"},
		),
		Analyses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathfinder_analyses_total",
				Help: "Total number of analyses by result source",
			},
			[]string{"source"},
		),
		LLMDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pathfinder_llm_duration_seconds",
				Help:    "Duration of LLM calls in seconds",
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30},
			},
		),
		CacheOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathfinder_cache_operations_total",
				Help: "Total number of cache operations by outcome",
			},
			[]string{"op", "result"},
		),
	}
}

// NewDefault registers the collectors on a fresh registry that also carries
// the Go runtime and process collectors.
func NewDefault() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return New(reg)
}
