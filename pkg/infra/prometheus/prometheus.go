package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds; the engine is CPU-bound so the
	// range is much tighter than a proxy's.
	latencyBuckets = []float64{
		0.1, 0.25, 0.5,
		1, 2.5, 5,
		10, 25, 50,
		100, 250, 500,
	}

	DetectionsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "contentguard_detections_total",
			Help: "Total number of attack-signature detections by severity",
		},
		[]string{"severity"},
	)

	SanitizationsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "contentguard_sanitizations_total",
			Help: "Total number of sanitization operations by mode",
		},
		[]string{"mode"},
	)

	RejectedURLsTotal = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "contentguard_rejected_urls_total",
			Help: "Total number of URLs rejected to the neutral placeholder",
		},
	)

	FileValidationsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "contentguard_file_validations_total",
			Help: "Total number of upload validations by result",
		},
		[]string{"result"},
	)

	EventEvictionsTotal = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "contentguard_event_evictions_total",
			Help: "Total number of security events evicted from the monitor ring",
		},
	)

	RequestsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "contentguard_requests_total",
			Help: "Total number of requests processed",
		},
		[]string{"method", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contentguard_latency_ms",
			Help:    "Request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"operation"},
	)
)

type MetricsConfig struct {
	EnableLatency bool // Per-operation latency histograms
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableLatency: true,
	}
}

var Config MetricsConfig

func Initialize(cfg MetricsConfig) {
	Config = cfg
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}

// Registry exposes the private registry for the metrics endpoint.
func Registry() *prometheus.Registry {
	return registry
}
