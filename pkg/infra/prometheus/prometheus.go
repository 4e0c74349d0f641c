package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds; the classifier is a remote LLM call,
	// so the tail stretches well past typical HTTP latencies.
	latencyBuckets = []float64{
		25, 50, 100,
		250, 500, 1000,
		2500, 5000, 10000,
		30000,
	}

	ModerationVerdictTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "kforum_moderation_verdicts_total",
			Help: "Moderation verdicts by provenance and decision",
		},
		[]string{"source", "decision"},
	)

	ClassifierLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kforum_classifier_latency_ms",
			Help:    "External classifier call latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"provider", "outcome"},
	)

	PostsCreatedTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "kforum_posts_created_total",
			Help: "Posts and comments created, by initial publication state",
		},
		[]string{"entity", "status"},
	)

	ReportsFiledTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "kforum_reports_filed_total",
			Help: "Reports filed, by result (accepted, duplicate, transitioned)",
		},
		[]string{"result"},
	)
)

// Handler serves the service registry; mounted on the metrics port.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
