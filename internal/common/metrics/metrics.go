// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TagRequestsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tagger_requests_completed_total",
			Help: "Total number of tag requests answered, by provider",
		},
		[]string{"provider"},
	)

	TagRequestsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tagger_requests_failed_total",
			Help: "Total number of tag requests that ended in an error",
		},
		[]string{"provider", "error_code"},
	)

	TagRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "tagger_request_duration_seconds",
			Help: "Duration of engine tagging calls in seconds",
		},
		[]string{"provider"},
	)

	EngineFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tagger_engine_fallbacks_total",
			Help: "Number of requests that fell through from the primary to the secondary engine",
		},
	)

	EngineAvailable = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tagger_engine_available",
			Help: "Whether an engine loaded successfully at startup (1) or not (0)",
		},
		[]string{"provider"},
	)

	UnknownPOSTags = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tagger_unknown_pos_tags_total",
			Help: "Tokens whose POS tag is outside the Universal Dependencies tagset",
		},
		[]string{"provider"},
	)
)
