// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "layout_recommend_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"status"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "layout_recommend_duration_seconds",
			Help: "End-to-end duration of recommendation requests",
		},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "layout_cache_lookups_total",
			Help: "Cache lookups partitioned by hit/miss",
		},
		[]string{"result"},
	)

	ExtractorFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "layout_extractor_fallbacks_total",
			Help: "Times the deterministic extraction strategy served a request",
		},
		[]string{"reason"},
	)

	CandidatesScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "layout_candidates_scored_total",
			Help: "Total candidate templates scored",
		},
	)

	FeedbackRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "layout_feedback_recorded_total",
			Help: "Explicit feedback records accepted",
		},
	)
)
