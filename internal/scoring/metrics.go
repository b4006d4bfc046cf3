package scoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quizia",
		Subsystem: "scoring",
		Name:      "submissions_total",
		Help:      "Quiz submissions accepted, labeled by user profile.",
	}, []string{"profile"})

	submissionErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "quizia",
		Subsystem: "scoring",
		Name:      "submission_errors_total",
		Help:      "Quiz submissions that failed before a result was persisted.",
	})

	gradeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "quizia",
		Subsystem: "scoring",
		Name:      "submit_duration_seconds",
		Help:      "End-to-end duration of the load-grade-persist sequence.",
		Buckets:   prometheus.DefBuckets,
	})
)
