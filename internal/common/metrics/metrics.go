// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	WorkerPanicsRecovered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_panics_recovered_total",
			Help: "Handler panics recovered by the job wrapper",
		},
		[]string{"task_type"},
	)

	// ScoreValue observes V^R, H^R, synergy and AI-R on their 0-100-ish scale.
	ScoreValue = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "airs_score_value",
			Help:    "Distribution of computed readiness score components",
			Buckets: prometheus.LinearBuckets(0, 10, 13),
		},
		[]string{"component"},
	)

	EducationUnrecognized = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "airs_education_unrecognized_total",
			Help: "Profiles whose education level did not match a known level",
		},
	)

	PathwaySimulations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airs_pathway_simulations_total",
			Help: "Learning pathway simulations run",
		},
		[]string{"pathway"},
	)

	ReferenceCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airs_reference_cache_lookups_total",
			Help: "Reference data cache lookups by kind and result",
		},
		[]string{"kind", "result"},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airs_notifications_sent_total",
			Help: "Score report notifications by channel and outcome",
		},
		[]string{"channel", "outcome"},
	)
)

// ObserveScore records the four headline numbers of one AI-R computation.
func ObserveScore(vr, hr, synergy, air float64) {
	ScoreValue.WithLabelValues("vr").Observe(vr)
	ScoreValue.WithLabelValues("hr").Observe(hr)
	ScoreValue.WithLabelValues("synergy").Observe(synergy)
	ScoreValue.WithLabelValues("air").Observe(air)
}
