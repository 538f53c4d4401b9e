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
			Name:    "worker_job_duration_seconds",
			Help:    "Duration of job processing in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"task_type"},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Calls to upstream data services by outcome",
		},
		[]string{"service", "outcome"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "Upstream response cache lookups by result",
		},
		[]string{"cache", "result"},
	)

	FilterStageReverts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fund_filter_stage_reverts_total",
			Help: "Soft filter stages discarded because they would have emptied the candidate set",
		},
		[]string{"stage"},
	)

	CostEstimateFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "viability_investment_fallbacks_total",
			Help: "Viability analyses that used the fixed-cost investment fallback",
		},
	)
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"

	CacheHit  = "hit"
	CacheMiss = "miss"
)
