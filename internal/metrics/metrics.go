// Package metrics defines the Prometheus collectors exported by the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes recorded by the intake pipeline.
const (
	OutcomeAccepted    = "accepted"
	OutcomeRateLimited = "rate_limited"
	OutcomeInvalid     = "invalid"
	OutcomeError       = "error"
)

type Metrics struct {
	SubmissionsTotal    *prometheus.CounterVec
	LogEntriesWritten   *prometheus.CounterVec
	LogWriteFailures    prometheus.Counter
	LogEntriesPurged    prometheus.Counter
	LogPurgeDuration    prometheus.Histogram
	RateLimitRejections *prometheus.CounterVec
}

// New registers every collector with reg. Tests pass a fresh
// prometheus.NewRegistry() to keep runs independent.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SubmissionsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tradedesk_submissions_total",
			Help: "Total number of application submissions by outcome",
		}, []string{"outcome"}),
		LogEntriesWritten: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tradedesk_log_entries_written_total",
			Help: "Total number of log entries persisted by level",
		}, []string{"level"}),
		LogWriteFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "tradedesk_log_write_failures_total",
			Help: "Total number of log entries that could not be persisted",
		}),
		LogEntriesPurged: f.NewCounter(prometheus.CounterOpts{
			Name: "tradedesk_log_entries_purged_total",
			Help: "Total number of expired log entries deleted",
		}),
		LogPurgeDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "tradedesk_log_purge_duration_seconds",
			Help:    "Duration of log retention purges",
			Buckets: prometheus.DefBuckets,
		}),
		RateLimitRejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tradedesk_ratelimit_rejections_total",
			Help: "Total number of requests rejected by the per-IP rate limiter",
		}, []string{"limiter"}),
	}
}

func (m *Metrics) IncrementSubmissions(outcome string) {
	m.SubmissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementLogWritten(level string) {
	m.LogEntriesWritten.WithLabelValues(level).Inc()
}

func (m *Metrics) IncrementLogWriteFailures() {
	m.LogWriteFailures.Inc()
}

func (m *Metrics) ObservePurge(deleted int64, took time.Duration) {
	m.LogEntriesPurged.Add(float64(deleted))
	m.LogPurgeDuration.Observe(took.Seconds())
}

func (m *Metrics) IncrementRateLimitRejections(limiter string) {
	m.RateLimitRejections.WithLabelValues(limiter).Inc()
}
