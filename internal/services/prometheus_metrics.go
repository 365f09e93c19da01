package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricAnalysisCompleted = "analysis.completed"
	MetricAnalysisRejected  = "analysis.rejected"
	MetricCacheHit          = "cache.hit"
	MetricCacheMiss         = "cache.miss"
	MetricCacheError        = "cache.error"
	MetricBreakerState      = "cache.breaker_state"
	MetricSnapshotSize      = "snapshot.size"
	MetricTransferPlanned   = "transfer.planned_amount"
	MetricTransferOutcome   = "transfer.outcome"

	analysisTimingPrefix = "analysis."
)

type PrometheusMetrics struct {
	analysisRequests  *prometheus.CounterVec
	analysisDuration  *prometheus.HistogramVec
	cacheLookups      *prometheus.CounterVec
	cacheBreakerState *prometheus.GaugeVec
	snapshotSize      prometheus.Histogram
	transferAmount    prometheus.Histogram
	transferOutcomes  *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors with the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWithRegistry registers the collectors with reg
func NewPrometheusMetricsWithRegistry(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		analysisRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_analysis_total",
				Help: "Total number of portfolio analyses by operation and status",
			},
			[]string{"operation", "status"},
		),
		analysisDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portfolio_analysis_duration_milliseconds",
				Help:    "Portfolio analysis duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
			},
			[]string{"operation"},
		),
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "result_cache_lookups_total",
				Help: "Result cache lookups by outcome",
			},
			[]string{"operation", "result"},
		),
		cacheBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
			},
			[]string{"service"},
		),
		snapshotSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "portfolio_snapshot_accounts",
				Help:    "Number of cards per analyzed snapshot",
				Buckets: prometheus.ExponentialBuckets(1, 2, 9),
			},
		),
		transferAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_plan_amount",
				Help:    "Total planned balance-transfer amount in currency units",
				Buckets: prometheus.ExponentialBuckets(10, 10, 6),
			},
		),
		transferOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfer_plans_total",
				Help: "Transfer plans by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]

	switch name {
	case MetricAnalysisCompleted:
		m.analysisRequests.WithLabelValues(operation, "success").Inc()
	case MetricAnalysisRejected:
		m.analysisRequests.WithLabelValues(operation, "rejected_"+tags["reason"]).Inc()
	case MetricCacheHit:
		m.cacheLookups.WithLabelValues(operation, "hit").Inc()
	case MetricCacheMiss:
		m.cacheLookups.WithLabelValues(operation, "miss").Inc()
	case MetricCacheError:
		m.cacheLookups.WithLabelValues(operation, "error").Inc()
	case MetricTransferOutcome:
		if outcome := tags["outcome"]; outcome != "" {
			m.transferOutcomes.WithLabelValues(outcome).Inc()
		}
	}
}

// RecordProcessingTime observes durations named analysis.<operation>
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if operation, ok := strings.CutPrefix(name, analysisTimingPrefix); ok {
		m.analysisDuration.WithLabelValues(operation).Observe(float64(duration.Microseconds()) / 1000)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricBreakerState:
		m.cacheBreakerState.WithLabelValues(tags["service"]).Set(value)
	case MetricSnapshotSize:
		m.snapshotSize.Observe(value)
	case MetricTransferPlanned:
		m.transferAmount.Observe(value)
	}
}
