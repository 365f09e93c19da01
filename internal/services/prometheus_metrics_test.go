package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestMetrics() (*PrometheusMetrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewPrometheusMetricsWithRegistry(reg), reg
}

func TestPrometheusMetrics_AnalysisCounters(t *testing.T) {
	m, _ := newTestMetrics()

	m.IncrementCounter(MetricAnalysisCompleted, map[string]string{"operation": OperationTotals})
	m.IncrementCounter(MetricAnalysisCompleted, map[string]string{"operation": OperationTotals})
	m.IncrementCounter(MetricAnalysisRejected, map[string]string{"operation": OperationSort, "reason": "sort_key"})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.analysisRequests.WithLabelValues(OperationTotals, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.analysisRequests.WithLabelValues(OperationSort, "rejected_sort_key")))
}

func TestPrometheusMetrics_CacheLookups(t *testing.T) {
	m, _ := newTestMetrics()
	tags := map[string]string{"operation": OperationThresholds}

	m.IncrementCounter(MetricCacheHit, tags)
	m.IncrementCounter(MetricCacheMiss, tags)
	m.IncrementCounter(MetricCacheMiss, tags)
	m.IncrementCounter(MetricCacheError, tags)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues(OperationThresholds, "hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues(OperationThresholds, "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues(OperationThresholds, "error")))
}

func TestPrometheusMetrics_TransferOutcome(t *testing.T) {
	m, _ := newTestMetrics()

	m.IncrementCounter(MetricTransferOutcome, map[string]string{"outcome": "planned"})
	m.IncrementCounter(MetricTransferOutcome, map[string]string{})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.transferOutcomes.WithLabelValues("planned")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.transferOutcomes))
}

func TestPrometheusMetrics_Gauges(t *testing.T) {
	m, _ := newTestMetrics()

	m.RecordGauge(MetricBreakerState, 2, map[string]string{"service": "result_cache"})
	m.RecordGauge(MetricSnapshotSize, 4, nil)
	m.RecordGauge(MetricTransferPlanned, 2000, nil)
	m.RecordGauge("unknown.metric", 1, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheBreakerState.WithLabelValues("result_cache")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.snapshotSize))
	assert.Equal(t, 1, testutil.CollectAndCount(m.transferAmount))
}

func TestPrometheusMetrics_ProcessingTime(t *testing.T) {
	m, _ := newTestMetrics()

	m.RecordProcessingTime(analysisTimingPrefix+OperationDashboard, 3*time.Millisecond)
	m.RecordProcessingTime("unprefixed", time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(m.analysisDuration))
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		newTestMetrics()
		newTestMetrics()
	})
}
