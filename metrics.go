package bitradix

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    convertCounter   prometheus.Counter
//	    convertHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordConvert(duration time.Duration, err error) {
//	    p.convertCounter.Inc()
//	    p.convertHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordConvert is called after each single conversion.
	// err is nil if successful.
	RecordConvert(duration time.Duration, err error)

	// RecordBatch is called after each batch conversion.
	// count is the number of requests, failed is the number that failed.
	RecordBatch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordConvert(time.Duration, error)  {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ConvertCount      atomic.Int64
	ConvertErrors     atomic.Int64
	ConvertTotalNanos atomic.Int64
	BatchCount        atomic.Int64
	BatchItems        atomic.Int64
	BatchFailed       atomic.Int64
	BatchTotalNanos   atomic.Int64
}

// RecordConvert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConvert(duration time.Duration, err error) {
	b.ConvertCount.Add(1)
	b.ConvertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ConvertErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ConvertCount:    b.ConvertCount.Load(),
		ConvertErrors:   b.ConvertErrors.Load(),
		ConvertAvgNanos: avgNanos(b.ConvertTotalNanos.Load(), b.ConvertCount.Load()),
		BatchCount:      b.BatchCount.Load(),
		BatchItems:      b.BatchItems.Load(),
		BatchFailed:     b.BatchFailed.Load(),
		BatchAvgNanos:   avgNanos(b.BatchTotalNanos.Load(), b.BatchCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ConvertCount    int64
	ConvertErrors   int64
	ConvertAvgNanos int64
	BatchCount      int64
	BatchItems      int64
	BatchFailed     int64
	BatchAvgNanos   int64
}
