package oddsieve

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
type MetricsCollector interface {
	// RecordBuild is called after each sieve build.
	// limit is the requested upper bound, err is nil if successful.
	RecordBuild(limit uint64, duration time.Duration, err error)

	// RecordOutput is called after each Emit.
	RecordOutput(mode Mode, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(uint64, time.Duration, error) {}
func (NoopMetricsCollector) RecordOutput(Mode, time.Duration, error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// The zero value is ready to use.
type BasicMetricsCollector struct {
	BuildCount       atomic.Int64
	BuildErrors      atomic.Int64
	BuildTotalNanos  atomic.Int64
	LastLimit        atomic.Uint64
	OutputCount      atomic.Int64
	OutputErrors     atomic.Int64
	OutputTotalNanos atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(limit uint64, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	b.LastLimit.Store(limit)
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordOutput implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOutput(_ Mode, duration time.Duration, err error) {
	b.OutputCount.Add(1)
	b.OutputTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.OutputErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:     b.BuildCount.Load(),
		BuildErrors:    b.BuildErrors.Load(),
		BuildAvgNanos:  avg(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		LastLimit:      b.LastLimit.Load(),
		OutputCount:    b.OutputCount.Load(),
		OutputErrors:   b.OutputErrors.Load(),
		OutputAvgNanos: avg(b.OutputTotalNanos.Load(), b.OutputCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount     int64
	BuildErrors    int64
	BuildAvgNanos  int64
	LastLimit      uint64
	OutputCount    int64
	OutputErrors   int64
	OutputAvgNanos int64
}
