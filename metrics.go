package romgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordDecomposition is called after each single-set decomposition.
	// snapshots is the input size, retained the number of kept modes,
	// duration the total time taken; err is nil if successful.
	RecordDecomposition(snapshots, retained int, duration time.Duration, err error)

	// RecordBlockDecomposition is called after each block decomposition.
	// blocks is the number of blocks attempted.
	RecordBlockDecomposition(blocks int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDecomposition(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBlockDecomposition(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DecompositionCount      atomic.Int64
	DecompositionErrors     atomic.Int64
	DecompositionTotalNanos atomic.Int64
	SnapshotsTotal          atomic.Int64
	ModesTotal              atomic.Int64
	BlockCount              atomic.Int64
	BlockErrors             atomic.Int64
	BlockTotalNanos         atomic.Int64
}

// RecordDecomposition implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecomposition(snapshots, retained int, duration time.Duration, err error) {
	b.DecompositionCount.Add(1)
	b.DecompositionTotalNanos.Add(duration.Nanoseconds())
	b.SnapshotsTotal.Add(int64(snapshots))
	b.ModesTotal.Add(int64(retained))
	if err != nil {
		b.DecompositionErrors.Add(1)
	}
}

// RecordBlockDecomposition implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBlockDecomposition(blocks int, duration time.Duration, err error) {
	b.BlockCount.Add(1)
	b.BlockTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BlockErrors.Add(1)
	}
}

// BasicMetricsStats is a point-in-time snapshot of collected metrics.
type BasicMetricsStats struct {
	DecompositionCount  int64
	DecompositionErrors int64
	DecompositionAvg    time.Duration
	SnapshotsTotal      int64
	ModesTotal          int64
	BlockCount          int64
	BlockErrors         int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		DecompositionCount:  b.DecompositionCount.Load(),
		DecompositionErrors: b.DecompositionErrors.Load(),
		SnapshotsTotal:      b.SnapshotsTotal.Load(),
		ModesTotal:          b.ModesTotal.Load(),
		BlockCount:          b.BlockCount.Load(),
		BlockErrors:         b.BlockErrors.Load(),
	}
	if stats.DecompositionCount > 0 {
		stats.DecompositionAvg = time.Duration(b.DecompositionTotalNanos.Load() / stats.DecompositionCount)
	}
	return stats
}
