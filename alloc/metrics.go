package alloc

import (
	"sync/atomic"
	"time"
)

// Collector defines an interface for collecting allocator metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type Collector interface {
	// RecordReallocate is called after each Reallocate.
	// duration is the time taken, err is nil if successful.
	RecordReallocate(oldSize, newSize int, duration time.Duration, err error)

	// RecordFree is called after each Free. size is the released byte size.
	RecordFree(size int)
}

// NoopCollector is a no-op implementation of Collector.
type NoopCollector struct{}

func (NoopCollector) RecordReallocate(int, int, time.Duration, error) {}
func (NoopCollector) RecordFree(int)                                  {}

// BasicCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicCollector struct {
	ReallocCount      atomic.Int64
	ReallocErrors     atomic.Int64
	ReallocTotalNanos atomic.Int64
	BytesRequested    atomic.Int64
	FreeCount         atomic.Int64
	BytesFreed        atomic.Int64
}

// RecordReallocate implements Collector.
func (b *BasicCollector) RecordReallocate(oldSize, newSize int, duration time.Duration, err error) {
	b.ReallocCount.Add(1)
	b.ReallocTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReallocErrors.Add(1)
		return
	}
	b.BytesRequested.Add(int64(newSize))
}

// RecordFree implements Collector.
func (b *BasicCollector) RecordFree(size int) {
	b.FreeCount.Add(1)
	b.BytesFreed.Add(int64(size))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicCollector) GetStats() BasicStats {
	return BasicStats{
		ReallocCount:    b.ReallocCount.Load(),
		ReallocErrors:   b.ReallocErrors.Load(),
		ReallocAvgNanos: b.getAvgReallocNanos(),
		BytesRequested:  b.BytesRequested.Load(),
		FreeCount:       b.FreeCount.Load(),
		BytesFreed:      b.BytesFreed.Load(),
	}
}

func (b *BasicCollector) getAvgReallocNanos() int64 {
	count := b.ReallocCount.Load()
	if count == 0 {
		return 0
	}
	return b.ReallocTotalNanos.Load() / count
}

// BasicStats is a snapshot of BasicCollector state.
type BasicStats struct {
	ReallocCount    int64
	ReallocErrors   int64
	ReallocAvgNanos int64
	BytesRequested  int64
	FreeCount       int64
	BytesFreed      int64
}

// Metered decorates an Allocator with metrics collection.
type Metered struct {
	inner     Allocator
	collector Collector
}

// NewMetered wraps inner with metrics through collector. A nil inner
// selects Default; a nil collector selects NoopCollector.
func NewMetered(inner Allocator, collector Collector) *Metered {
	if inner == nil {
		inner = Default
	}
	if collector == nil {
		collector = NoopCollector{}
	}
	return &Metered{inner: inner, collector: collector}
}

// Reallocate implements Allocator.
func (m *Metered) Reallocate(block []byte, oldSize, newSize int, context any) ([]byte, error) {
	start := time.Now()
	buf, err := m.inner.Reallocate(block, oldSize, newSize, context)
	m.collector.RecordReallocate(oldSize, newSize, time.Since(start), err)
	return buf, err
}

// Free implements Allocator.
func (m *Metered) Free(block []byte, size int, context any) {
	m.inner.Free(block, size, context)
	m.collector.RecordFree(size)
}
