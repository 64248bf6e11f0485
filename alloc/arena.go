package alloc

import (
	"fmt"
	"math/bits"
	"sync"

	"github.com/hupe1980/dynavec/internal/mmap"
)

const (
	// DefaultChunkSize is the default size of an arena chunk (1 MiB).
	DefaultChunkSize = 1024 * 1024
	// arenaAlignment is the alignment of blocks handed out by the arena.
	arenaAlignment = 8
)

// ArenaStats tracks arena memory usage.
//
//   - ChunksAllocated: total chunks ever mapped
//   - BytesReserved: memory currently reserved from the OS
//   - BytesUsed: bytes handed out to callers (before alignment padding)
//   - TotalAllocs: cumulative Reallocate count
type ArenaStats struct {
	ChunksAllocated uint64
	BytesReserved   uint64
	BytesUsed       uint64
	TotalAllocs     uint64
}

// Arena is a chunked bump allocator backed by anonymous memory mappings.
//
// Reallocate always hands out a fresh block and copies the surviving
// prefix; Free is a no-op. Memory is returned to the OS only when the
// arena is closed, which makes the arena a good fit for build-then-drop
// vector workloads. An arena may back any number of vectors; its own
// bookkeeping is mutex-protected.
type Arena struct {
	mu        sync.Mutex
	chunkSize int
	chunks    []*mmap.Mapping
	current   []byte // unconsumed tail of the newest chunk
	closed    bool
	stats     ArenaStats
}

// NewArena creates an arena with the given chunk size, rounded up to a
// power of two. A chunkSize <= 0 selects DefaultChunkSize.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	chunkSize = 1 << bits.Len(uint(chunkSize-1)) //nolint:gosec // chunkSize > 0

	return &Arena{chunkSize: chunkSize}
}

// Reallocate implements Allocator.
func (a *Arena) Reallocate(block []byte, oldSize, newSize int, _ any) ([]byte, error) {
	if oldSize < 0 || newSize < 0 {
		return nil, ErrInvalidSize
	}
	if newSize == 0 {
		return nil, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil, fmt.Errorf("%w: arena is closed", ErrAllocationFailed)
	}

	buf, err := a.allocLocked(newSize)
	if err != nil {
		return nil, err
	}

	copy(buf, block[:min(oldSize, len(block))])
	return buf, nil
}

func (a *Arena) allocLocked(size int) ([]byte, error) {
	mask := arenaAlignment - 1
	alignedSize := (size + mask) &^ mask

	if alignedSize > len(a.current) {
		chunkSize := a.chunkSize
		if alignedSize > chunkSize {
			// Oversize request gets a dedicated chunk.
			chunkSize = alignedSize
		}

		m, err := mmap.MapAnon(chunkSize)
		if err != nil {
			return nil, fmt.Errorf("%w: map chunk: %w", ErrAllocationFailed, err)
		}

		a.chunks = append(a.chunks, m)
		a.current = m.Bytes()
		a.stats.ChunksAllocated++
		a.stats.BytesReserved += uint64(chunkSize)
	}

	buf := a.current[:size:size]
	a.current = a.current[alignedSize:]
	a.stats.BytesUsed += uint64(size)
	a.stats.TotalAllocs++

	return buf, nil
}

// Free implements Allocator. Arena blocks are reclaimed in bulk on Close,
// so individual frees are no-ops.
func (a *Arena) Free([]byte, int, any) {}

// Close unmaps all chunks. Blocks handed out by the arena become invalid.
// Close is idempotent.
func (a *Arena) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true

	var firstErr error
	for _, m := range a.chunks {
		if err := m.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.chunks = nil
	a.current = nil
	a.stats.BytesReserved = 0

	return firstErr
}

// Stats returns a snapshot of the arena's usage counters.
func (a *Arena) Stats() ArenaStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Usage returns the fraction of reserved memory handed out, in percent.
func (a *Arena) Usage() float64 {
	stats := a.Stats()
	if stats.BytesReserved == 0 {
		return 0
	}
	return float64(stats.BytesUsed) / float64(stats.BytesReserved) * 100
}

func (a *Arena) String() string {
	stats := a.Stats()
	return fmt.Sprintf("Arena{chunks: %d, reserved: %.2f MiB, used: %.2f MiB, allocs: %d}",
		stats.ChunksAllocated,
		float64(stats.BytesReserved)/(1024*1024),
		float64(stats.BytesUsed)/(1024*1024),
		stats.TotalAllocs,
	)
}
