package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/dynavec/alloc"
)

// RNG encapsulates a random number generator with a fixed seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// FailAfter is an Allocator that fails the nth Reallocate call (1-based)
// with alloc.ErrAllocationFailed and delegates everything else to the
// inner allocator. Frees always pass through.
type FailAfter struct {
	inner  alloc.Allocator
	failOn int
	calls  int
}

// NewFailAfter wraps inner (alloc.Default when nil) so that Reallocate
// call number failOn fails. A failOn of 0 never fails.
func NewFailAfter(inner alloc.Allocator, failOn int) *FailAfter {
	if inner == nil {
		inner = alloc.Default
	}
	return &FailAfter{inner: inner, failOn: failOn}
}

// Reallocate implements alloc.Allocator.
func (f *FailAfter) Reallocate(block []byte, oldSize, newSize int, context any) ([]byte, error) {
	f.calls++
	if f.calls == f.failOn {
		return nil, alloc.ErrAllocationFailed
	}
	return f.inner.Reallocate(block, oldSize, newSize, context)
}

// Free implements alloc.Allocator.
func (f *FailAfter) Free(block []byte, size int, context any) {
	f.inner.Free(block, size, context)
}

// Calls returns the number of Reallocate calls seen so far.
func (f *FailAfter) Calls() int { return f.calls }

// Counting is an Allocator that records every call for later inspection.
type Counting struct {
	inner alloc.Allocator

	Reallocs     int
	Frees        int
	FreedBytes   int
	LastContext  any
	LastOldSize  int
	LastNewSize  int
	LastFreeSize int
}

// NewCounting wraps inner (alloc.Default when nil) with call recording.
func NewCounting(inner alloc.Allocator) *Counting {
	if inner == nil {
		inner = alloc.Default
	}
	return &Counting{inner: inner}
}

// Reallocate implements alloc.Allocator.
func (c *Counting) Reallocate(block []byte, oldSize, newSize int, context any) ([]byte, error) {
	c.Reallocs++
	c.LastContext = context
	c.LastOldSize = oldSize
	c.LastNewSize = newSize
	return c.inner.Reallocate(block, oldSize, newSize, context)
}

// Free implements alloc.Allocator.
func (c *Counting) Free(block []byte, size int, context any) {
	c.Frees++
	c.FreedBytes += size
	c.LastFreeSize = size
	c.LastContext = context
	c.inner.Free(block, size, context)
}
