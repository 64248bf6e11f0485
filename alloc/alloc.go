package alloc

import (
	"errors"
)

var (
	// ErrAllocationFailed is returned when an allocator cannot satisfy a
	// reallocation request.
	ErrAllocationFailed = errors.New("alloc: allocation failed")
	// ErrInvalidSize is returned for negative size arguments.
	ErrInvalidSize = errors.New("alloc: invalid size")
)

// Allocator is a pluggable allocation strategy.
//
// Implementations must treat a failed Reallocate as a no-op: the old block
// stays valid and owned by the caller. A newSize of zero legally yields a
// nil block with a nil error ("empty", not a failure).
type Allocator interface {
	// Reallocate returns a block of newSize bytes holding the first
	// min(oldSize, newSize) bytes of block. The context value is the
	// caller-supplied tag of the owning vector; implementations must not
	// interpret it beyond passing it to logs or metrics.
	Reallocate(block []byte, oldSize, newSize int, context any) ([]byte, error)

	// Free releases a block previously returned by Reallocate. size is the
	// byte size the block was last allocated with.
	Free(block []byte, size int, context any)
}

// Default is the allocator used when none is configured.
var Default Allocator = Heap{}

// Heap allocates garbage-collected blocks with make. Reallocate copies the
// surviving prefix into a fresh zeroed block; Free is a no-op because the
// GC reclaims unreferenced blocks.
type Heap struct{}

// Reallocate implements Allocator.
func (Heap) Reallocate(block []byte, oldSize, newSize int, _ any) ([]byte, error) {
	if oldSize < 0 || newSize < 0 {
		return nil, ErrInvalidSize
	}
	if newSize == 0 {
		return nil, nil
	}
	if newSize == oldSize {
		return block, nil
	}

	buf := make([]byte, newSize)
	copy(buf, block[:min(oldSize, len(block))])
	return buf, nil
}

// Free implements Allocator.
func (Heap) Free([]byte, int, any) {}
