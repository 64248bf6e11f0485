package alloc

import (
	"github.com/hupe1980/dynavec/internal/mem"
)

// Aligned allocates heap blocks whose first byte sits on a 64-byte
// boundary (one cache line). Useful when elements are fed to SIMD kernels
// that care about lane alignment.
type Aligned struct{}

// Reallocate implements Allocator.
func (Aligned) Reallocate(block []byte, oldSize, newSize int, _ any) ([]byte, error) {
	if oldSize < 0 || newSize < 0 {
		return nil, ErrInvalidSize
	}
	if newSize == 0 {
		return nil, nil
	}
	if newSize == oldSize {
		return block, nil
	}

	buf := mem.AllocAligned(newSize)
	copy(buf, block[:min(oldSize, len(block))])
	return buf, nil
}

// Free implements Allocator.
func (Aligned) Free([]byte, int, any) {}
