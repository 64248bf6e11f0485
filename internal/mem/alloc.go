package mem

import (
	"unsafe"
)

// Alignment is the byte alignment guaranteed by AllocAligned (64 bytes,
// one cache line / AVX-512 lane).
const Alignment = 64

// AllocAligned allocates a zeroed byte slice of the given size whose first
// byte sits at an address divisible by Alignment.
//
// Note: This function allocates slightly more memory than requested to
// ensure alignment. The underlying array is kept alive by the returned
// slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Over-allocate so an aligned offset always exists within the block.
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}
