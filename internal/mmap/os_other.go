//go:build !unix

package mmap

// Heap fallback for platforms without anonymous mmap. The GC reclaims the
// block, so there is nothing to unmap.
func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	return make([]byte, size), nil, nil
}
