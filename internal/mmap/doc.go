// Package mmap provides anonymous read-write memory mappings for off-heap
// allocation. On platforms without mmap support it falls back to heap
// allocation so callers never have to care.
package mmap
