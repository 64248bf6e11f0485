// Package alloc defines the pluggable allocation strategy consumed by
// dynavec vectors.
//
// An Allocator behaves like a growable reallocation primitive: Reallocate
// preserves the common prefix of the old and new block and reports failure
// without disturbing the old block; Free releases a block exactly once.
// Every call carries the opaque per-vector context so implementations can
// tag logs or metrics with the owning vector.
//
// Built-in strategies:
//
//   - Heap: garbage-collected heap blocks, the default.
//   - Aligned: heap blocks aligned to a 64-byte boundary.
//   - Arena: chunked bump allocation from anonymous mappings, freed all at
//     once on Close.
//
// Decorators:
//
//   - Logging: structured log/slog tracing of every call.
//   - Metered: per-call metrics through a Collector.
//
// All built-in strategies return zeroed memory, so a region grown through
// them reads as zero values until written.
package alloc
