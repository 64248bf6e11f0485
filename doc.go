// Package dynavec provides a generic growable array with a pluggable,
// context-carrying allocation strategy.
//
// A Vector[T, S] owns a contiguous block of T obtained from an
// alloc.Allocator; S is the unsigned type used for the length and capacity
// counters. Vec[T] is the natural-width shorthand. The zero value is an
// empty vector using the default heap allocator:
//
//	var v dynavec.Vec[int]
//	_ = v.Push(1)
//	_ = v.Push(2)
//	fmt.Println(v.Pop()) // 2
//	v.Destroy()
//
// # Growth
//
// Push doubles the capacity, starting at 2. Insert may address any index
// and grows straight to the configured round-up of index+1 (next power of
// two by default). All growth funnels through Resize, which either
// succeeds or leaves the vector untouched and returns the allocator's
// error. Any resize invalidates pointers previously obtained from At or
// PushSlot.
//
// # Allocators
//
// The allocation strategy and an opaque context value are fixed per
// vector:
//
//	a := alloc.NewArena(0)
//	defer a.Close()
//
//	v := dynavec.New[float32, uint32](
//	    dynavec.WithAllocator(alloc.NewLogging(a, logger)),
//	    dynavec.WithContext("embeddings"),
//	)
//
// The context value is passed unchanged to every allocator call and is
// never interpreted or owned by the vector.
//
// # Element types
//
// Storage is handed out by allocators as raw byte blocks without a
// pointer bitmap, so the garbage collector never scans it. Element types
// must therefore be pointer-free: integers, floats, bools, and arrays or
// structs thereof. Pointer-containing types (strings, slices, maps,
// pointers, interfaces) are rejected fail-fast at construction and at
// first growth; store such data as indices or fixed-size encodings
// instead.
//
// # Errors
//
// Allocation failure is recoverable: operations that may allocate return
// an error and leave the vector unchanged. Contract violations (popping an
// empty vector, indexing past capacity) are caller bugs and go through the
// configurable fail-fast facility, which panics by default. Builds tagged
// dynavecdebug additionally fail fast on allocation errors.
//
// Vectors are not synchronized; distinct instances share no mutable state.
package dynavec
