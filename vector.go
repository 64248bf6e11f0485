package dynavec

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/dynavec/alloc"
	"github.com/hupe1980/dynavec/internal/conv"
)

// Size constrains the counter type of a Vector. The choice fixes the
// maximum length/capacity and the per-vector counter overhead at
// instantiation time.
type Size interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Vec is a Vector with the platform's natural counter width.
type Vec[T any] = Vector[T, uint]

// Vector is a growable array of T with an S-typed length and capacity.
//
// T must be pointer-free: no pointers, strings, slices, maps, interfaces,
// channels, or functions, directly or through struct fields. Storage lives
// in allocator-owned blocks the garbage collector does not scan, so a
// reference held only inside the vector would not keep its pointee alive.
// Construction and growth fail fast on pointer-containing element types.
//
// The zero value is an empty vector using the default allocator. A vector
// exclusively owns its storage: copying the struct value aliases that
// storage and must be avoided; use CopyFrom for a deep copy. The owner
// must call Destroy exactly once when done.
//
// Invariants: Len() <= Cap() at all times, and storage is held exactly
// when Cap() > 0.
type Vector[T any, S Size] struct {
	num      S
	capacity S
	block    []byte // storage as handed out by the allocator
	elems    []T    // typed view of block; len == capacity
	config   config
}

// New constructs a vector in the zero state. No allocation occurs.
func New[T any, S Size](opts ...Option) *Vector[T, S] {
	v := &Vector[T, S]{}
	v.Init(opts...)
	return v
}

// NewVec constructs a natural-width vector in the zero state.
func NewVec[T any](opts ...Option) *Vec[T] {
	return New[T, uint](opts...)
}

// Init (re)constructs the vector into the zero state: length 0, capacity
// 0, no storage, configuration rebuilt from opts. It never frees existing
// storage, so calling it on a non-empty vector without a prior Destroy
// leaks that storage. Idempotent.
func (v *Vector[T, S]) Init(opts ...Option) {
	v.checkElemType()

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	v.num = 0
	v.capacity = 0
	v.block = nil
	v.elems = nil
	v.config = cfg
}

// Len returns the number of elements in the vector.
func (v *Vector[T, S]) Len() S { return v.num }

// Cap returns the number of elements storable before the next
// reallocation.
func (v *Vector[T, S]) Cap() S { return v.capacity }

// Context returns the opaque value passed to the allocator for this
// vector.
func (v *Vector[T, S]) Context() any { return v.config.context }

// SetContext replaces the opaque allocator context.
func (v *Vector[T, S]) SetContext(context any) { v.config.context = context }

// At returns a pointer to the element at index i. The pointer is valid
// until the next resize.
//
// Precondition: i < Cap(). Like raw array indexing, a violation is a
// contract failure, not a returned error.
func (v *Vector[T, S]) At(i S) *T {
	check(i < v.capacity, "index %d out of range (capacity %d)", i, v.capacity)
	return &v.elems[i]
}

// Resize changes the reserved capacity to newCapacity through the
// allocator. On failure the vector is untouched and the old block remains
// owned by it.
//
// Resize never adjusts the length, so shrinking below Len() is legal here
// and the caller's responsibility to avoid.
func (v *Vector[T, S]) Resize(newCapacity S) error {
	// Zero-value vectors reach their first resize without Init.
	v.checkElemType()

	oldBytes, err := v.byteSize(v.capacity)
	if err != nil {
		return err
	}
	newBytes, err := v.byteSize(newCapacity)
	if err != nil {
		return err
	}

	block, err := v.allocator().Reallocate(v.block, oldBytes, newBytes, v.config.context)
	if err != nil {
		debugFail("resize to %d failed: %v", newCapacity, err)
		return fmt.Errorf("dynavec: resize to %d: %w", newCapacity, err)
	}

	v.block = block
	v.capacity = newCapacity

	switch {
	case newCapacity == 0:
		v.elems = nil
	case newBytes == 0:
		// Zero-size element type; no backing bytes needed.
		v.elems = make([]T, int(newCapacity))
	default:
		v.elems = unsafe.Slice((*T)(unsafe.Pointer(&block[0])), int(newCapacity)) //nolint:gosec // typed view of the allocator's block
	}

	return nil
}

// Push appends elem, doubling the capacity (from an initial 2) when full.
// On failure the vector and its length are unchanged.
func (v *Vector[T, S]) Push(elem T) error {
	if v.num == v.capacity {
		if err := v.grow(); err != nil {
			return err
		}
	}

	v.elems[v.num] = elem
	v.num++
	return nil
}

// PushSlot appends a slot and returns a pointer to it for in-place
// construction, with the same growth and failure semantics as Push. The
// slot holds whatever the storage held before: zero values from the
// built-in allocators, stale content when the slot was previously popped.
func (v *Vector[T, S]) PushSlot() (*T, error) {
	if v.num == v.capacity {
		if err := v.grow(); err != nil {
			return nil, err
		}
	}

	slot := &v.elems[v.num]
	v.num++
	return slot, nil
}

func (v *Vector[T, S]) grow() error {
	newCapacity := S(2)
	if v.capacity != 0 {
		newCapacity = v.capacity << 1
		if newCapacity <= v.capacity {
			return &ErrCapacityOverflow{Capacity: uint64(v.capacity) + 1}
		}
	}
	return v.Resize(newCapacity)
}

// Pop removes and returns the last element. Capacity is unchanged.
//
// Precondition: Len() > 0.
func (v *Vector[T, S]) Pop() T {
	check(v.num > 0, "Pop on empty vector")
	v.num--
	return v.elems[v.num]
}

// Insert writes elem at index i, which need not be within the current
// bounds. When i >= Cap() the vector grows to the configured round-up of
// i+1 (next power of two by default) rather than by doubling, since a
// single insert may jump capacity by an arbitrary amount. When i >= Len()
// the length advances to i+1 and the skipped slots hold whatever the
// allocator put there (zero values with the built-in allocators).
//
// This is a sparse-write primitive: existing elements are never shifted.
// On failure the vector is unchanged.
func (v *Vector[T, S]) Insert(i S, elem T) error {
	if v.capacity <= i {
		need := uint64(i) + 1
		if need == 0 {
			return &ErrCapacityOverflow{Capacity: uint64(i)}
		}

		target := v.roundUp()(need)
		if target < need {
			return &ErrCapacityOverflow{Capacity: need}
		}
		newCapacity := S(target)
		if uint64(newCapacity) != target {
			return &ErrCapacityOverflow{Capacity: target}
		}

		if err := v.Resize(newCapacity); err != nil {
			return err
		}
	}

	if v.num <= i {
		v.num = i + 1
	}
	v.elems[i] = elem
	return nil
}

// CopyFrom deep-copies src into v: the length and the whole reserved
// block, including currently unused slots up to src's capacity. v grows to
// at least src's capacity first; on failure v is unchanged. The two
// vectors never alias storage afterward.
//
// v keeps its own allocator and context: the context identifies where a
// vector's memory lives, not its content.
func (v *Vector[T, S]) CopyFrom(src *Vector[T, S]) error {
	check(src != nil, "CopyFrom with nil source")

	if v.capacity < src.capacity {
		if err := v.Resize(src.capacity); err != nil {
			return err
		}
	}

	v.num = src.num
	copy(v.elems, src.elems)
	return nil
}

// Destroy releases the storage through the allocator and resets the
// vector to the zero state. Using the vector afterward without Init (or
// relying on the zero state it now equals) is the caller's affair; Destroy
// must be called exactly once per lifetime.
func (v *Vector[T, S]) Destroy() {
	// A live capacity was validated when it was reserved.
	size, _ := v.byteSize(v.capacity)
	v.allocator().Free(v.block, size, v.config.context)

	v.num = 0
	v.capacity = 0
	v.block = nil
	v.elems = nil
}

func (v *Vector[T, S]) checkElemType() {
	var zero T
	check(!typeHasPointers[T](), "element type %T contains pointers and cannot live in unscanned storage", zero)
}

func (v *Vector[T, S]) allocator() alloc.Allocator {
	if v.config.alloc != nil {
		return v.config.alloc
	}
	return alloc.Default
}

func (v *Vector[T, S]) roundUp() RoundUpFunc {
	if v.config.roundUp != nil {
		return v.config.roundUp
	}
	return NextPow2
}

// byteSize returns elemSize * capacity in bytes, reporting counts that do
// not fit in int.
func (v *Vector[T, S]) byteSize(capacity S) (int, error) {
	n, err := conv.Uint64ToInt(uint64(capacity))
	if err != nil {
		return 0, &ErrCapacityOverflow{Capacity: uint64(capacity), cause: err}
	}

	var zero T
	size, err := conv.MulInt(int(unsafe.Sizeof(zero)), n)
	if err != nil {
		return 0, &ErrCapacityOverflow{Capacity: uint64(capacity), cause: err}
	}
	return size, nil
}
