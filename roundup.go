package dynavec

import (
	"math/bits"
)

// RoundUpFunc maps a required minimum capacity to the capacity actually
// reserved when Insert grows past the current bounds. It must return a
// value >= its argument; a smaller result is treated as overflow and the
// triggering operation fails with ErrCapacityOverflow.
//
// The function operates on uint64 regardless of the vector's counter
// width; results that do not fit the counter type are likewise reported
// as overflow.
type RoundUpFunc func(x uint64) uint64

// NextPow2 returns the smallest power of two >= x, the default round-up
// policy. NextPow2(0) is 0, and values above 1<<63 wrap to 0, which the
// caller detects as overflow.
func NextPow2(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	if x&(x-1) == 0 {
		return x
	}
	return 1 << bits.Len64(x)
}
