package dynavec

import (
	"fmt"
)

// ErrCapacityOverflow indicates a requested capacity whose element count or
// byte size cannot be represented in the vector's counter type or in int.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrCapacityOverflow struct {
	Capacity uint64
	cause    error
}

func (e *ErrCapacityOverflow) Error() string {
	return fmt.Sprintf("capacity overflow: %d", e.Capacity)
}

func (e *ErrCapacityOverflow) Unwrap() error { return e.cause }
