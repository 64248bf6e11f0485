package dynavec

import (
	"github.com/hupe1980/dynavec/alloc"
)

type config struct {
	alloc   alloc.Allocator
	context any
	roundUp RoundUpFunc
}

// Option configures a vector at construction time.
type Option func(*config)

// WithAllocator sets the allocation strategy. The default is alloc.Default
// (garbage-collected heap blocks).
func WithAllocator(a alloc.Allocator) Option {
	return func(c *config) {
		c.alloc = a
	}
}

// WithContext sets the opaque value passed to every allocator call for
// this vector. The vector neither interprets nor owns it.
func WithContext(context any) Option {
	return func(c *config) {
		c.context = context
	}
}

// WithRoundUp sets the round-up function used when Insert grows past the
// current capacity. The default is NextPow2.
func WithRoundUp(fn RoundUpFunc) Option {
	return func(c *config) {
		c.roundUp = fn
	}
}
