package alloc

import (
	"log/slog"
)

// Logging decorates an Allocator with structured logging. Reallocations
// log at debug level, failures at error level. The vector's context value
// is attached to every record, which is the intended way to tell apart
// allocations of different vectors sharing one allocator.
type Logging struct {
	inner  Allocator
	logger *slog.Logger
}

// NewLogging wraps inner with logging through logger. A nil inner selects
// Default; a nil logger selects slog.Default().
func NewLogging(inner Allocator, logger *slog.Logger) *Logging {
	if inner == nil {
		inner = Default
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Logging{inner: inner, logger: logger}
}

// Reallocate implements Allocator.
func (l *Logging) Reallocate(block []byte, oldSize, newSize int, context any) ([]byte, error) {
	buf, err := l.inner.Reallocate(block, oldSize, newSize, context)
	if err != nil {
		l.logger.Error("reallocate failed",
			"old_size", oldSize,
			"new_size", newSize,
			"context", context,
			"error", err,
		)
		return nil, err
	}

	l.logger.Debug("reallocate",
		"old_size", oldSize,
		"new_size", newSize,
		"context", context,
	)
	return buf, nil
}

// Free implements Allocator.
func (l *Logging) Free(block []byte, size int, context any) {
	l.inner.Free(block, size, context)
	l.logger.Debug("free",
		"size", size,
		"context", context,
	)
}
