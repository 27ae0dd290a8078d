package engine

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to the user by the partition editor. Size errors are
// recoverable: the model is never touched before validation passes.
var (
	// ErrInvalidSize means the requested size resolved to zero sectors.
	ErrInvalidSize = errors.New("partition size must be at least one sector")

	// ErrOversize means the request exceeds the selected free region.
	ErrOversize = errors.New("partition size exceeds free space")

	// ErrPoolExhausted means all 256 partition numbers are assigned.
	ErrPoolExhausted = errors.New("no partition numbers available")
)

// ParseSizeError wraps unparsable size text.
type ParseSizeError struct {
	Text string
	Err  error
}

func (e *ParseSizeError) Error() string {
	return fmt.Sprintf("cannot parse size %q: %v", e.Text, e.Err)
}

func (e *ParseSizeError) Unwrap() error { return e.Err }
