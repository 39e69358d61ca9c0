package keyparts

import (
	"errors"
	"fmt"
)

// Input errors. These are caused by caller supplied values and are never
// corrected silently.
var (
	ErrMalformedInput   = errors.New("malformed hex input")
	ErrEmptyInput       = errors.New("no key parts provided")
	ErrLengthMismatch   = errors.New("key parts must all be the same length")
	ErrInvalidPartCount = errors.New("part count must be at least 1")
	ErrUnsupportedMode  = errors.New("unsupported split mode")
)

// ErrEntropyUnavailable is returned when the random source fails. Splitting
// is not retried with a weaker source.
var ErrEntropyUnavailable = errors.New("entropy unavailable")

// Internal invariant violations. Any of these means the split construction
// itself is broken, not that the input was bad.
var (
	ErrReconstructionFailure = errors.New("split parts do not recombine to the same key")
	ErrForbiddenPattern      = errors.New("keypad part contains a forbidden digit repetition")
)

// LengthMismatchError reports the distinct byte lengths found among a set of
// key parts. It matches ErrLengthMismatch with errors.Is.
type LengthMismatchError struct {
	Lengths []int // distinct lengths in ascending order
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v: %v", ErrLengthMismatch, e.Lengths)
}

func (e *LengthMismatchError) Unwrap() error {
	return ErrLengthMismatch
}

// IsInternal reports whether err signals a defect in the split construction
// rather than bad input or a failing random source.
func IsInternal(err error) bool {
	return errors.Is(err, ErrReconstructionFailure) || errors.Is(err, ErrForbiddenPattern)
}
