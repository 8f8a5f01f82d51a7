package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a bit position lies outside [0, Size()).
	ErrIndexOutOfRange = errors.New("bit index out of range")

	// ErrInvalidDigit is returned by Parse for characters other than '0' and '1'.
	ErrInvalidDigit = errors.New("invalid binary digit")

	errNilOperand = errors.New("nil operand")
)

// ErrWidthMismatch indicates that two vectors combined by a checked operation
// do not have the same number of storage words.
type ErrWidthMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrWidthMismatch) Error() string {
	return fmt.Sprintf("width mismatch: expected %d words, got %d", e.Expected, e.Actual)
}

func (e *ErrWidthMismatch) Unwrap() error { return e.cause }

func indexOutOfRange(pos, size int) error {
	return fmt.Errorf("%w: position %d, size %d", ErrIndexOutOfRange, pos, size)
}

func invalidDigit(c byte, offset int) error {
	return fmt.Errorf("%w: %q at offset %d", ErrInvalidDigit, c, offset)
}
