package bitradix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDigit is returned when a digit is not legal in the source base.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrInvalidBase is returned when a base is not a power of two in [2, 32].
	ErrInvalidBase = errors.New("invalid base")

	// ErrNegativeNumber is returned for numbers below zero.
	ErrNegativeNumber = errors.New("negative number")

	// ErrUnalignedChunk is returned under PadNone when the binary expansion
	// does not split evenly into destination chunks.
	ErrUnalignedChunk = errors.New("unaligned chunk")
)

// DigitError indicates a digit that is not legal in the source base.
//
// errors.Is(err, ErrInvalidDigit) reports true for a *DigitError.
type DigitError struct {
	// Digit is the offending character. It is 0 for empty input.
	Digit byte
	// Position is the zero-based index of Digit, most significant first.
	Position int
	Base     int
}

func (e *DigitError) Error() string {
	if e.Digit == 0 {
		return fmt.Sprintf("invalid digit: empty number in base %d", e.Base)
	}
	return fmt.Sprintf("invalid digit %q at position %d in base %d", e.Digit, e.Position, e.Base)
}

func (e *DigitError) Unwrap() error { return ErrInvalidDigit }

// BaseError indicates an unsupported source or destination base.
//
// errors.Is(err, ErrInvalidBase) reports true for a *BaseError.
type BaseError struct {
	Base int
	// Role is "source" or "destination".
	Role string
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("invalid %s base %d: must be a power of two in [2, 32]", e.Role, e.Base)
}

func (e *BaseError) Unwrap() error { return ErrInvalidBase }

// AlignmentError indicates a binary expansion whose length is not a multiple
// of the destination bit width.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type AlignmentError struct {
	Bits  uint
	Width uint
	cause error
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("unaligned chunk: %d bits do not split into %d-bit chunks", e.Bits, e.Width)
}

func (e *AlignmentError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrUnalignedChunk}
	}
	return []error{ErrUnalignedChunk, e.cause}
}
