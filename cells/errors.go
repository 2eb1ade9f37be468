package cells

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter marks a single character rejected by the policy.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrNoValidCharacters marks bulk input where the policy rejected everything.
	ErrNoValidCharacters = errors.New("no valid characters")
	// ErrOverflow marks a write past the last cell.
	ErrOverflow = errors.New("overflow")
	// ErrOutOfRange marks a negative cell index.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidLength is returned at construction for a length <= 0.
	ErrInvalidLength = errors.New("invalid length")
	// ErrInvalidPolicy is returned at construction for a malformed policy.
	ErrInvalidPolicy = errors.New("invalid policy")
)

// Reason classifies a rejected input.
type Reason uint8

const (
	ReasonInvalidCharacter Reason = iota
	ReasonNoValidCharacters
	ReasonOverflow
	ReasonOutOfRange
)

func (r Reason) String() string {
	switch r {
	case ReasonInvalidCharacter:
		return "invalid character"
	case ReasonNoValidCharacters:
		return "no valid characters"
	case ReasonOverflow:
		return "overflow"
	case ReasonOutOfRange:
		return "out of range"
	default:
		return fmt.Sprintf("reason(%d)", uint8(r))
	}
}

func (r Reason) sentinel() error {
	switch r {
	case ReasonInvalidCharacter:
		return ErrInvalidCharacter
	case ReasonNoValidCharacters:
		return ErrNoValidCharacters
	case ReasonOverflow:
		return ErrOverflow
	default:
		return ErrOutOfRange
	}
}

// InputError describes a rejected write. State is unchanged when one is
// returned.
type InputError struct {
	Reason Reason
	// Index is the cell the write targeted.
	Index int
	// Input is the rejected text as received.
	Input string
}

// NewInputError builds an InputError.
func NewInputError(reason Reason, index int, input string) *InputError {
	return &InputError{Reason: reason, Index: index, Input: input}
}

func (e *InputError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("cell %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("cell %d: %s %q", e.Index, e.Reason, e.Input)
}

// Unwrap lets errors.Is match the sentinel for Reason.
func (e *InputError) Unwrap() error { return e.Reason.sentinel() }
