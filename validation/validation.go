// This file defines how touch arguments are checked before they reach a Record.

package validation

import (
	"errors"
	"fmt"
)

/*
Validator is the interface that all argument checks must follow. Instead of
hard-coding the rules into the store, we define a strategy so a simulator can
pick between "accept anything" (the fast default) and "reject bad input".
*/
type Validator interface {

	// Validate checks the size and data type passed to Touch.
	// A nil return means the call may proceed.
	Validate(size float64, dataType int) error
}

// ErrValidation is matched by every *Error through errors.Is.
var ErrValidation = errors.New("validation failed")

// Error describes one rejected argument.
type Error struct {
	Field  string
	Value  any
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) work for any *Error.
func (e *Error) Is(target error) bool {
	return target == ErrValidation
}

// Permissive accepts every input. This is what the store uses unless told otherwise.
type Permissive struct{}

func (Permissive) Validate(float64, int) error { return nil }
