package objstats

import (
	"github.com/krisalay/objstats/engine"
	"github.com/krisalay/objstats/validation"
)

// Errors only surface in strict mode or from Lookup. The default store never fails.
var (
	// ErrNotFound means there is no Record for the key, or no current object.
	ErrNotFound = engine.ErrNotFound

	// ErrValidation matches every rejected Touch argument.
	ErrValidation = validation.ErrValidation
)

// ValidationError carries the field and value that were rejected.
type ValidationError = validation.Error
