package validation

import "math"

/*
Strict rejects sizes that are negative or not a number, and, when AllowedTypes
is non-empty, any data type that is not listed.

An empty AllowedTypes means data types stay opaque: only the size is checked.
*/
type Strict struct {
	AllowedTypes []int
}

// NewStrict builds a Strict validator for the given data types.
func NewStrict(allowed ...int) Strict {
	return Strict{AllowedTypes: allowed}
}

func (s Strict) Validate(size float64, dataType int) error {
	if math.IsNaN(size) || math.IsInf(size, 0) {
		return &Error{Field: "size", Value: size, Reason: "must be a finite number"}
	}
	if size < 0 {
		return &Error{Field: "size", Value: size, Reason: "must not be negative"}
	}

	if len(s.AllowedTypes) == 0 {
		return nil
	}
	for _, t := range s.AllowedTypes {
		if t == dataType {
			return nil
		}
	}
	return &Error{Field: "data type", Value: dataType, Reason: "unknown category"}
}
