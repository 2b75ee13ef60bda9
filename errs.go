package jsonptr

import "errors"

var (
	// ErrParse wraps every syntactic failure reported by Parse.
	ErrParse = errors.New("invalid json pointer")

	// ErrIndexOutOfBounds is returned by Pointer.Insert and
	// Pointer.Remove for positions outside the step sequence.
	ErrIndexOutOfBounds = errors.New("step index out of bounds")
)
