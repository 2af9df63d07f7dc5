package bfparser

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedLoop matches failures where a '[' has no closing ']'.
	ErrUnterminatedLoop = errors.New("unterminated loop")
	// ErrTrailingInput matches failures where input remains after the
	// top-level instruction sequence.
	ErrTrailingInput = errors.New("unexpected trailing input")
)

// ParseError is the base error type for all bfparser errors.
type ParseError struct {
	Message   string
	Pos       Position
	Remaining string // unconsumed input at Pos
	Cause     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// UnterminatedLoopError is returned when input recognition stops inside a
// loop body and the next byte is not ']'. Pos is where ']' was required.
type UnterminatedLoopError struct {
	ParseError
	Open Position // location of the unmatched '['
}

// TrailingInputError is returned when the top-level sequence ends before the
// input does, most often because of a ']' without a matching '['.
type TrailingInputError struct{ ParseError }
