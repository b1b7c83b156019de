package cli

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingLimit is returned when no upper limit was given.
	ErrMissingLimit = errors.New("missing upper limit")

	// ErrBelowMinimum is the cause of an InvalidError for limits below 2.
	ErrBelowMinimum = errors.New("has to be at least 2")
)

// DuplicateError reports a flag or upper limit given more than once.
type DuplicateError struct {
	Arg string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("invalid usage: duplicated argument %q", e.Arg)
}

// InvalidError reports a token that is neither a flag nor a valid limit.
//
// The underlying cause can be accessed via errors.Unwrap.
type InvalidError struct {
	Arg string
	Err error
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid argument %q: %v", e.Arg, e.Err)
}

func (e *InvalidError) Unwrap() error { return e.Err }
