package oddsieve

import (
	"errors"
	"fmt"

	"github.com/hupe1980/oddsieve/internal/resource"
)

var (
	// ErrLimitTooSmall is returned when the upper limit is below 2.
	ErrLimitTooSmall = errors.New("upper limit must be at least 2")

	// ErrMemoryLimitExceeded is returned when the bit array does not fit the
	// configured memory limit.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// ErrInvalidLimit indicates an upper limit the sieve cannot be built for.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrInvalidLimit struct {
	Limit uint64
	cause error
}

func (e *ErrInvalidLimit) Error() string {
	return fmt.Sprintf("invalid upper limit %d: %v", e.Limit, e.cause)
}

func (e *ErrInvalidLimit) Unwrap() error { return e.cause }
