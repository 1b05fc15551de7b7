package interest

import (
	"errors"
	"fmt"
)

// MaxSchedulePeriods bounds the number of rows Schedule will allocate.
const MaxSchedulePeriods = 1_000_000

// Sentinel errors for interest operations.
var (
	// ErrInvalidArgument is the base of every error returned by this package.
	ErrInvalidArgument = errors.New("interest: invalid argument")

	// ErrNonFinite indicates a NaN or infinite argument.
	ErrNonFinite = fmt.Errorf("%w: arguments must be finite numbers", ErrInvalidArgument)

	// ErrBadFrequency indicates a compounding frequency that is zero or negative.
	ErrBadFrequency = fmt.Errorf("%w: compounding frequency must be positive", ErrInvalidArgument)

	// ErrNegativeTime indicates a negative duration.
	ErrNegativeTime = fmt.Errorf("%w: time must be non-negative", ErrInvalidArgument)

	// ErrTooManyPeriods indicates frequency·time exceeds MaxSchedulePeriods.
	ErrTooManyPeriods = fmt.Errorf("%w: schedule exceeds %d periods", ErrInvalidArgument, MaxSchedulePeriods)
)

// Period is one row of a compounding schedule.
//
// Index counts compounding steps from 1. Elapsed is the time in years at
// the end of the step; for the final partial step it equals the requested
// time exactly.
type Period struct {
	Index    int
	Elapsed  float64
	Balance  float64 // P · (1 + r/n)^(n·Elapsed)
	Interest float64 // Balance − P, the interest accumulated so far
}
