package minmax

import (
	"errors"
	"fmt"
)

// Sentinel errors for minmax operations.
var (
	// ErrInvalidArgument is the base of every error returned by this package.
	ErrInvalidArgument = errors.New("minmax: invalid argument")

	// ErrEmptyInput indicates a nil or empty slice was passed where at
	// least one element is required.
	ErrEmptyInput = fmt.Errorf("%w: input must contain at least one element", ErrInvalidArgument)
)
