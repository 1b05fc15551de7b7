package shape

import (
	"errors"
	"fmt"
)

// Sentinel errors for shape construction.
var (
	// ErrInvalidArgument is the base of every error returned by this package.
	ErrInvalidArgument = errors.New("shape: invalid argument")

	// ErrNonFinite indicates a NaN or infinite measurement.
	ErrNonFinite = fmt.Errorf("%w: measurements must be finite", ErrInvalidArgument)

	// ErrNegativeMeasure indicates a measurement below zero.
	ErrNegativeMeasure = fmt.Errorf("%w: measurements must be non-negative", ErrInvalidArgument)

	// ErrInvalidTriangle indicates side lengths that violate the triangle
	// inequality, for which Heron's formula has no real solution.
	ErrInvalidTriangle = fmt.Errorf("%w: sides violate the triangle inequality", ErrInvalidArgument)
)

// Kind identifies the variant held by a Shape.
type Kind int

const (
	// Circle is defined by its radius.
	Circle Kind = iota
	// Rectangle is defined by its length and width.
	Rectangle
	// Triangle is defined by its three side lengths.
	Triangle
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Rectangle:
		return "rectangle"
	case Triangle:
		return "triangle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Measurement pairs a shape with its derived values, as produced by Measure.
type Measurement struct {
	Shape     Shape
	Area      float64
	Perimeter float64
}
