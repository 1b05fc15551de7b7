package shape

import (
	"fmt"
	"math"
)

// Shape is an immutable circle, rectangle or triangle.
//
// Fields are unexported; build values with NewCircle, NewRectangle or
// NewTriangle. Only the first Kind-dependent measurements are used:
// a for a circle; a, b for a rectangle; a, b, c for a triangle.
type Shape struct {
	kind    Kind
	a, b, c float64
}

// NewCircle returns a circle of radius r.
func NewCircle(r float64) (Shape, error) {
	if err := checkMeasures(r); err != nil {
		return Shape{}, err
	}

	return Shape{kind: Circle, a: r}, nil
}

// NewRectangle returns a length × width rectangle.
func NewRectangle(length, width float64) (Shape, error) {
	if err := checkMeasures(length, width); err != nil {
		return Shape{}, err
	}

	return Shape{kind: Rectangle, a: length, b: width}, nil
}

// NewTriangle returns the triangle with sides a, b and c.
//
// Each side must be at most the sum of the other two; equality (a
// degenerate, flat triangle) is accepted.
func NewTriangle(a, b, c float64) (Shape, error) {
	if err := checkMeasures(a, b, c); err != nil {
		return Shape{}, err
	}
	if a > b+c || b > a+c || c > a+b {
		return Shape{}, fmt.Errorf("%w: %g, %g, %g", ErrInvalidTriangle, a, b, c)
	}

	return Shape{kind: Triangle, a: a, b: b, c: c}, nil
}

// Kind reports which variant s holds.
func (s Shape) Kind() Kind {
	return s.kind
}

// Dimensions returns the defining measurements of s in constructor order:
// [r] for a circle, [l, w] for a rectangle, [a, b, c] for a triangle.
func (s Shape) Dimensions() []float64 {
	switch s.kind {
	case Rectangle:
		return []float64{s.a, s.b}
	case Triangle:
		return []float64{s.a, s.b, s.c}
	default:
		return []float64{s.a}
	}
}

// Area returns the area of s.
func (s Shape) Area() float64 {
	switch s.kind {
	case Rectangle:
		return s.a * s.b
	case Triangle:
		return heron(s.a, s.b, s.c)
	default:
		return math.Pi * s.a * s.a
	}
}

// Perimeter returns the perimeter (circumference for a circle) of s.
func (s Shape) Perimeter() float64 {
	switch s.kind {
	case Rectangle:
		return 2 * (s.a + s.b)
	case Triangle:
		return s.a + s.b + s.c
	default:
		return 2 * math.Pi * s.a
	}
}

// Describe returns the generic description shared by every shape.
func (s Shape) Describe() string {
	return "This is a shape."
}

// String formats s as kind(measurements), e.g. "rectangle(4, 6)".
func (s Shape) String() string {
	switch s.kind {
	case Rectangle:
		return fmt.Sprintf("%s(%g, %g)", s.kind, s.a, s.b)
	case Triangle:
		return fmt.Sprintf("%s(%g, %g, %g)", s.kind, s.a, s.b, s.c)
	default:
		return fmt.Sprintf("%s(%g)", s.kind, s.a)
	}
}

// Measure computes area and perimeter for every shape, preserving order.
func Measure(shapes ...Shape) []Measurement {
	out := make([]Measurement, len(shapes))
	for i, s := range shapes {
		out[i] = Measurement{Shape: s, Area: s.Area(), Perimeter: s.Perimeter()}
	}

	return out
}

// heron computes a triangle's area from its sides via the semi-perimeter.
// The product under the root can dip just below zero for degenerate
// triangles because of rounding; it is clamped to zero.
func heron(a, b, c float64) float64 {
	s := (a + b + c) / 2
	p := s * (s - a) * (s - b) * (s - c)
	if p < 0 {
		return 0
	}

	return math.Sqrt(p)
}

// checkMeasures rejects NaN, infinite and negative measurements.
func checkMeasures(vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
		if v < 0 {
			return ErrNegativeMeasure
		}
	}

	return nil
}
