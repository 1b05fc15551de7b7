package shape_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/practice/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// mustShape returns a helper that unwraps a constructor result and fails
// the test on error.
func mustShape(t *testing.T) func(shape.Shape, error) shape.Shape {
	return func(s shape.Shape, err error) shape.Shape {
		t.Helper()
		require.NoError(t, err)

		return s
	}
}

// TestShapes_DemoValues checks the classic demo: circle r=5,
// rectangle 4×6, triangle 3-4-5.
func TestShapes_DemoValues(t *testing.T) {
	must := mustShape(t)
	circle := must(shape.NewCircle(5))
	assert.InDelta(t, 78.53981633974483, circle.Area(), eps)
	assert.InDelta(t, 31.41592653589793, circle.Perimeter(), eps)

	rect := must(shape.NewRectangle(4, 6))
	assert.Equal(t, 24.0, rect.Area())
	assert.Equal(t, 20.0, rect.Perimeter())

	tri := must(shape.NewTriangle(3, 4, 5))
	assert.Equal(t, 6.0, tri.Area())
	assert.Equal(t, 12.0, tri.Perimeter())
}

// TestCircle_AreaProperty checks Area == π·r² for many radii.
func TestCircle_AreaProperty(t *testing.T) {
	must := mustShape(t)
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		r := rng.Float64() * 1000
		c := must(shape.NewCircle(r))
		assert.Equal(t, math.Pi*r*r, c.Area())
		assert.Equal(t, 2*math.Pi*r, c.Perimeter())
	}
}

// TestTriangle_HeronCrossCheck compares Heron's formula with ½·a·b·sin(C)
// from the law of cosines on random valid triangles.
func TestTriangle_HeronCrossCheck(t *testing.T) {
	must := mustShape(t)
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 500; i++ {
		a := 1 + rng.Float64()*50
		b := 1 + rng.Float64()*50
		lo, hi := math.Abs(a-b), a+b
		c := lo + (hi-lo)*(0.05+0.9*rng.Float64())

		tri := must(shape.NewTriangle(a, b, c))
		cosC := (a*a + b*b - c*c) / (2 * a * b)
		want := 0.5 * a * b * math.Sqrt(1-cosC*cosC)

		area := tri.Area()
		assert.GreaterOrEqual(t, area, 0.0)
		assert.InEpsilon(t, want, area, 1e-6, "sides %v %v %v", a, b, c)
		assert.InDelta(t, a+b+c, tri.Perimeter(), eps)
	}
}

// TestTriangle_Degenerate accepts flat triangles and reports zero area.
func TestTriangle_Degenerate(t *testing.T) {
	must := mustShape(t)
	flat := must(shape.NewTriangle(1, 2, 3))
	assert.Equal(t, 0.0, flat.Area())
	assert.False(t, math.IsNaN(flat.Area()))

	// sides whose float sum equals the third side exactly
	odd := must(shape.NewTriangle(0.1, 0.2, 0.30000000000000004))
	assert.GreaterOrEqual(t, odd.Area(), 0.0)
	assert.False(t, math.IsNaN(odd.Area()))
}

// TestConstructors_Validation checks every rejected measurement.
func TestConstructors_Validation(t *testing.T) {
	tests := []struct {
		name string
		make func() (shape.Shape, error)
		want error
	}{
		{"negative radius", func() (shape.Shape, error) { return shape.NewCircle(-1) }, shape.ErrNegativeMeasure},
		{"NaN radius", func() (shape.Shape, error) { return shape.NewCircle(math.NaN()) }, shape.ErrNonFinite},
		{"Inf length", func() (shape.Shape, error) { return shape.NewRectangle(math.Inf(1), 1) }, shape.ErrNonFinite},
		{"negative width", func() (shape.Shape, error) { return shape.NewRectangle(1, -2) }, shape.ErrNegativeMeasure},
		{"negative side", func() (shape.Shape, error) { return shape.NewTriangle(3, -4, 5) }, shape.ErrNegativeMeasure},
		{"inequality a", func() (shape.Shape, error) { return shape.NewTriangle(10, 2, 3) }, shape.ErrInvalidTriangle},
		{"inequality b", func() (shape.Shape, error) { return shape.NewTriangle(2, 10, 3) }, shape.ErrInvalidTriangle},
		{"inequality c", func() (shape.Shape, error) { return shape.NewTriangle(1, 2, 5) }, shape.ErrInvalidTriangle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.make()
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, shape.ErrInvalidArgument)
			assert.Equal(t, shape.Shape{}, s)
		})
	}
}

// TestShape_Accessors covers Kind, Dimensions, String and Describe.
func TestShape_Accessors(t *testing.T) {
	must := mustShape(t)
	tests := []struct {
		s    shape.Shape
		kind shape.Kind
		dims []float64
		str  string
	}{
		{must(shape.NewCircle(2.5)), shape.Circle, []float64{2.5}, "circle(2.5)"},
		{must(shape.NewRectangle(4, 6)), shape.Rectangle, []float64{4, 6}, "rectangle(4, 6)"},
		{must(shape.NewTriangle(3, 4, 5)), shape.Triangle, []float64{3, 4, 5}, "triangle(3, 4, 5)"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.kind, tc.s.Kind())
		assert.Equal(t, tc.dims, tc.s.Dimensions())
		assert.Equal(t, tc.str, tc.s.String())
		assert.Equal(t, "This is a shape.", tc.s.Describe())
	}

	assert.Equal(t, "Kind(7)", shape.Kind(7).String())
}

// TestShape_ZeroValue is a zero-radius circle.
func TestShape_ZeroValue(t *testing.T) {
	var s shape.Shape
	assert.Equal(t, shape.Circle, s.Kind())
	assert.Equal(t, 0.0, s.Area())
	assert.Equal(t, 0.0, s.Perimeter())
}

// TestMeasure keeps order and matches the per-shape methods.
func TestMeasure(t *testing.T) {
	must := mustShape(t)
	shapes := []shape.Shape{
		must(shape.NewTriangle(3, 4, 5)),
		must(shape.NewCircle(1)),
		must(shape.NewRectangle(2, 3)),
	}

	ms := shape.Measure(shapes...)
	require.Len(t, ms, len(shapes))
	for i, m := range ms {
		assert.Equal(t, shapes[i], m.Shape)
		assert.Equal(t, shapes[i].Area(), m.Area)
		assert.Equal(t, shapes[i].Perimeter(), m.Perimeter)
	}

	assert.Empty(t, shape.Measure())
}
