// Package shape computes area and perimeter for a closed set of plane
// shapes: circles, rectangles and triangles.
//
// Shape is a tagged variant rather than an interface hierarchy: one
// immutable value type carries a Kind and up to three measurements, and
// Area / Perimeter dispatch on the Kind.
//
//	Kind       measurements     Area                 Perimeter
//	Circle     r                π·r²                 2·π·r
//	Rectangle  l, w             l·w                  2·(l + w)
//	Triangle   a, b, c          √(s(s−a)(s−b)(s−c))  a + b + c     (s = (a+b+c)/2)
//
// Construction validates the measurements:
//
//   - ErrNonFinite        — a measurement is NaN or ±Inf.
//   - ErrNegativeMeasure  — a measurement is below zero.
//   - ErrInvalidTriangle  — the sides break the triangle inequality
//     (one side longer than the sum of the other two).
//
// All of them wrap ErrInvalidArgument. Because invalid triangles are
// rejected up front, Area never returns NaN. Degenerate (collinear)
// triangles are allowed and have zero area.
//
// The zero Shape is a circle of radius 0.
package shape
