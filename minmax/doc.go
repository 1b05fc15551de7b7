// Package minmax finds the smallest and largest element of a slice in a
// single linear scan.
//
//	lo, hi, err := minmax.MinMax([]int{5, 2, 7, 4, 8, 5, 9, 6})
//	// lo == 2, hi == 9
//
// MinMax is generic over cmp.Ordered, so it works for integers, floats and
// strings alike. Empty input is reported as ErrEmptyInput instead of an
// index-out-of-range panic.
//
// Floating-point note: the scan uses plain < and > comparisons, so a NaN
// element never replaces the running minimum or maximum unless it is the
// first element.
package minmax
