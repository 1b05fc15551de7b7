package minmax

import "cmp"

// MinMax returns the minimum and maximum of xs.
//
// Both running values start at xs[0]; every later element is compared
// against each of them once. Returns ErrEmptyInput for nil or empty xs.
//
// Complexity: O(n) time, O(1) memory.
func MinMax[T cmp.Ordered](xs []T) (lo, hi T, err error) {
	if len(xs) == 0 {
		return lo, hi, ErrEmptyInput
	}

	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}

	return lo, hi, nil
}
