package consecutive

import "math"

// LongestConsecutive returns the length of the longest run of consecutive
// integers present in nums, ignoring order and duplicates.
//
// Returns 0 for nil or empty input.
//
// Complexity: O(n) expected time, O(n) memory.
func LongestConsecutive(nums []int) int {
	return LongestRun(nums).Length
}

// LongestRun returns the longest run of consecutive integers in nums.
//
// When several runs share the maximum length, the one with the smallest
// Start is returned, so the result does not depend on map iteration order.
// Returns the zero Run for nil or empty input.
func LongestRun(nums []int) Run {
	if len(nums) == 0 {
		return Run{}
	}

	set := make(map[int]struct{}, len(nums))
	for _, v := range nums {
		set[v] = struct{}{}
	}

	var best Run
	for v := range set {
		// only values without a predecessor start a walk
		if v != math.MinInt {
			if _, ok := set[v-1]; ok {
				continue
			}
		}

		length := walk(set, v)
		if length > best.Length || (length == best.Length && v < best.Start) {
			best = Run{Start: v, Length: length}
		}
	}

	return best
}

// walk counts how many consecutive values starting at start are in set.
// It never increments past math.MaxInt.
func walk(set map[int]struct{}, start int) int {
	length := 1
	for cur := start; cur != math.MaxInt; cur++ {
		if _, ok := set[cur+1]; !ok {
			break
		}
		length++
	}

	return length
}
