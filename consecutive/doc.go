// Package consecutive finds the longest run of consecutive integers in an
// unordered slice.
//
// 🚀 What is a run?
//
//	A run is a maximal set {k, k+1, …, k+n−1} whose members all occur in
//	the input. Order and duplicates in the input do not matter:
//	  [100, 4, 200, 1, 3, 2]  →  run {1, 2, 3, 4}, length 4
//	  [1, 2, 0, 1]            →  run {0, 1, 2},    length 3
//
// ✨ Key features:
//   - LongestConsecutive: length of the longest run (0 for empty input)
//   - LongestRun: the run itself (Start, Length), ties broken by smallest Start
//
// Algorithm:
//  1. Insert every value into a set (deduplication).
//  2. For each value v with v−1 absent, v starts a run: walk v+1, v+2, …
//     while present and count.
//  3. Keep the maximum count.
//
// Each value is the start of at most one walk, and every walk only touches
// members of its own run, so the nested loop stays linear overall.
//
// Performance:
//
//   - Time:   O(n) expected (hash set)
//   - Memory: O(n)
package consecutive
