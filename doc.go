// Package practice is a small collection of self-contained algorithm
// exercises, each living in its own leaf package with no dependencies on
// the others.
//
// 🚀 What is inside?
//
//	• consecutive — longest run of consecutive integers in an unordered slice
//	• anagram     — multiset equality of two strings (sort or count)
//	• wordpattern — bijection between pattern symbols and sentence words
//	• minmax      — single-scan minimum and maximum of a slice
//	• interest    — compound-interest formula and per-period schedule
//	• shape       — area and perimeter of circles, rectangles and triangles
//
// ✨ Guarantees:
//
//   - Pure functions – no I/O, no logging, no shared state; safe to call
//     from any number of goroutines.
//   - Explicit errors – malformed input is reported with sentinel errors
//     that wrap each package's ErrInvalidArgument, never with a panic.
//   - Runnable docs – every package ships Example functions.
//
// The cmd/practice command runs each exercise as a console demo:
//
//	go run ./cmd/practice all
//	go run ./cmd/practice wordpattern abba dog cat cat dog
//	go run ./cmd/practice interest --principal 1000 --rate 10 --time 2 --period 1 --schedule
package practice
