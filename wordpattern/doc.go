// Package wordpattern checks whether a sentence follows a pattern: every
// pattern symbol stands for exactly one word and every word for exactly one
// symbol (a bijection), consistently across all positions.
//
//	pattern "abba", s "dog cat cat dog"  → follows   (a↔dog, b↔cat)
//	pattern "abba", s "dog cat cat fish" → conflict at index 3
//	pattern "aaaa", s "dog cat cat dog"  → conflict at index 1
//	pattern "abba", s "dog dog dog dog"  → conflict at index 1 (word reused)
//
// Symbols are the runes of pattern. A byte of pattern that is not valid
// UTF-8 is a symbol of its own, stored in the mapping under the negative key
// -1-b, so "\xff\xfe" has two distinct symbols rather than two U+FFFD.
//
// Words are the tokens of s split on a single space. Consecutive spaces
// produce empty words that take part in the mapping like any other word,
// but trailing empty words are dropped: "dog " is the single word "dog" and
// " " has no words at all. A sentence without any space, "" included, is
// exactly one word.
//
// API:
//
//	func WordPattern(pattern, s string) bool
//	func Bijection(pattern, s string) (map[rune]string, error)
//
// Errors returned by Bijection (all satisfy errors.Is(err, ErrInvalidArgument)):
//
//   - ErrLengthMismatch — pattern and sentence have different token counts.
//   - *ConflictError    — a position contradicts an established binding.
//
// Complexity: O(n + |s|) time, O(k) memory for k distinct symbols.
package wordpattern
