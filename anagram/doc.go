// Package anagram decides whether two strings are anagrams of each other,
// i.e. whether they consist of exactly the same multiset of characters.
//
// Characters are Unicode code points (runes), so "résumé" and "émusér"
// are anagrams even though the accented letters take two bytes each.
// Comparison is exact: case, spaces and punctuation all count.
//
// Invalid UTF-8 is not folded into U+FFFD. Every byte that does not start
// a valid sequence is its own character, so "\xff" and "\xfe" are not
// anagrams, and neither are "\xff" and "\uFFFD".
//
// Two interchangeable algorithms are provided:
//
//   - IsAnagram       — sort both rune slices, compare element-wise.
//     Time O(n log n), memory O(n).
//   - IsAnagramCount  — count rune frequencies of s, subtract those of t.
//     Time O(n), memory O(k) for k distinct runes.
//
// Both fail fast when the rune counts differ and always agree on the result.
package anagram
