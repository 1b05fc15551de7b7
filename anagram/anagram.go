package anagram

import (
	"slices"
	"unicode/utf8"
)

// IsAnagram reports whether s and t contain the same characters with the
// same multiplicities.
//
// Strings of different character length are rejected before any sorting.
func IsAnagram(s, t string) bool {
	if utf8.RuneCountInString(s) != utf8.RuneCountInString(t) {
		return false
	}

	rs, rt := characters(s), characters(t)
	slices.Sort(rs)
	slices.Sort(rt)

	for i := range rs {
		if rs[i] != rt[i] {
			return false
		}
	}

	return true
}

// IsAnagramCount is the frequency-count variant of IsAnagram: it tallies
// the characters of s and removes those of t, failing on the first
// character of t that has no remaining partner.
func IsAnagramCount(s, t string) bool {
	if utf8.RuneCountInString(s) != utf8.RuneCountInString(t) {
		return false
	}

	counts := make(map[rune]int)
	for _, r := range characters(s) {
		counts[r]++
	}
	for _, r := range characters(t) {
		if counts[r] == 0 {
			return false
		}
		counts[r]--
	}

	// equal lengths and no underflow imply every count is back to zero
	return true
}

// characters decodes s into one value per character. Valid runes map to
// themselves; each byte of an invalid UTF-8 sequence maps to its own
// negative value -1-b, so distinct invalid bytes stay distinct and never
// collide with a real U+FFFD.
func characters(s string) []rune {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = -1 - rune(s[i])
		}
		out = append(out, r)
		i += size
	}

	return out
}
