package wordpattern

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// WordPattern reports whether s follows pattern, i.e. whether Bijection
// succeeds.
func WordPattern(pattern, s string) bool {
	_, err := Bijection(pattern, s)

	return err == nil
}

// Bijection pairs each symbol of pattern with the word of s at the same
// position and returns the resulting symbol→word mapping.
//
// It fails with ErrLengthMismatch when the token counts differ, and with a
// *ConflictError at the first position where a symbol would map to a second
// word or a word to a second symbol. Both errors wrap ErrInvalidArgument.
func Bijection(pattern, s string) (map[rune]string, error) {
	words := splitWords(s)
	symbols := decodeSymbols(pattern)
	if len(symbols) != len(words) {
		return nil, fmt.Errorf("%w: %d symbols, %d words",
			ErrLengthMismatch, len(symbols), len(words))
	}

	forward := make(map[rune]string, len(symbols))
	reverse := make(map[string]rune, len(words))

	for i, sym := range symbols {
		w := words[i]

		if bound, ok := forward[sym]; ok && bound != w {
			return nil, &ConflictError{Index: i, Symbol: sym, Word: w, Bound: bound}
		}
		if bound, ok := reverse[w]; ok && bound != sym {
			return nil, &ConflictError{Index: i, Symbol: sym, Word: w, Reverse: true, BoundSymbol: bound}
		}

		forward[sym] = w
		reverse[w] = sym
	}

	return forward, nil
}

// splitWords splits s on single spaces. When s contains at least one space,
// trailing empty words are dropped, so "dog " is one word and " " is none;
// a string without spaces (including "") is a single word.
func splitWords(s string) []string {
	words := strings.Split(s, " ")
	if len(words) == 1 {
		return words
	}
	for len(words) > 0 && words[len(words)-1] == "" {
		words = words[:len(words)-1]
	}

	return words
}

// decodeSymbols returns one symbol per character of pattern. Each byte of
// an invalid UTF-8 sequence becomes its own negative symbol -1-b instead of
// U+FFFD, so distinct invalid bytes never share a binding.
func decodeSymbols(pattern string) []rune {
	out := make([]rune, 0, len(pattern))
	for i := 0; i < len(pattern); {
		r, size := utf8.DecodeRuneInString(pattern[i:])
		if r == utf8.RuneError && size == 1 {
			r = -1 - rune(pattern[i])
		}
		out = append(out, r)
		i += size
	}

	return out
}
