package wordpattern_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/practice/wordpattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWordPattern_Table covers the canonical cases and splitting edge cases.
func TestWordPattern_Table(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		s       string
		want    bool
	}{
		{"bijection", "abba", "dog cat cat dog", true},
		{"symbol to two words", "abba", "dog cat cat fish", false},
		{"one symbol many words", "aaaa", "dog cat cat dog", false},
		{"one word many symbols", "abba", "dog dog dog dog", false},
		{"too few words", "abc", "dog cat", false},
		{"too many words", "ab", "dog cat fish", false},
		{"single", "z", "word", true},
		{"empty pattern, empty sentence", "", "", false},
		{"unicode symbols", "αβα", "x y x", true},
		{"double space yields empty word", "aba", "x  x", true},
		{"trailing space adds no word", "ab", "x ", false},
		{"trailing space dropped", "a", "dog ", true},
		{"several trailing spaces dropped", "ab", "x y   ", true},
		{"only spaces has no words", "", " ", true},
		{"only spaces vs one symbol", "a", "  ", false},
		{"distinct invalid bytes", "\xff\xfe", "x y", true},
		{"repeated invalid byte", "\xff\xff", "x y", false},
		{"invalid byte vs replacement char", "\xff\uFFFD", "x y", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, wordpattern.WordPattern(tc.pattern, tc.s))
		})
	}
}

// TestBijection_Mapping checks the returned forward mapping.
func TestBijection_Mapping(t *testing.T) {
	m, err := wordpattern.Bijection("abba", "dog cat cat dog")
	require.NoError(t, err)
	assert.Equal(t, map[rune]string{'a': "dog", 'b': "cat"}, m)
}

// TestBijection_InvalidUTF8Keys checks that invalid bytes get their own
// negative keys in the mapping.
func TestBijection_InvalidUTF8Keys(t *testing.T) {
	m, err := wordpattern.Bijection("\xffa\xfe", "x y z")
	require.NoError(t, err)
	assert.Equal(t, map[rune]string{-1 - 0xff: "x", 'a': "y", -1 - 0xfe: "z"}, m)
}

// TestBijection_LengthMismatch checks the sentinel chain.
func TestBijection_LengthMismatch(t *testing.T) {
	m, err := wordpattern.Bijection("abc", "dog cat")
	assert.Nil(t, m)
	assert.ErrorIs(t, err, wordpattern.ErrLengthMismatch)
	assert.ErrorIs(t, err, wordpattern.ErrInvalidArgument)
}

// TestBijection_ForwardConflict reports a symbol already bound to another word.
func TestBijection_ForwardConflict(t *testing.T) {
	_, err := wordpattern.Bijection("abba", "dog cat cat fish")
	require.Error(t, err)
	assert.ErrorIs(t, err, wordpattern.ErrInvalidArgument)

	var ce *wordpattern.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 3, ce.Index)
	assert.Equal(t, 'a', ce.Symbol)
	assert.Equal(t, "fish", ce.Word)
	assert.False(t, ce.Reverse)
	assert.Equal(t, "dog", ce.Bound)
	assert.Contains(t, ce.Error(), `already bound to "dog"`)
}

// TestBijection_ReverseConflict reports a word already bound to another symbol.
func TestBijection_ReverseConflict(t *testing.T) {
	_, err := wordpattern.Bijection("abba", "dog dog dog dog")

	var ce *wordpattern.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 1, ce.Index)
	assert.Equal(t, 'b', ce.Symbol)
	assert.True(t, ce.Reverse)
	assert.Equal(t, 'a', ce.BoundSymbol)
	assert.Contains(t, ce.Error(), `word "dog" at index 1`)
}

// TestBijection_Idempotent calls twice with identical input.
func TestBijection_Idempotent(t *testing.T) {
	m1, err1 := wordpattern.Bijection("xyzx", "a b c a")
	m2, err2 := wordpattern.Bijection("xyzx", "a b c a")
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, m1, m2)
}
