package wordpattern

import (
	"errors"
	"fmt"
)

// Sentinel errors for wordpattern operations.
var (
	// ErrInvalidArgument is the base of every error returned by Bijection.
	ErrInvalidArgument = errors.New("wordpattern: invalid argument")

	// ErrLengthMismatch indicates the pattern and the sentence have a
	// different number of tokens, so no pairing can be formed.
	ErrLengthMismatch = fmt.Errorf("%w: pattern and sentence token counts differ", ErrInvalidArgument)
)

// ConflictError reports the first position at which the pattern and the
// sentence disagree.
//
// Exactly one side is already bound to something else. When Reverse is
// false, Symbol was previously paired with the word Bound; when Reverse is
// true, Word was previously paired with the symbol BoundSymbol.
type ConflictError struct {
	Index       int    // zero-based token position
	Symbol      rune   // pattern symbol at Index (-1-b for an invalid UTF-8 byte b)
	Word        string // sentence word at Index
	Reverse     bool   // conflict found in the word→symbol direction
	Bound       string // word Symbol is already bound to (forward conflicts)
	BoundSymbol rune   // symbol Word is already bound to (reverse conflicts)
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	if e.Reverse {
		return fmt.Sprintf("wordpattern: word %q at index %d already bound to %q, got %q",
			e.Word, e.Index, e.BoundSymbol, e.Symbol)
	}

	return fmt.Sprintf("wordpattern: symbol %q at index %d already bound to %q, got %q",
		e.Symbol, e.Index, e.Bound, e.Word)
}

// Unwrap lets errors.Is(err, ErrInvalidArgument) match a conflict.
func (e *ConflictError) Unwrap() error {
	return ErrInvalidArgument
}
