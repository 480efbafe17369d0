package domain

import "fmt"

// Alphabet is an ordered set of distinct symbols with a bijection to the
// contiguous index range 0..Size()-1. It is immutable after construction.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an alphabet from the given symbol sequence.
// Duplicate symbols fail with ErrMalformedAlphabet.
func NewAlphabet(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, seen := index[r]; seen {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrMalformedAlphabet, r)
		}
		index[r] = i
	}
	return &Alphabet{symbols: runes, index: index}, nil
}

// Size returns the number of symbols in the alphabet.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Contains reports whether the symbol is part of the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// ToIndex maps a symbol to its index.
func (a *Alphabet) ToIndex(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
	}
	return i, nil
}

// ToSymbol maps an index back to its symbol.
func (a *Alphabet) ToSymbol(i int) (rune, error) {
	if i < 0 || i >= len(a.symbols) {
		return 0, fmt.Errorf("%w: index %d out of range", ErrInvalidSymbol, i)
	}
	return a.symbols[i], nil
}

// String returns the alphabet's symbols in order.
func (a *Alphabet) String() string {
	return string(a.symbols)
}

// Equal reports whether both alphabets hold the identical symbol-to-index
// correspondence.
func (a *Alphabet) Equal(other *Alphabet) bool {
	if other == nil || len(a.symbols) != len(other.symbols) {
		return false
	}
	for i, r := range a.symbols {
		if other.symbols[i] != r {
			return false
		}
	}
	return true
}
