package domain

import (
	"fmt"
	"unicode"
)

// Permutation is a bijection on alphabet indices, specified in cycle
// notation: "(cccc) (cc) ...". Symbols absent from every cycle map to
// themselves via singleton cycles added at construction. The structure is
// immutable once built; Permute and Invert are pure functions of the index.
type Permutation struct {
	alphabet *Alphabet
	cycles   [][]rune
}

// NewPermutation parses a cycle-notation string over the given alphabet.
// Whitespace between cycles is ignored; whitespace inside an open cycle,
// unbalanced markers, symbols outside the alphabet, symbols outside any
// cycle, and symbols appearing twice all fail with ErrMalformedPermutation.
func NewPermutation(cycles string, alphabet *Alphabet) (*Permutation, error) {
	p := &Permutation{alphabet: alphabet}

	inCycle := false
	var curr []rune
	for _, r := range cycles {
		switch {
		case unicode.IsSpace(r):
			if inCycle {
				return nil, fmt.Errorf("%w: whitespace inside cycle", ErrMalformedPermutation)
			}
		case r == '(':
			if inCycle {
				return nil, fmt.Errorf("%w: nested cycle marker", ErrMalformedPermutation)
			}
			inCycle = true
		case r == ')':
			if !inCycle {
				return nil, fmt.Errorf("%w: unexpected cycle close", ErrMalformedPermutation)
			}
			if err := p.addCycle(curr); err != nil {
				return nil, err
			}
			curr = nil
			inCycle = false
		default:
			if !inCycle {
				return nil, fmt.Errorf("%w: symbol %q outside cycle", ErrMalformedPermutation, r)
			}
			curr = append(curr, r)
		}
	}
	if inCycle {
		return nil, fmt.Errorf("%w: unclosed cycle", ErrMalformedPermutation)
	}

	// Every symbol not named by an explicit cycle maps to itself.
	for i := 0; i < alphabet.Size(); i++ {
		r, _ := alphabet.ToSymbol(i)
		if !p.placed(r) {
			p.cycles = append(p.cycles, []rune{r})
		}
	}

	return p, nil
}

// addCycle appends the cycle c0->c1->...->cm->c0, rejecting symbols that are
// not in the alphabet or that already belong to another cycle.
func (p *Permutation) addCycle(cycle []rune) error {
	seen := make(map[rune]bool, len(cycle))
	for _, r := range cycle {
		if !p.alphabet.Contains(r) {
			return fmt.Errorf("%w: symbol %q not in alphabet", ErrMalformedPermutation, r)
		}
		if seen[r] || p.placed(r) {
			return fmt.Errorf("%w: symbol %q appears in two cycles", ErrMalformedPermutation, r)
		}
		seen[r] = true
	}
	p.cycles = append(p.cycles, cycle)
	return nil
}

func (p *Permutation) placed(r rune) bool {
	for _, c := range p.cycles {
		for _, s := range c {
			if s == r {
				return true
			}
		}
	}
	return false
}

// Size returns the size of the alphabet this permutation is defined over.
func (p *Permutation) Size() int {
	return p.alphabet.Size()
}

// Alphabet returns the alphabet this permutation is defined over.
func (p *Permutation) Alphabet() *Alphabet {
	return p.alphabet
}

// Wrap maps any integer into 0..Size()-1, correcting negative remainders.
func (p *Permutation) Wrap(v int) int {
	r := v % p.Size()
	if r < 0 {
		r += p.Size()
	}
	return r
}

// Permute applies the permutation to an index (wrapped into range): the
// result is one step forward within the index's cycle.
func (p *Permutation) Permute(i int) int {
	return p.shift(i, 1)
}

// Invert applies the inverse permutation to an index (wrapped into range):
// the result is one step backward within the index's cycle.
func (p *Permutation) Invert(i int) int {
	return p.shift(i, -1)
}

// shift locates the index's symbol within its cycle and moves the given
// number of steps circularly. A linear scan is fine here: alphabets are
// tiny and every symbol is guaranteed to sit in exactly one cycle.
func (p *Permutation) shift(i, steps int) int {
	r, _ := p.alphabet.ToSymbol(p.Wrap(i))
	for _, c := range p.cycles {
		for at, s := range c {
			if s != r {
				continue
			}
			next := (at + steps) % len(c)
			if next < 0 {
				next += len(c)
			}
			out, _ := p.alphabet.ToIndex(c[next])
			return out
		}
	}
	// Unreachable: construction places every alphabet symbol in a cycle.
	return p.Wrap(i)
}

// PermuteSymbol applies the permutation to a symbol of the alphabet.
func (p *Permutation) PermuteSymbol(r rune) (rune, error) {
	i, err := p.alphabet.ToIndex(r)
	if err != nil {
		return 0, err
	}
	return p.alphabet.ToSymbol(p.Permute(i))
}

// InvertSymbol applies the inverse permutation to a symbol of the alphabet.
func (p *Permutation) InvertSymbol(r rune) (rune, error) {
	i, err := p.alphabet.ToIndex(r)
	if err != nil {
		return 0, err
	}
	return p.alphabet.ToSymbol(p.Invert(i))
}

// Derangement reports whether no symbol maps to itself, i.e. the permutation
// has no singleton cycles. Reflector and plugboard legality checks build on
// this; the permutation itself does not enforce it.
func (p *Permutation) Derangement() bool {
	for _, c := range p.cycles {
		if len(c) == 1 {
			return false
		}
	}
	return true
}
