// SPDX-License-Identifier: MIT
// Package: chaosgame/selector
//
// sequence.go - vertex choice driven by a symbol stream.
//
// Contract:
//   - One index per symbol, in stream order; no randomness, no history.
//   - A symbol missing from the alphabet is a hard error (ErrUnknownSymbol).
//   - After the last symbol, Next reports ErrExhausted.

package selector

import (
	"fmt"

	"github.com/katalvlaran/chaosgame/alphabet"
)

const methodSequence = "Sequence"

// Sequence maps each symbol of a stream to its alphabet index.
type Sequence struct {
	stream []rune
	alpha  alphabet.Alphabet
	pos    int
}

// NewSequence returns a source that walks stream through a.
// Typically a is alphabet.FromSymbols(stream).
func NewSequence(stream []rune, a alphabet.Alphabet) *Sequence {
	return &Sequence{stream: stream, alpha: a}
}

// Next returns the index of the next symbol.
func (s *Sequence) Next() (int, error) {
	if s.pos >= len(s.stream) {
		return 0, fmt.Errorf("%s: after %d symbols: %w", methodSequence, len(s.stream), ErrExhausted)
	}
	sym := s.stream[s.pos]
	i, ok := s.alpha.Index(sym)
	if !ok {
		return 0, fmt.Errorf("%s: symbol %q at position %d: %w", methodSequence, sym, s.pos, ErrUnknownSymbol)
	}
	s.pos++

	return i, nil
}

// Len returns the total number of symbols in the stream.
func (s *Sequence) Len() int {
	return len(s.stream)
}

// Remaining returns how many symbols are left.
func (s *Sequence) Remaining() int {
	return len(s.stream) - s.pos
}
