// SPDX-License-Identifier: MIT
// Package: chaosgame/alphabet
//
// alphabet.go - first-seen-order symbol to index mapping.
//
// Contract:
//   - Deterministic: equal streams give equal alphabets.
//   - Index of a symbol = number of distinct symbols seen before its first
//     occurrence.
//   - Immutable: accessors return copies.
//
// Complexity:
//   - FromSymbols: O(len(stream)) time, O(distinct) space.
//   - Index: O(1) average.

package alphabet

// Alphabet is an immutable bijection between symbols and the indices
// 0..Len()-1, in order of first appearance.
type Alphabet struct {
	index   map[rune]int
	symbols []rune
}

// FromSymbols scans stream once and assigns each new symbol the next index.
func FromSymbols(stream []rune) Alphabet {
	a := Alphabet{index: make(map[rune]int)}
	for _, s := range stream {
		if _, seen := a.index[s]; seen {
			continue
		}
		a.index[s] = len(a.symbols)
		a.symbols = append(a.symbols, s)
	}

	return a
}

// FromString is FromSymbols over the runes of s.
func FromString(s string) Alphabet {
	return FromSymbols([]rune(s))
}

// Index returns the vertex index of sym and whether sym belongs to a.
func (a Alphabet) Index(sym rune) (int, bool) {
	i, ok := a.index[sym]
	return i, ok
}

// Symbol returns the symbol mapped to index i.
func (a Alphabet) Symbol(i int) (rune, bool) {
	if i < 0 || i >= len(a.symbols) {
		return 0, false
	}
	return a.symbols[i], true
}

// Len returns the number of distinct symbols.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols returns the symbols ordered by index.
func (a Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Labels returns the symbols as strings ordered by index, suitable for
// naming the vertices of the polygon the alphabet drives.
func (a Alphabet) Labels() []string {
	out := make([]string, len(a.symbols))
	for i, s := range a.symbols {
		out[i] = string(s)
	}
	return out
}
