// SPDX-License-Identifier: MIT
// Package: chaosgame/alphabet
//
// labels.go - vertex naming schemes for random-mode polygons.

package alphabet

import (
	"fmt"
	"strconv"
)

// LabelFn names vertex idx. It must be pure: the same idx always gives the
// same label. Panics indicate a programmer error in configuration.
type LabelFn func(idx int) string

// LetterLabel returns the uppercase Latin letter for idx in [0..25],
// e.g. 0→"A", 25→"Z". Panics outside that range.
func LetterLabel(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("LetterLabel: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ColumnLabel returns the spreadsheet-column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ColumnLabel(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ColumnLabel: idx must be ≥ 0, got %d", idx))
	}
	// letters are produced least significant first
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// DecimalLabel returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalLabel(idx int) string {
	return strconv.Itoa(idx)
}

// Labels names n vertices with fn. A nil fn means ColumnLabel.
func Labels(n int, fn LabelFn) []string {
	if fn == nil {
		fn = ColumnLabel
	}
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = fn(i)
	}

	return out
}
