// SPDX-License-Identifier: MIT
// Package: chaosgame/selector
//
// errors.go - sentinel errors for vertex sources.

package selector

import "errors"

var (
	// ErrTooFewChoices indicates a random selector over fewer than three
	// vertices was requested.
	ErrTooFewChoices = errors.New("selector: at least 3 vertices are required")

	// ErrNeedRandSource indicates a random selector was built without an RNG.
	ErrNeedRandSource = errors.New("selector: rng is required")

	// ErrUnknownSymbol indicates a stream symbol missing from the alphabet.
	// It is fatal: skipping it would desynchronize the pattern from the data.
	ErrUnknownSymbol = errors.New("selector: symbol not in alphabet")

	// ErrExhausted indicates a finite source has no indices left.
	ErrExhausted = errors.New("selector: source exhausted")
)
