// SPDX-License-Identifier: MIT
// Package: chaosgame/selector
//
// random.go - uniform vertex choice with immediate-repeat avoidance.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewChoices); rng != nil (else ErrNeedRandSource).
//   - n == 3: every index in 0..2 equally likely, history ignored.
//   - n > 3: uniform over 0..n-1, redrawn while equal to the previous pick.
//     The first pick is never redrawn.
//   - Terminates with probability 1 (at least two candidates remain).
//
// Determinism:
//   - Same seed and call sequence ⇒ same indices.

package selector

import (
	"fmt"
	"math/rand"
)

const (
	methodNewRandom = "NewRandom"

	// MinChoices is the smallest vertex count a random selector accepts.
	MinChoices = 3

	// repeatFreeAbove is the vertex count above which repeats are avoided.
	repeatFreeAbove = 3
)

// State is the memory a random selector carries between picks: the last
// index it returned, if any.
type State struct {
	Last  int
	Valid bool
}

// Random picks vertices uniformly at random.
type Random struct {
	n     int
	rng   *rand.Rand
	state State
}

// NewRandom returns a selector over n vertices drawing from rng.
func NewRandom(n int, rng *rand.Rand) (*Random, error) {
	if n < MinChoices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodNewRandom, n, MinChoices, ErrTooFewChoices)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodNewRandom, ErrNeedRandSource)
	}

	return &Random{n: n, rng: rng}, nil
}

// Choices returns the number of vertices the selector draws from.
func (r *Random) Choices() int {
	return r.n
}

// Pick draws the next index given st and returns it with the updated state.
// It does not touch the selector's own state.
func (r *Random) Pick(st State) (int, State) {
	i := r.rng.Intn(r.n)
	if r.n > repeatFreeAbove {
		for st.Valid && i == st.Last {
			i = r.rng.Intn(r.n)
		}
	}

	return i, State{Last: i, Valid: true}
}

// Next picks against the selector's own state. It never fails.
func (r *Random) Next() (int, error) {
	var i int
	i, r.state = r.Pick(r.state)
	return i, nil
}

// State returns the selector's current memory.
func (r *Random) State() State {
	return r.state
}

// Reset forgets the previous pick.
func (r *Random) Reset() {
	r.state = State{}
}
