// SPDX-License-Identifier: MIT
// Package: chaosgame/chaos
//
// api.go - the two run modes.
//
// Contract (both modes):
//   - Validate sizes first (sides/stream), then counts.
//   - Build the polygon, rotate it if asked, sample the seed inside it,
//     then iterate with the mode's vertex source.
//   - Return only wrapped sentinel errors; never panic.
//
// Point counts:
//   - Game:     exactly `points` (seed + points-1 steps).
//   - Sequence: exactly len(stream)+1 (seed + one step per symbol).

package chaos

import (
	"fmt"

	"github.com/katalvlaran/chaosgame/alphabet"
	"github.com/katalvlaran/chaosgame/attractor"
	"github.com/katalvlaran/chaosgame/geometry"
	"github.com/katalvlaran/chaosgame/selector"
)

const (
	methodGame     = "Game"
	methodSequence = "Sequence"
)

// Mode names how a run chose its vertices.
type Mode string

const (
	// ModeChaos is uniform random vertex choice.
	ModeChaos Mode = "chaos"
	// ModeSequence is symbol-stream driven vertex choice.
	ModeSequence Mode = "sequence"
)

// Result is a finished run.
type Result struct {
	Mode Mode `json:"mode"`
	// Polygon holds the distinct vertices the run moved toward, after rotation.
	Polygon geometry.Polygon `json:"polygon"`
	// Labels names Polygon[i] for display.
	Labels []string `json:"labels"`
	// Points is the seed followed by one point per step.
	Points []geometry.Point `json:"points"`
	// Vertices is the vertex index consumed by each step.
	Vertices []int   `json:"vertices"`
	Fraction float64 `json:"fraction"`
	// Seed is the RNG seed, valid when Seeded is true.
	Seed   int64 `json:"seed"`
	Seeded bool  `json:"seeded"`
}

// Sides returns the number of polygon vertices.
func (r *Result) Sides() int {
	return r.Polygon.Len()
}

// Game plays the classic chaos game on a unit-edge regular polygon with the
// given number of sides and returns `points` points, seed included.
// With more than three sides the same vertex is never chosen twice in a row.
func Game(sides, points int, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)

	poly, err := geometry.Regular(sides)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGame, err)
	}
	if points < 1 {
		return nil, fmt.Errorf("%s: points=%d < 1: %w", methodGame, points, ErrBadCount)
	}
	poly = poly.Rotate(cfg.rotation)

	src, err := selector.NewRandom(poly.Len(), cfg.rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGame, err)
	}
	tr, err := play(poly, src, points-1, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGame, err)
	}

	return newResult(ModeChaos, poly, alphabet.Labels(poly.Len(), cfg.labelFn), tr, cfg), nil
}

// Sequence plays the chaos game driven by stream: every distinct symbol
// becomes a vertex (in order of first appearance) and every symbol, in
// order, moves the point toward its vertex.
func Sequence(stream []rune, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	if len(stream) == 0 {
		return nil, fmt.Errorf("%s: empty stream: %w", methodSequence, ErrBadCount)
	}

	alpha := alphabet.FromSymbols(stream)
	poly, err := geometry.Vertices(alpha.Len(), cfg.seqRadius)
	if err != nil {
		return nil, fmt.Errorf("%s: %d distinct symbols: %w", methodSequence, alpha.Len(), err)
	}
	poly = poly.Rotate(cfg.rotation)

	tr, err := play(poly, selector.NewSequence(stream, alpha), len(stream), cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSequence, err)
	}

	return newResult(ModeSequence, poly, alpha.Labels(), tr, cfg), nil
}

// SequenceString is Sequence over the runes of s.
func SequenceString(s string, opts ...Option) (*Result, error) {
	return Sequence([]rune(s), opts...)
}

// play seeds the run inside poly and iterates `steps` times.
func play(poly geometry.Polygon, src selector.Source, steps int, cfg config) (attractor.Trace, error) {
	seed, err := attractor.SampleSeed(poly, cfg.box, cfg.rng, cfg.maxAttempts)
	if err != nil {
		return attractor.Trace{}, err
	}

	return attractor.Run(poly, seed, src, cfg.fraction, steps)
}

func newResult(mode Mode, poly geometry.Polygon, labels []string, tr attractor.Trace, cfg config) *Result {
	return &Result{
		Mode:     mode,
		Polygon:  poly,
		Labels:   labels,
		Points:   tr.Points,
		Vertices: tr.Vertices,
		Fraction: cfg.fraction,
		Seed:     cfg.seed,
		Seeded:   cfg.seeded,
	}
}

