// SPDX-License-Identifier: MIT
// Package: chaosgame/chaos
//
// options.go - functional options for runs.
//
// Contract:
//   - Option constructors validate and panic on meaningless input
//     (nil rng, nil label scheme, non-positive radius, empty box,
//     negative attempt cap).
//   - The fraction is never validated: values outside (0,1) are legal and
//     simply degenerate.

package chaos

import (
	"math/rand"

	"github.com/katalvlaran/chaosgame/alphabet"
	"github.com/katalvlaran/chaosgame/geometry"
)

// Option customizes a run.
type Option func(*config)

// WithFraction sets r, the fraction of the remaining distance covered per step.
func WithFraction(r float64) Option {
	return func(c *config) {
		c.fraction = r
	}
}

// WithSeed seeds a fresh RNG, making the run reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
		c.seed = seed
		c.seeded = true
	}
}

// WithRand uses r for every random draw of the run. The run's Result
// reports no seed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("chaos: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
		c.seed = 0
		c.seeded = false
	}
}

// WithRotation rotates the polygon by deg degrees (counter-clockwise)
// before the run. Polygons start with a vertex on the positive Y axis; the
// classic chaos-game plots draw every polygon but the triangle tilted by
// -45°, which turns the DNA square into an axis-aligned one. Pass
// WithRotation(-45) to reproduce them.
func WithRotation(deg float64) Option {
	return func(c *config) {
		c.rotation = deg
	}
}

// WithRadius sets the circumradius of sequence-mode polygons.
func WithRadius(radius float64) Option {
	if radius <= 0 {
		panic("chaos: WithRadius(radius<=0)")
	}
	return func(c *config) {
		c.seqRadius = radius
	}
}

// WithSampleBox sets the box the seed point is drawn from.
func WithSampleBox(b geometry.Box) Option {
	if b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y {
		panic("chaos: WithSampleBox(empty box)")
	}
	return func(c *config) {
		c.box = b
	}
}

// WithMaxSeedAttempts caps seed rejection sampling. 0 means no cap.
func WithMaxSeedAttempts(n int) Option {
	if n < 0 {
		panic("chaos: WithMaxSeedAttempts(n<0)")
	}
	return func(c *config) {
		c.maxAttempts = n
	}
}

// WithLabels sets how random-mode vertices are named. Sequence mode always
// labels vertices with their symbols.
func WithLabels(fn alphabet.LabelFn) Option {
	if fn == nil {
		panic("chaos: WithLabels(nil)")
	}
	return func(c *config) {
		c.labelFn = fn
	}
}
