// SPDX-License-Identifier: MIT
// Package: chaosgame/chaos
//
// config.go - run configuration and its defaults.
//
// Defaults:
//   - fraction     = 0.5
//   - rng          = nil, resolved to a time-seeded source at run time
//   - rotation     = 0°
//   - seqRadius    = 2   (circumradius of sequence-mode polygons)
//   - box          = geometry.UnitBox
//   - maxAttempts  = 0   (unbounded seed sampling)
//   - labelFn      = alphabet.ColumnLabel (random mode only)

package chaos

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/chaosgame/alphabet"
	"github.com/katalvlaran/chaosgame/geometry"
)

const (
	// DefaultFraction halves the distance each step (Sierpinski for triangles).
	DefaultFraction = 0.5

	// DefaultSequenceRadius is the circumradius of sequence-mode polygons.
	DefaultSequenceRadius = 2.0
)

// config aggregates every knob of a run. It is resolved once per call and
// passed by value.
type config struct {
	fraction    float64
	rng         *rand.Rand
	seed        int64
	seeded      bool
	rotation    float64
	seqRadius   float64
	box         geometry.Box
	maxAttempts int
	labelFn     alphabet.LabelFn
}

// newConfig applies opts over the defaults, last option wins.
func newConfig(opts ...Option) config {
	cfg := config{
		fraction:  DefaultFraction,
		seqRadius: DefaultSequenceRadius,
		box:       geometry.UnitBox,
		labelFn:   alphabet.ColumnLabel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		// unseeded runs still report the seed they used
		cfg.seed = time.Now().UnixNano()
		cfg.seeded = true
		cfg.rng = rand.New(rand.NewSource(cfg.seed))
	}

	return cfg
}
