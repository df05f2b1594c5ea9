// SPDX-License-Identifier: MIT
// Package: chaosgame/attractor
//
// attractor.go - the iteration loop.
//
// Contract:
//   - Stream emits seed, then exactly `steps` interpolated points.
//   - Each step consumes exactly one index from the source, in order.
//   - Source and sink errors abort the run and are returned wrapped.
//   - r is used as given; no clamping.
//
// Complexity:
//   - Time: O(steps) plus the source's cost. Space: O(1) for Stream,
//     O(steps) for Run.

package attractor

import (
	"fmt"

	"github.com/katalvlaran/chaosgame/geometry"
	"github.com/katalvlaran/chaosgame/selector"
)

const (
	methodStream = "Stream"
	methodRun    = "Run"
)

// Sink receives the points of a run in emission order.
type Sink interface {
	Emit(p geometry.Point) error
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(p geometry.Point) error

// Emit calls f.
func (f SinkFunc) Emit(p geometry.Point) error { return f(p) }

// Trace is the full record of one run.
type Trace struct {
	// Points holds the seed followed by one point per step.
	Points []geometry.Point
	// Vertices holds the vertex index consumed by each step;
	// len(Vertices) == len(Points)-1.
	Vertices []int
}

// Step moves cur the fraction r of the way toward target.
func Step(cur, target geometry.Point, r float64) geometry.Point {
	return cur.Toward(target, r)
}

// Stream runs `steps` iterations from seed and hands every point,
// seed first, to sink.
func Stream(poly geometry.Polygon, seed geometry.Point, src selector.Source, r float64, steps int, sink Sink) error {
	if src == nil {
		return fmt.Errorf("%s: %w", methodStream, ErrNilSource)
	}
	if sink == nil {
		return fmt.Errorf("%s: %w", methodStream, ErrNilSink)
	}
	if steps < 0 {
		return fmt.Errorf("%s: steps=%d: %w", methodStream, steps, ErrNegativeSteps)
	}

	cur := seed
	if err := sink.Emit(cur); err != nil {
		return fmt.Errorf("%s: emit seed: %w", methodStream, err)
	}
	for i := 0; i < steps; i++ {
		idx, err := src.Next()
		if err != nil {
			return fmt.Errorf("%s: step %d: %w", methodStream, i, err)
		}
		target, ok := poly.Vertex(idx)
		if !ok {
			return fmt.Errorf("%s: step %d: index %d of %d vertices: %w",
				methodStream, i, idx, poly.Len(), ErrVertexOutOfRange)
		}
		cur = Step(cur, target, r)
		if err := sink.Emit(cur); err != nil {
			return fmt.Errorf("%s: emit step %d: %w", methodStream, i, err)
		}
	}

	return nil
}

// Run is Stream into memory. It also records the vertex index used by
// every step.
func Run(poly geometry.Polygon, seed geometry.Point, src selector.Source, r float64, steps int) (Trace, error) {
	if src == nil {
		return Trace{}, fmt.Errorf("%s: %w", methodRun, ErrNilSource)
	}
	if steps < 0 {
		return Trace{}, fmt.Errorf("%s: steps=%d: %w", methodRun, steps, ErrNegativeSteps)
	}

	rec := selector.Record(src, steps)
	points := make([]geometry.Point, 0, steps+1)
	collect := SinkFunc(func(p geometry.Point) error {
		points = append(points, p)
		return nil
	})
	if err := Stream(poly, seed, rec, r, steps, collect); err != nil {
		return Trace{}, err
	}

	return Trace{Points: points, Vertices: rec.Indices()}, nil
}
