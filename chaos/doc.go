// SPDX-License-Identifier: MIT

// Package chaos assembles full chaos-game runs from the lower layers.
//
// Two entry points mirror the two ways of driving the game:
//
//	Game(sides, points, opts...)  random vertex choice on a unit-edge
//	                              regular polygon; `points` points in total,
//	                              seed included.
//	Sequence(stream, opts...)     one vertex per distinct stream symbol;
//	                              one step per symbol, so len(stream)+1
//	                              points including the seed.
//
// Both return a Result with everything a renderer needs: the polygon, the
// labels of its vertices and the ordered point set, plus the vertex index
// each step consumed.
//
// Options are functional (Option func(*config)). Option constructors panic
// on meaningless values; the entry points themselves never panic and return
// sentinel errors. Runs are reproducible under WithSeed.
//
//	res, err := chaos.Game(3, 50000, chaos.WithSeed(1), chaos.WithFraction(0.5))
package chaos
