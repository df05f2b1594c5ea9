// SPDX-License-Identifier: MIT

// Package attractor runs the chaos-game iteration.
//
// Given a polygon, a seed point, a selector.Source and a fraction r, each
// step asks the source for a vertex index and moves the current point the
// fraction r of the way toward that vertex:
//
//	next = cur + r·(vertex - cur)
//
// The seed is emitted first, then one point per step, so a run of `steps`
// steps emits steps+1 points. The engine holds no state of its own between
// runs; the current point lives only inside one call.
//
// SampleSeed draws the seed by rejection sampling from a box until the point
// falls inside the polygon. With no attempt cap it loops until it succeeds,
// which may never happen for a polygon that barely overlaps the box.
package attractor
