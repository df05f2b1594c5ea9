// SPDX-License-Identifier: MIT
// Package: chaosgame/geometry
//
// contains.go - point-in-polygon test and sampling boxes.
//
// Contains uses even-odd ray casting (PNPoly). Points exactly on an edge or
// vertex may report either result; callers must not rely on them.

package geometry

import "math/rand"

// Box is an axis-aligned rectangle [Min.X, Max.X] × [Min.Y, Max.Y].
type Box struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// UnitBox is [0,1] × [0,1], the region seed points are drawn from.
var UnitBox = Box{Min: Pt(0, 0), Max: Pt(1, 1)}

// Sample draws a point uniformly from b using rng.
func (b Box) Sample(rng *rand.Rand) Point {
	return Point{
		X: b.Min.X + rng.Float64()*(b.Max.X-b.Min.X),
		Y: b.Min.Y + rng.Float64()*(b.Max.Y-b.Min.Y),
	}
}

// Contains reports whether p lies inside b, edges included.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Contains reports whether p lies inside pg. Both the open ring and the
// Closed() form give the same answer: the zero-length closing edge never
// crosses the ray.
func (pg Polygon) Contains(p Point) bool {
	if len(pg) < MinSides {
		return false
	}
	in := false
	a := pg[len(pg)-1]
	for _, b := range pg {
		if crosses(p, a, b) {
			in = !in
		}
		a = b
	}

	return in
}

// crosses reports whether the horizontal ray from p towards +X crosses the
// segment a-b.
func crosses(p, a, b Point) bool {
	return (a.Y > p.Y) != (b.Y > p.Y) &&
		p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X
}
