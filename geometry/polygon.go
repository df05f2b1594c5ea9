// SPDX-License-Identifier: MIT
// Package: chaosgame/geometry
//
// polygon.go - regular polygon construction.
//
// Contract:
//   - sides ≥ MinSides (else ErrTooFewSides).
//   - Radius(n) gives the circumradius of the unit-edge regular n-gon.
//   - Vertices(n, R) places vertex i at angle i·2π/n, (sin·R, cos·R),
//     rounded to Precision decimals.
//
// Complexity:
//   - Radius: O(1). Vertices/Regular: O(n) time and space.

package geometry

import (
	"fmt"
	"math"
)

const (
	methodRadius   = "Radius"
	methodVertices = "Vertices"

	// MinSides is the smallest polygon the chaos game accepts.
	MinSides = 3

	// Precision is the number of decimals kept for generated vertices.
	Precision = 4
)

// Polygon is an ordered, open ring of vertices. The closing edge from the
// last vertex back to the first is implicit.
type Polygon []Point

// Radius returns the circumradius R of a regular polygon with the given
// number of sides and unit edge length:
//
//	theta = 2π/sides, alpha = (π - theta)/2, R = sin(alpha)/sin(theta)
func Radius(sides int) (float64, error) {
	if sides < MinSides {
		return 0, fmt.Errorf("%s: sides=%d < min=%d: %w", methodRadius, sides, MinSides, ErrTooFewSides)
	}
	theta := 2 * math.Pi / float64(sides) // central angle
	alpha := (math.Pi - theta) / 2        // base angle of the isosceles slice

	return math.Sin(alpha) / math.Sin(theta), nil
}

// Vertices returns sides points equally spaced on the circle of the given
// radius, starting on the positive Y axis and advancing clockwise.
func Vertices(sides int, radius float64) (Polygon, error) {
	if sides < MinSides {
		return nil, fmt.Errorf("%s: sides=%d < min=%d: %w", methodVertices, sides, MinSides, ErrTooFewSides)
	}
	segment := 2 * math.Pi / float64(sides)
	poly := make(Polygon, sides)
	for i := range poly {
		sin, cos := math.Sincos(segment * float64(i))
		poly[i] = Point{X: sin * radius, Y: cos * radius}.Round(Precision)
	}

	return poly, nil
}

// Regular returns the unit-edge regular polygon with the given number of
// sides. It is Vertices(sides, Radius(sides)).
func Regular(sides int) (Polygon, error) {
	r, err := Radius(sides)
	if err != nil {
		return nil, err
	}

	return Vertices(sides, r)
}

// Len returns the number of distinct vertices.
func (pg Polygon) Len() int {
	return len(pg)
}

// Vertex returns vertex i and whether i is a valid index.
func (pg Polygon) Vertex(i int) (Point, bool) {
	if i < 0 || i >= len(pg) {
		return Point{}, false
	}
	return pg[i], true
}

// Closed returns a copy of the boundary with the first vertex repeated at
// the end. An already closed ring is returned as a copy unchanged.
func (pg Polygon) Closed() []Point {
	if len(pg) == 0 {
		return nil
	}
	out := make([]Point, len(pg), len(pg)+1)
	copy(out, pg)
	if pg[0] == pg[len(pg)-1] && len(pg) > 1 {
		return out
	}

	return append(out, pg[0])
}

// Rotate returns a copy of pg rotated by deg degrees about the origin.
// Positive angles rotate counter-clockwise.
func (pg Polygon) Rotate(deg float64) Polygon {
	out := make(Polygon, len(pg))
	if deg == 0 {
		copy(out, pg)
		return out
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	for i, p := range pg {
		out[i] = Point{
			X: p.X*cos - p.Y*sin,
			Y: p.X*sin + p.Y*cos,
		}
	}

	return out
}

// Bounds returns the axis-aligned bounding box of pg.
func (pg Polygon) Bounds() Box {
	if len(pg) == 0 {
		return Box{}
	}
	b := Box{Min: pg[0], Max: pg[0]}
	for _, p := range pg[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}

	return b
}
