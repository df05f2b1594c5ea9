// SPDX-License-Identifier: MIT
// Package: chaosgame/geometry
//
// point.go - the Point value type.
//
// Point has the same layout as gonum's r2.Vec, so vector arithmetic is
// delegated to r2 through plain conversions.

package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position in the plane. It has no identity beyond its value.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vec returns p as a gonum vector.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// FromVec converts a gonum vector back into a Point.
func FromVec(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// Sub returns the displacement p-o.
func (p Point) Sub(o Point) r2.Vec {
	return r2.Sub(p.Vec(), o.Vec())
}

// Translate moves p by d.
func (p Point) Translate(d r2.Vec) Point {
	return FromVec(r2.Add(p.Vec(), d))
}

// Toward moves p the fraction r of the way to target.
// r is not clamped: 0 keeps p, 1 lands on target, >1 overshoots.
func (p Point) Toward(target Point, r float64) Point {
	return p.Translate(r2.Scale(r, target.Sub(p)))
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return r2.Norm(p.Sub(o))
}

// Round rounds both coordinates to the given number of decimal places.
func (p Point) Round(places int) Point {
	return Point{X: roundTo(p.X, places), Y: roundTo(p.Y, places)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// roundTo rounds v half away from zero at the given decimal place.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	r := math.Round(v*scale) / scale
	if r == 0 {
		// normalize -0 so printed vertices stay stable
		return 0
	}
	return r
}
