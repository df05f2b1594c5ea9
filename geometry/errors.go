// SPDX-License-Identifier: MIT
// Package: chaosgame/geometry
//
// errors.go - sentinel errors for the geometry package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package geometry

import "errors"

// ErrTooFewSides indicates a polygon with fewer than MinSides sides was
// requested. A regular polygon is undefined below three sides.
var ErrTooFewSides = errors.New("geometry: polygon needs at least 3 sides")
