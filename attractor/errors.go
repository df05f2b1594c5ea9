// SPDX-License-Identifier: MIT
// Package: chaosgame/attractor
//
// errors.go - sentinel errors for the iteration engine.

package attractor

import "errors"

var (
	// ErrNilSource indicates a run was started without a vertex source.
	ErrNilSource = errors.New("attractor: vertex source is nil")

	// ErrNilSink indicates a stream was started without a point sink.
	ErrNilSink = errors.New("attractor: point sink is nil")

	// ErrVertexOutOfRange indicates a source returned an index the polygon
	// does not have.
	ErrVertexOutOfRange = errors.New("attractor: vertex index out of range")

	// ErrNegativeSteps indicates a negative step count.
	ErrNegativeSteps = errors.New("attractor: negative step count")

	// ErrSeedNotFound indicates rejection sampling hit its attempt cap
	// without landing inside the polygon.
	ErrSeedNotFound = errors.New("attractor: no seed point found inside polygon")
)
