// SPDX-License-Identifier: MIT
// Package: chaosgame/store
//
// errors.go - sentinel errors for the run repository.

package store

import "errors"

var (
	// ErrNotFound indicates no run has the requested id.
	ErrNotFound = errors.New("store: run not found")

	// ErrNilResult indicates an attempt to save nothing.
	ErrNilResult = errors.New("store: nil result")
)
