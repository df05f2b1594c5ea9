// SPDX-License-Identifier: MIT
// Package: chaosgame/chaos
//
// errors.go - sentinel errors for the chaos package.
//
// Lower-layer sentinels (geometry.ErrTooFewSides, selector.ErrUnknownSymbol,
// attractor.ErrSeedNotFound, ...) pass through wrapped, so callers can
// branch on them with errors.Is as well.

package chaos

import "errors"

// ErrBadCount indicates a point count below one, or an empty symbol stream.
var ErrBadCount = errors.New("chaos: nothing to generate")
