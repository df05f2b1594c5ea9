// SPDX-License-Identifier: MIT
// Package: chaosgame/attractor
//
// seed.go - rejection sampling of the first point.

package attractor

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/chaosgame/geometry"
)

const methodSampleSeed = "SampleSeed"

// SampleSeed draws points uniformly from box until one lies inside poly.
// maxAttempts <= 0 means no cap: the call blocks until it succeeds.
// With a cap, exhausting it returns ErrSeedNotFound.
func SampleSeed(poly geometry.Polygon, box geometry.Box, rng *rand.Rand, maxAttempts int) (geometry.Point, error) {
	if rng == nil {
		return geometry.Point{}, fmt.Errorf("%s: rng is nil", methodSampleSeed)
	}
	for attempt := 1; maxAttempts <= 0 || attempt <= maxAttempts; attempt++ {
		p := box.Sample(rng)
		if poly.Contains(p) {
			return p, nil
		}
	}

	return geometry.Point{}, fmt.Errorf("%s: %d attempts: %w", methodSampleSeed, maxAttempts, ErrSeedNotFound)
}
