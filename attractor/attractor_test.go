package attractor_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/chaosgame/attractor"
	"github.com/katalvlaran/chaosgame/geometry"
	"github.com/katalvlaran/chaosgame/selector"
)

func square() geometry.Polygon {
	return geometry.Polygon{
		geometry.Pt(0, 0),
		geometry.Pt(2, 0),
		geometry.Pt(2, 2),
		geometry.Pt(0, 2),
	}
}

func TestStep_Midpoint(t *testing.T) {
	got := attractor.Step(geometry.Pt(0, 0), geometry.Pt(2, 2), 0.5)
	assert.Equal(t, geometry.Pt(1, 1), got)
}

func TestRun_KnownPath(t *testing.T) {
	tr, err := attractor.Run(square(), geometry.Pt(0, 0), selector.NewFixed(2, 1, 0), 0.5, 3)
	require.NoError(t, err)

	want := []geometry.Point{
		geometry.Pt(0, 0),
		geometry.Pt(1, 1),     // toward (2,2)
		geometry.Pt(1.5, 0.5), // toward (2,0)
		geometry.Pt(0.75, 0.25),
	}
	if diff := cmp.Diff(want, tr.Points, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{2, 1, 0}, tr.Vertices)
}

func TestRun_Counts(t *testing.T) {
	poly, err := geometry.Regular(5)
	require.NoError(t, err)
	src, err := selector.NewRandom(poly.Len(), rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	tr, err := attractor.Run(poly, geometry.Pt(0, 0), src, 0.5, 499)
	require.NoError(t, err)
	assert.Len(t, tr.Points, 500)
	assert.Len(t, tr.Vertices, 499)

	// zero steps emits only the seed
	tr, err = attractor.Run(poly, geometry.Pt(0.1, 0.2), selector.NewFixed(), 0.5, 0)
	require.NoError(t, err)
	assert.Equal(t, []geometry.Point{geometry.Pt(0.1, 0.2)}, tr.Points)
	assert.Empty(t, tr.Vertices)
}

func TestRun_Deterministic(t *testing.T) {
	poly, err := geometry.Regular(6)
	require.NoError(t, err)

	run := func() attractor.Trace {
		src, err := selector.NewRandom(poly.Len(), rand.New(rand.NewSource(77)))
		require.NoError(t, err)
		tr, err := attractor.Run(poly, geometry.Pt(0.2, 0.3), src, 0.667, 2000)
		require.NoError(t, err)
		return tr
	}
	a, b := run(), run()
	assert.True(t, cmp.Equal(a, b), "identical inputs must give identical traces")
}

// TestRun_StaysInsideTriangle relies on convexity: with r in (0,1] every
// point after an inside seed stays in the triangle.
func TestRun_StaysInsideTriangle(t *testing.T) {
	tri, err := geometry.Regular(3)
	require.NoError(t, err)
	src, err := selector.NewRandom(3, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	tr, err := attractor.Run(tri, geometry.Pt(0, 0), src, 0.5, 5000)
	require.NoError(t, err)
	b := tri.Bounds()
	b.Min = b.Min.Translate(r2.Vec{X: -1e-9, Y: -1e-9})
	b.Max = b.Max.Translate(r2.Vec{X: 1e-9, Y: 1e-9})
	for i, p := range tr.Points {
		require.True(t, b.Contains(p), "point %d %v left the bounding box", i, p)
	}
}

func TestRun_DegenerateFractions(t *testing.T) {
	seed := geometry.Pt(0.5, 0.5)

	tr, err := attractor.Run(square(), seed, selector.NewFixed(0, 1, 2), 0, 3)
	require.NoError(t, err)
	for _, p := range tr.Points {
		assert.Equal(t, seed, p)
	}

	tr, err = attractor.Run(square(), seed, selector.NewFixed(2), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, geometry.Pt(3.5, 3.5), tr.Points[1], "r>1 overshoots past the vertex")
}

func TestStream_Errors(t *testing.T) {
	seed := geometry.Pt(0, 0)
	discard := attractor.SinkFunc(func(geometry.Point) error { return nil })

	err := attractor.Stream(square(), seed, nil, 0.5, 1, discard)
	assert.ErrorIs(t, err, attractor.ErrNilSource)

	err = attractor.Stream(square(), seed, selector.NewFixed(0), 0.5, 1, nil)
	assert.ErrorIs(t, err, attractor.ErrNilSink)

	err = attractor.Stream(square(), seed, selector.NewFixed(0), 0.5, -1, discard)
	assert.ErrorIs(t, err, attractor.ErrNegativeSteps)

	err = attractor.Stream(square(), seed, selector.NewFixed(4), 0.5, 1, discard)
	assert.ErrorIs(t, err, attractor.ErrVertexOutOfRange)

	err = attractor.Stream(square(), seed, selector.NewFixed(0), 0.5, 2, discard)
	assert.ErrorIs(t, err, selector.ErrExhausted)

	boom := errors.New("disk full")
	emitted := 0
	failing := attractor.SinkFunc(func(geometry.Point) error {
		emitted++
		if emitted == 2 {
			return boom
		}
		return nil
	})
	err = attractor.Stream(square(), seed, selector.NewFixed(0, 1, 2), 0.5, 3, failing)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, emitted)

	_, err = attractor.Run(square(), seed, nil, 0.5, 1)
	assert.ErrorIs(t, err, attractor.ErrNilSource)
}

func TestSampleSeed(t *testing.T) {
	tri, err := geometry.Regular(3)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 100; i++ {
		p, err := attractor.SampleSeed(tri, geometry.UnitBox, rng, 0)
		require.NoError(t, err)
		assert.True(t, tri.Contains(p))
		assert.True(t, geometry.UnitBox.Contains(p))
	}
}

func TestSampleSeed_Cap(t *testing.T) {
	far := geometry.Polygon{geometry.Pt(10, 10), geometry.Pt(11, 10), geometry.Pt(11, 11)}
	_, err := attractor.SampleSeed(far, geometry.UnitBox, rand.New(rand.NewSource(1)), 100)
	assert.ErrorIs(t, err, attractor.ErrSeedNotFound)

	_, err = attractor.SampleSeed(far, geometry.UnitBox, nil, 1)
	assert.Error(t, err)
}
