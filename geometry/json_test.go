package geometry_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chaosgame/geometry"
)

func TestPointJSON_Finite(t *testing.T) {
	pts := []geometry.Point{geometry.Pt(0.25, -1.5), geometry.Pt(1e-7, 3e21), {}}

	data, err := json.Marshal(pts)
	require.NoError(t, err)
	assert.Equal(t, `[{"x":0.25,"y":-1.5},{"x":1e-7,"y":3e+21},{"x":0,"y":0}]`, string(data))

	var back []geometry.Point
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, pts, back)
}

func TestPointJSON_NonFinite(t *testing.T) {
	pts := []geometry.Point{
		geometry.Pt(math.Inf(1), math.Inf(-1)),
		geometry.Pt(math.NaN(), 2),
	}

	data, err := json.Marshal(pts)
	require.NoError(t, err)
	assert.Equal(t, `[{"x":"+Inf","y":"-Inf"},{"x":"NaN","y":2}]`, string(data))

	var back []geometry.Point
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back, 2)
	assert.True(t, math.IsInf(back[0].X, 1))
	assert.True(t, math.IsInf(back[0].Y, -1))
	assert.True(t, math.IsNaN(back[1].X))
	assert.Equal(t, 2.0, back[1].Y)
}

func TestPointJSON_Decode(t *testing.T) {
	var p geometry.Point
	require.NoError(t, json.Unmarshal([]byte(`{"x":"Inf","y":null}`), &p))
	assert.True(t, math.IsInf(p.X, 1))
	assert.Zero(t, p.Y)

	assert.Error(t, json.Unmarshal([]byte(`{"x":"far"}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"x":true}`), &p))
}
