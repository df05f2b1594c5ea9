// SPDX-License-Identifier: MIT
// Package: chaosgame/geometry
//
// json.go - JSON encoding of points.
//
// Contract:
//   - Finite coordinates encode as JSON numbers.
//   - NaN, +Inf and -Inf encode as the strings "NaN", "+Inf" and "-Inf",
//     so diverging runs (fraction outside (0,1)) stay encodable.
//   - Decoding accepts both forms; null or a missing field decodes as 0.

package geometry

import (
	"encoding/json"
	"fmt"
	"math"
)

// coord is a float64 whose JSON form admits non-finite values.
type coord float64

// MarshalJSON implements json.Marshaler.
func (c coord) MarshalJSON() ([]byte, error) {
	v := float64(c)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *coord) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || data[0] != '"' {
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*c = coord(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "NaN":
		*c = coord(math.NaN())
	case "+Inf", "Inf":
		*c = coord(math.Inf(1))
	case "-Inf":
		*c = coord(math.Inf(-1))
	default:
		return fmt.Errorf("geometry: coordinate %q is not a number", s)
	}
	return nil
}

type pointJSON struct {
	X coord `json:"x"`
	Y coord `json:"y"`
}

// MarshalJSON encodes p as {"x":..,"y":..}.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(pointJSON{X: coord(p.X), Y: coord(p.Y)})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (p *Point) UnmarshalJSON(data []byte) error {
	var w pointJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.X, p.Y = float64(w.X), float64(w.Y)
	return nil
}
