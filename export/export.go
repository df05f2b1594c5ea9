// SPDX-License-Identifier: MIT
// Package: chaosgame/export
//
// export.go - CSV and JSON writers.

package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/chaosgame/chaos"
)

// Format selects an output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ErrUnknownFormat indicates an unsupported format name.
var ErrUnknownFormat = errors.New("export: unknown format")

// ErrNilResult indicates there is nothing to write.
var ErrNilResult = errors.New("export: nil result")

// ParseFormat resolves a case-insensitive format name. Empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("ParseFormat: %q: %w", s, ErrUnknownFormat)
	}
}

// Write encodes res to w in the given format.
func Write(w io.Writer, res *chaos.Result, f Format) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, res)
	case FormatJSON:
		return WriteJSON(w, res)
	default:
		return fmt.Errorf("Write: %q: %w", f, ErrUnknownFormat)
	}
}

// WriteCSV writes the header "i,x,y,vertex" followed by one row per point.
func WriteCSV(w io.Writer, res *chaos.Result) error {
	if res == nil {
		return fmt.Errorf("WriteCSV: %w", ErrNilResult)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"i", "x", "y", "vertex"}); err != nil {
		return fmt.Errorf("WriteCSV: header: %w", err)
	}

	row := make([]string, 4)
	for i, p := range res.Points {
		row[0] = strconv.Itoa(i)
		row[1] = strconv.FormatFloat(p.X, 'g', -1, 64)
		row[2] = strconv.FormatFloat(p.Y, 'g', -1, 64)
		row[3] = ""
		// point i (i ≥ 1) was produced by step i-1
		if i > 0 && i-1 < len(res.Vertices) {
			row[3] = strconv.Itoa(res.Vertices[i-1])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("WriteCSV: row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: flush: %w", err)
	}

	return nil
}

// WriteJSON writes res as one JSON document.
func WriteJSON(w io.Writer, res *chaos.Result) error {
	if res == nil {
		return fmt.Errorf("WriteJSON: %w", ErrNilResult)
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}

	return nil
}
