// SPDX-License-Identifier: MIT
// Package: chaosgame/sequence
//
// reader.go - cleaning symbol streams out of text.
//
// Contract:
//   - Symbols keep their input order; whitespace is removed wherever it is.
//   - Header skipping works on whole lines whose first non-blank rune is
//     '>' or ';'.
//   - A stream that ends up empty is ErrEmpty.

package sequence

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

const (
	methodRead     = "Read"
	methodReadFile = "ReadFile"

	// maxLine bounds a single input line; genome dumps often have very
	// long unwrapped lines.
	maxLine = 64 << 20
)

type options struct {
	skipHeaders bool
	upper       bool
	limit       int
}

// Option customizes reading.
type Option func(*options)

// WithSkipHeaders drops lines starting with '>' or ';'.
func WithSkipHeaders() Option {
	return func(o *options) { o.skipHeaders = true }
}

// WithUpper upper-cases every symbol.
func WithUpper() Option {
	return func(o *options) { o.upper = true }
}

// WithLimit stops after n symbols. n <= 0 means no limit.
func WithLimit(n int) Option {
	return func(o *options) { o.limit = n }
}

// Read returns the cleaned symbols of r.
func Read(r io.Reader, opts ...Option) ([]rune, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var out []rune
	for sc.Scan() {
		line := sc.Text()
		if o.skipHeaders && isHeader(line) {
			continue
		}
		for _, c := range line {
			if unicode.IsSpace(c) {
				continue
			}
			if o.upper {
				c = unicode.ToUpper(c)
			}
			out = append(out, c)
			if o.limit > 0 && len(out) >= o.limit {
				return out, nil
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRead, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", methodRead, ErrEmpty)
	}

	return out, nil
}

// ReadString is Read over a string.
func ReadString(s string, opts ...Option) ([]rune, error) {
	return Read(strings.NewReader(s), opts...)
}

// ReadFile opens path and reads its cleaned symbols.
func ReadFile(path string, opts ...Option) ([]rune, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodReadFile, err)
	}
	defer f.Close()

	out, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", methodReadFile, path, err)
	}

	return out, nil
}

func isHeader(line string) bool {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	return strings.HasPrefix(trimmed, ">") || strings.HasPrefix(trimmed, ";")
}
