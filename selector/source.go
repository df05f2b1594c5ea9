// SPDX-License-Identifier: MIT
// Package: chaosgame/selector
//
// source.go - the Source capability and small generic sources.

package selector

import "fmt"

const methodFixed = "Fixed"

// Source yields the index of the next target vertex.
// Finite sources return ErrExhausted once drained.
type Source interface {
	Next() (int, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() (int, error)

// Next calls f.
func (f SourceFunc) Next() (int, error) { return f() }

// Fixed replays a literal list of indices, then reports ErrExhausted.
type Fixed struct {
	indices []int
	pos     int
}

// NewFixed returns a source that yields indices in order.
func NewFixed(indices ...int) *Fixed {
	cp := make([]int, len(indices))
	copy(cp, indices)
	return &Fixed{indices: cp}
}

// Next returns the next index of the list.
func (f *Fixed) Next() (int, error) {
	if f.pos >= len(f.indices) {
		return 0, fmt.Errorf("%s: after %d indices: %w", methodFixed, len(f.indices), ErrExhausted)
	}
	i := f.indices[f.pos]
	f.pos++
	return i, nil
}

// Remaining returns how many indices are left.
func (f *Fixed) Remaining() int {
	return len(f.indices) - f.pos
}

// Recorder wraps a Source and keeps every index it successfully returned.
type Recorder struct {
	src     Source
	indices []int
}

// Record wraps src. sizeHint preallocates the trace and may be zero.
func Record(src Source, sizeHint int) *Recorder {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Recorder{src: src, indices: make([]int, 0, sizeHint)}
}

// Next forwards to the wrapped source and records the result.
func (r *Recorder) Next() (int, error) {
	i, err := r.src.Next()
	if err != nil {
		return 0, err
	}
	r.indices = append(r.indices, i)
	return i, nil
}

// Indices returns the recorded indices in the order they were handed out.
func (r *Recorder) Indices() []int {
	out := make([]int, len(r.indices))
	copy(out, r.indices)
	return out
}
