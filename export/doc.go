// SPDX-License-Identifier: MIT

// Package export writes finished runs for external plotting tools.
//
// CSV output has one row per point: its position in the run, coordinates
// and the vertex index that produced it (empty for the seed). JSON output
// is the chaos.Result itself.
package export
