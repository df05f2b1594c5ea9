// SPDX-License-Identifier: MIT

// Package selector decides which polygon vertex the chaos game moves
// toward next.
//
// Every policy implements Source. The attractor engine only sees Source,
// so random and sequence-driven runs share one iterator:
//
//   - Random draws uniformly from n vertices using an injected *rand.Rand.
//     With more than three vertices it never returns the same index twice
//     in a row. Triangles allow repeats.
//   - Sequence replays a symbol stream through an alphabet.Alphabet, one
//     index per symbol, in stream order, with no randomness.
//   - Fixed replays a literal index list; Recorder wraps any Source and
//     keeps what it handed out.
//
// The "previous vertex" memory of Random is explicit: State is passed into
// and returned from Pick, and Next is a thin stateful wrapper around it.
package selector
