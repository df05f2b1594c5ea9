// SPDX-License-Identifier: MIT

// Package sequence reads symbol streams, such as DNA base sequences, from
// text sources and cleans them for sequence-driven runs.
//
// All whitespace is dropped. Optionally FASTA/EMBL-style header and comment
// lines (starting with '>' or ';') are skipped and symbols are upper-cased,
// so that "acgt" and "ACGT" drive the same vertices.
package sequence
