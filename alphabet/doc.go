// SPDX-License-Identifier: MIT

// Package alphabet maps the symbols of a driving stream (for example the
// bases of a DNA sequence) to polygon vertex indices, and names vertices
// for display.
//
// An Alphabet is built once by scanning a stream: every symbol gets the next
// free index in order of first appearance. The mapping is a bijection onto
// 0..Len()-1 and never changes afterwards.
//
//	a := alphabet.FromString("GATTACA") // G:0 A:1 T:2 C:3
//	i, ok := a.Index('T')               // 2, true
package alphabet
