// SPDX-License-Identifier: MIT

// Package menu is the interactive selection surface: a Bubble Tea model that
// offers
//
//	1: Chaos Game
//	2: Genetic Sequence
//	3: Quit
//
// and then prompts for the parameters of the chosen run (sides, iterations
// and fraction, or fraction and sequence file). The model only collects a
// Selection; running it is the caller's job.
package menu
