// SPDX-License-Identifier: MIT

// Package store keeps finished runs in SQLite so they can be listed,
// re-exported and served later.
//
// The database handle comes from Open, which registers the pure-Go ncruces
// driver. A Repository needs Init once to create its schema. Every run gets
// a random UUID.
package store
