// SPDX-License-Identifier: MIT
// Package: chaosgame/sequence
//
// errors.go - sentinel errors for stream reading.

package sequence

import "errors"

// ErrEmpty indicates the source held no symbols after cleaning.
var ErrEmpty = errors.New("sequence: no symbols")
