// SPDX-License-Identifier: MIT
// Package compare: sentinel error set.

package compare

import "errors"

var (
	// ErrEmptyInput indicates one or both sequences are empty.
	ErrEmptyInput = errors.New("compare: empty input")

	// ErrBadInput indicates invalid options (Window < -1, negative penalty).
	ErrBadInput = errors.New("compare: invalid options")

	// ErrLengthMismatch indicates sequences of different lengths where
	// equal lengths are required.
	ErrLengthMismatch = errors.New("compare: length mismatch")
)
