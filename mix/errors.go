// SPDX-License-Identifier: MIT
// Package mix: sentinel error set.
// Every message is prefixed with "mix: ..."; callers match with errors.Is.

package mix

import "errors"

var (
	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("mix: dimension mismatch")

	// ErrEmptyInput indicates a zero-length operand.
	ErrEmptyInput = errors.New("mix: empty input")
)
