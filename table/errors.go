// SPDX-License-Identifier: MIT
// Package table: sentinel error set.

package table

import "errors"

var (
	// ErrNoColumns indicates an export request (or a file) without columns.
	ErrNoColumns = errors.New("table: no columns")

	// ErrRaggedColumns indicates columns of different lengths.
	ErrRaggedColumns = errors.New("table: columns differ in length")

	// ErrMalformed indicates a file that is not a valid numeric table.
	ErrMalformed = errors.New("table: malformed table")
)
