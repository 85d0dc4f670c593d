// SPDX-License-Identifier: MIT
// Package: sigmix/domain
//
// errors.go - sentinel errors for domain generation.
// Callers MUST branch with errors.Is; messages are stable.

package domain

import "errors"

var (
	// ErrBadSize indicates a requested sample count outside
	// [1, MaxSamples] (or an interval that yields no samples).
	ErrBadSize = errors.New("domain: invalid sample count")

	// ErrBadRange indicates NaN/Inf bounds, a step that can never
	// reach the stop value, or a step too small for MaxSamples.
	ErrBadRange = errors.New("domain: invalid range")
)
