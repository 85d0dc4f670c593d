// SPDX-License-Identifier: MIT
// Package chart: sentinel error set.

package chart

import "errors"

var (
	// ErrNoData indicates nothing to draw (empty x, or no curves at all).
	ErrNoData = errors.New("chart: no data")

	// ErrLengthMismatch indicates a curve whose length differs from x.
	ErrLengthMismatch = errors.New("chart: curve length does not match x")
)
