// SPDX-License-Identifier: MIT
// Package: sigmix/domain
//
// domain.go - evenly spaced sample domains.
//
// Purpose:
//   - Produce the ordered input samples every ingredient is evaluated over.
//   - Linspace mirrors the closed-interval convention (both endpoints kept).
//   - Arange mirrors the half-open convention [start, stop).
//
// Contract:
//   - Pure functions, no global state, O(n) time and memory.
//   - Invalid sizes/bounds return sentinel errors; never panic.
//   - At most MaxSamples samples per domain.
//
// AI-Hints:
//   - Linspace pins the last sample to stop exactly; interpolation alone
//     would drift by a few ULPs for long domains.

package domain

import (
	"fmt"
	"math"
)

// MaxSamples bounds every generated domain (128 MiB of float64).
const MaxSamples = 1 << 24

// Linspace returns n evenly spaced samples over the closed interval
// [start, stop]. For n == 1 the result is [start].
// Complexity: O(n) time, O(n) memory.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 1 || n > MaxSamples {
		return nil, fmt.Errorf("Linspace: n=%d: %w", n, ErrBadSize)
	}
	if !finite(start) || !finite(stop) {
		return nil, fmt.Errorf("Linspace: [%v, %v]: %w", start, stop, ErrBadRange)
	}

	out := make([]float64, n)
	out[0] = start
	if n == 1 {
		return out, nil
	}

	// Interpolate from both ends' distance instead of accumulating a step.
	step := (stop - start) / float64(n-1)
	for i := 1; i < n-1; i++ {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop

	return out, nil
}

// Arange returns samples start, start+step, ... strictly below stop (or
// strictly above stop for a negative step).
// Complexity: O((stop-start)/step) time and memory.
func Arange(start, stop, step float64) ([]float64, error) {
	if !finite(start) || !finite(stop) || !finite(step) {
		return nil, fmt.Errorf("Arange: non-finite bound: %w", ErrBadRange)
	}
	if step == 0 || (stop-start)/step < 0 {
		return nil, fmt.Errorf("Arange: step=%v cannot reach %v from %v: %w", step, stop, start, ErrBadRange)
	}

	count := math.Ceil((stop - start) / step)
	if math.IsInf(count, 0) || count > MaxSamples {
		return nil, fmt.Errorf("Arange: step=%v over [%v, %v) exceeds %d samples: %w", step, start, stop, MaxSamples, ErrBadRange)
	}
	n := int(count)
	if n < 1 {
		return nil, fmt.Errorf("Arange: empty interval [%v, %v): %w", start, stop, ErrBadSize)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out, nil
}

// Symmetric is shorthand for Linspace(-half, half, n).
func Symmetric(half float64, n int) ([]float64, error) {
	return Linspace(-half, half, n)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
