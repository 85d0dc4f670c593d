// SPDX-License-Identifier: MIT
// Package: sigmix/compare
//
// compare.go - distances between cooked signals.
//
// DTW (two-row dynamic programming):
//  1. D[0][0] = 0, D[i][0] = D[0][j] = +∞.
//  2. For i = 1..n, j = 1..m (and |i−j| ≤ Window when Window ≥ 0):
//     cost    = |a[i−1] − b[j−1]|
//     D[i][j] = cost + min(D[i−1][j] + penalty, D[i][j−1] + penalty, D[i−1][j−1])
//  3. distance = D[n][m]; +Inf when the window makes (n,m) unreachable.
//
// Complexity: DTW O(n·m) time, O(m) memory; Euclidean/RMSE O(n).

package compare

import (
	"fmt"
	"math"
)

// Options configures DTW.
//
//   - Window       — Sakoe–Chiba band |i−j| ≤ Window; −1 means unlimited.
//   - SlopePenalty — added to every insertion/deletion step (≥ 0).
type Options struct {
	Window       int
	SlopePenalty float64
}

// DefaultOptions returns an unconstrained, penalty-free configuration.
func DefaultOptions() Options {
	return Options{Window: -1}
}

// DTW returns the dynamic time warping distance between a and b.
//
// Errors:
//   - ErrEmptyInput — either sequence is empty.
//   - ErrBadInput   — Window < −1 or SlopePenalty < 0 / NaN.
func DTW(a, b []float64, opts Options) (float64, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, fmt.Errorf("DTW: %w", ErrEmptyInput)
	}
	if opts.Window < -1 || opts.SlopePenalty < 0 || math.IsNaN(opts.SlopePenalty) {
		return 0, fmt.Errorf("DTW: window=%d penalty=%v: %w", opts.Window, opts.SlopePenalty, ErrBadInput)
	}

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if opts.Window >= 0 && absInt(i-j) > opts.Window {
				curr[j] = inf
				continue
			}
			best := math.Min(prev[j-1], math.Min(prev[j], curr[j-1])+opts.SlopePenalty)
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
		prev, curr = curr, prev
	}

	return prev[m], nil
}

// Euclidean returns the L2 distance between equal-length sequences.
func Euclidean(a, b []float64) (float64, error) {
	if err := sameLength("Euclidean", a, b); err != nil {
		return 0, err
	}

	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum), nil
}

// RMSE returns the root-mean-square difference of equal-length sequences.
func RMSE(a, b []float64) (float64, error) {
	d, err := Euclidean(a, b)
	if err != nil {
		return 0, err
	}

	return d / math.Sqrt(float64(len(a))), nil
}

func sameLength(op string, a, b []float64) error {
	if len(a) == 0 || len(b) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyInput)
	}
	if len(a) != len(b) {
		return fmt.Errorf("%s: len %d vs %d: %w", op, len(a), len(b), ErrLengthMismatch)
	}

	return nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
