// SPDX-License-Identifier: MIT
// Package: sigmix/ingredient
//
// impl_chirp.go - linear chirp (frequency sweep from f0 to f1).
//
// Purpose:
//   - Produce a sweep whose instantaneous frequency moves linearly across
//     the domain, for mixing with stationary kinds in demos and tests.
//
// Model (per sample index i over n samples):
//   - t   = i/(n−1)                 (0 for a single sample)
//   - fi  = f0 + (f1 − f0)·t        (cycles/sample)
//   - θᵢ  = θᵢ₋₁ + τ·fi             (phase accumulator, τ=2π, θ₋₁ = 0)
//   - yᵢ  = amplitude·sin(θᵢ)
//
// Contract:
//   - f0 > 0 and f1 > 0 (checked at construction); O(n) time and memory.
//   - Only the sample count of x matters, not its values.
//
// AI-Hints:
//   - Need exponential sweep? Swap linear fi with geometric interpolation.

package ingredient

import (
	"fmt"
	"math"
	"math/rand"
)

// Precompute 2π once; shared with Sinusoid.
const tau = 2.0 * math.Pi

const (
	unitZero = 0.0
	unitOne  = 1.0
)

// Chirp is a linear frequency sweep indexed by sample position.
var Chirp = Kind{
	Name:   "chirp",
	Params: []string{"amplitude", "f0", "f1"},
	Fn: func(x []float64, p Params, _ *rand.Rand) ([]float64, error) {
		amp, f0, f1 := p["amplitude"], p["f0"], p["f1"]
		n := len(x)
		out := make([]float64, n)

		var (
			t     float64 // normalized position in [0,1]
			theta float64 // accumulated phase
		)
		for i := 0; i < n; i++ {
			if n > 1 {
				t = float64(i) / float64(n-1)
			}
			theta += tau * (f0 + (f1-f0)*t)
			out[i] = amp * math.Sin(theta)
		}

		return out, nil
	},
	Check: func(p Params) error {
		if p["f0"] <= 0 || p["f1"] <= 0 {
			return fmt.Errorf("chirp: f0=%v f1=%v: %w", p["f0"], p["f1"], ErrBadParam)
		}
		return nil
	},
}
