// SPDX-License-Identifier: MIT
// Package: sigmix/ingredient
//
// impl_pulse.go — rectangular pulse train over the domain values.
//
// Purpose (single responsibility):
//   • Square wave in {0, amplitude}: on while the phase fraction < duty.
//   • Phase is taken from the domain value, frac = (frequency·x) mod 1,
//     so the pulse lines up with the other x-based kinds.
//
// Contract:
//   • frequency > 0 and duty ∈ [0,1], both checked at construction.
//   • O(n) time and memory, no trig.
//
// AI-Hints:
//   • Negative x yields a negative math.Mod result; it is folded back into
//     [0,1) before comparing with duty.

package ingredient

import (
	"fmt"
	"math"
	"math/rand"
)

// Pulse is a rectangular pulse train with the given amplitude, frequency
// (cycles per unit of x) and duty cycle.
var Pulse = Kind{
	Name:   "pulse",
	Params: []string{"amplitude", "frequency", "duty"},
	Fn: func(x []float64, p Params, _ *rand.Rand) ([]float64, error) {
		amp, f0, duty := p["amplitude"], p["frequency"], p["duty"]
		return mapEach(x, func(v float64) float64 {
			if phaseFrac(f0*v) < duty {
				return amp
			}
			return unitZero
		}), nil
	},
	Check: func(p Params) error {
		if p["frequency"] <= 0 {
			return fmt.Errorf("pulse: frequency=%v: %w", p["frequency"], ErrBadParam)
		}
		if d := p["duty"]; d < 0 || d > 1 {
			return fmt.Errorf("pulse: duty=%v: %w", d, ErrBadParam)
		}
		return nil
	},
}

// phaseFrac folds t into [0,1).
func phaseFrac(t float64) float64 {
	frac := math.Mod(t, unitOne)
	if frac < 0 {
		frac += unitOne
	}

	return frac
}
