// SPDX-License-Identifier: MIT
// Package: sigmix/ingredient
//
// catalog.go - deterministic built-in kinds and the kind registry.
//
// Contract:
//   - Every built-in returns a fresh slice of len(x); x is never mutated.
//   - Parameter names are part of the public contract (configuration files
//     reference them).
//   - Range checks live in Kind.Check so they fire at construction time,
//     not on every evaluation.
//
// AI-Hints:
//   - New kinds: write a Func, declare it here, add it to registry.
//   - Polynomials use Horner's rule; keep it that way for stable rounding.

package ingredient

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Line is m·x + b.
var Line = Kind{
	Name:   "line",
	Params: []string{"m", "b"},
	Fn: func(x []float64, p Params, _ *rand.Rand) ([]float64, error) {
		return mapEach(x, func(v float64) float64 { return p["m"]*v + p["b"] }), nil
	},
}

// Parabola is a·x² + b·x + c.
var Parabola = Kind{
	Name:   "parabola",
	Params: []string{"a", "b", "c"},
	Fn: func(x []float64, p Params, _ *rand.Rand) ([]float64, error) {
		a, b, c := p["a"], p["b"], p["c"]
		return mapEach(x, func(v float64) float64 { return (a*v+b)*v + c }), nil
	},
}

// Cubic is a·x³ + b·x² + c·x + d.
var Cubic = Kind{
	Name:   "cubic",
	Params: []string{"a", "b", "c", "d"},
	Fn: func(x []float64, p Params, _ *rand.Rand) ([]float64, error) {
		a, b, c, d := p["a"], p["b"], p["c"], p["d"]
		return mapEach(x, func(v float64) float64 { return ((a*v+b)*v+c)*v + d }), nil
	},
}

// Sinusoid is amplitude·sin(2π·x/period + phase). period must be non-zero.
var Sinusoid = Kind{
	Name:   "sinusoid",
	Params: []string{"phase", "amplitude", "period"},
	Fn: func(x []float64, p Params, _ *rand.Rand) ([]float64, error) {
		w := tau / p["period"] // angular frequency
		amp, phase := p["amplitude"], p["phase"]
		return mapEach(x, func(v float64) float64 { return amp * math.Sin(w*v+phase) }), nil
	},
	Check: func(p Params) error {
		if p["period"] == 0 {
			return fmt.Errorf("sinusoid: period=0: %w", ErrBadParam)
		}
		return nil
	},
}

// Constant is c everywhere; handy as an offset or a gain under Multiply.
var Constant = Kind{
	Name:   "constant",
	Params: []string{"c"},
	Fn: func(x []float64, p Params, _ *rand.Rand) ([]float64, error) {
		c := p["c"]
		return mapEach(x, func(float64) float64 { return c }), nil
	},
}

// registry lists every built-in kind by name.
var registry = map[string]Kind{
	Line.Name:     Line,
	Parabola.Name: Parabola,
	Cubic.Name:    Cubic,
	Sinusoid.Name: Sinusoid,
	Constant.Name: Constant,
	Uniform.Name:  Uniform,
	Gaussian.Name: Gaussian,
	Poisson.Name:  Poisson,
	Pulse.Name:    Pulse,
	Chirp.Name:    Chirp,
}

// Lookup returns the built-in kind registered under name.
func Lookup(name string) (Kind, bool) {
	k, ok := registry[name]
	return k, ok
}

// Kinds returns the sorted names of all built-in kinds.
func Kinds() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// mapEach allocates len(x) samples and fills out[i] = f(x[i]).
func mapEach(x []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = f(v)
	}

	return out
}
