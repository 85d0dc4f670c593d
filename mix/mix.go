// SPDX-License-Identifier: MIT
// Package: sigmix/mix
//
// mix.go - pairwise elementwise mixing operations.
//
// Purpose:
//   - Provide the pure binary combinators a recipe folds ingredients with.
//   - Keep one tight loop (zipWith) instead of duplicating it per operator.
//
// Contract:
//   - Inputs are never mutated; the result is a fresh slice of len(a).
//   - Mismatched lengths return ErrDimensionMismatch, empty inputs
//     ErrEmptyInput. No other validation: NaN/Inf propagate (IEEE-754).
//   - Operators need not be associative or commutative; the recipe applies
//     them strictly left to right (running total first).
//
// Determinism & Performance:
//   - Fixed loop order 0..n-1, O(n) time, one O(n) allocation.

package mix

import (
	"fmt"
	"math"
	"sort"
)

// Func combines the running total a with a new evaluation b.
type Func func(a, b []float64) ([]float64, error)

// Op is a named mixing function. Symbol is a short operator glyph used in
// recipe descriptions ("+", "*", ...).
type Op struct {
	Name   string
	Symbol string
	Apply  Func
}

// New declares a custom mixing operation. An empty symbol falls back to
// the name.
func New(name, symbol string, fn Func) Op {
	if symbol == "" {
		symbol = name
	}

	return Op{Name: name, Symbol: symbol, Apply: fn}
}

// Elementwise lifts a scalar operator into a Func with the standard
// length/emptiness checks.
func Elementwise(name string, f func(a, b float64) float64) Func {
	return func(a, b []float64) ([]float64, error) {
		return zipWith(name, a, b, f)
	}
}

// String returns the operation name.
func (o Op) String() string { return o.Name }

var (
	// Add is a + b.
	Add = New("add", "+", Elementwise("add", func(a, b float64) float64 { return a + b }))
	// Subtract is a − b.
	Subtract = New("subtract", "-", Elementwise("subtract", func(a, b float64) float64 { return a - b }))
	// Multiply is a · b.
	Multiply = New("multiply", "*", Elementwise("multiply", func(a, b float64) float64 { return a * b }))
	// Divide is a / b with IEEE-754 semantics (x/0 → ±Inf, 0/0 → NaN).
	Divide = New("divide", "/", Elementwise("divide", func(a, b float64) float64 { return a / b }))
	// Maximum is max(a, b).
	Maximum = New("maximum", "max", Elementwise("maximum", math.Max))
	// Minimum is min(a, b).
	Minimum = New("minimum", "min", Elementwise("minimum", math.Min))
	// Mean is (a + b) / 2.
	Mean = New("mean", "avg", Elementwise("mean", func(a, b float64) float64 { return (a + b) / 2 }))
)

var registry = map[string]Op{}

func init() {
	for _, op := range []Op{Add, Subtract, Multiply, Divide, Maximum, Minimum, Mean} {
		registry[op.Name] = op
	}
}

// Lookup returns the built-in operation registered under name.
func Lookup(name string) (Op, bool) {
	op, ok := registry[name]
	return op, ok
}

// Names returns the sorted names of the built-in operations.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// zipWith computes out[i] = f(a[i], b[i]).
// Time: O(n). Space: O(n).
func zipWith(name string, a, b []float64, f func(x, y float64) float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyInput)
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("%s: len %d vs %d: %w", name, len(a), len(b), ErrDimensionMismatch)
	}

	out := make([]float64, len(a))
	for i := range a {
		out[i] = f(a[i], b[i])
	}

	return out, nil
}
