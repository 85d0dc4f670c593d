// Package domain generates the sample domains ingredients are evaluated over.
//
// A domain is an ordered []float64, typically evenly spaced:
//
//	x, err := domain.Linspace(-10, 10, 101) // 101 samples, endpoints included
//	x, err := domain.Arange(0, 1, 0.25)     // [0 0.25 0.5 0.75]
//
// Both constructors are pure and return sentinel errors (ErrBadSize,
// ErrBadRange) instead of panicking.
package domain
