// SPDX-License-Identifier: MIT
// Package: sigmix/ingredient
//
// errors.go - sentinel errors for the ingredient package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Context is attached at the failing call site via fmt.Errorf("...: %w", ErrX).
//   - Construction errors (ErrMissingParam, ErrUnknownParam, ErrBadParam,
//     ErrNilFunc) surface from New; evaluation errors (ErrEmptyDomain,
//     ErrShape, ErrInvocation) surface from Evaluate.

package ingredient

import "errors"

var (
	// ErrMissingParam indicates that a parameter required by the kind was not bound.
	ErrMissingParam = errors.New("ingredient: missing parameter")

	// ErrUnknownParam indicates a bound parameter the kind's function does not accept.
	ErrUnknownParam = errors.New("ingredient: unknown parameter")

	// ErrBadParam indicates a parameter value the function cannot use
	// (NaN/Inf, zero period, negative deviation, ...) or a malformed kind
	// declaration (duplicate parameter names).
	ErrBadParam = errors.New("ingredient: invalid parameter value")

	// ErrNilFunc indicates a kind without a function to invoke.
	ErrNilFunc = errors.New("ingredient: nil function")

	// ErrEmptyDomain indicates evaluation over a zero-length domain.
	ErrEmptyDomain = errors.New("ingredient: empty domain")

	// ErrShape indicates the function produced a sequence whose length
	// differs from the domain length.
	ErrShape = errors.New("ingredient: output length does not match domain")

	// ErrInvocation wraps any error returned by the bound function itself.
	ErrInvocation = errors.New("ingredient: function invocation failed")
)
