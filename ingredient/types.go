// SPDX-License-Identifier: MIT
// Package: sigmix/ingredient
//
// types.go - parameter bundles and function templates.

package ingredient

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"
)

// Params binds parameter names to scalar values, e.g. {"m": 10, "b": 1}.
type Params map[string]float64

// Clone returns an independent copy (nil stays nil).
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}

// String renders "k=v" pairs in sorted key order.
func (p Params) String() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(formatValue(p[k]))
	}

	return sb.String()
}

// Func is the fixed evaluation signature every ingredient kind implements:
// map the domain x to a sequence of the same length using the bound params.
//
// The rng is owned by the calling Ingredient and freshly seeded for every
// evaluation; deterministic kinds simply ignore it. Implementations MUST
// NOT retain x, p or rng and MUST NOT mutate x.
type Func func(x []float64, p Params, rng *rand.Rand) ([]float64, error)

// Kind is a named function template: the function plus the exact set of
// parameters it accepts. Kinds are the extension point for user functions
// (see Custom).
type Kind struct {
	// Name identifies the kind in descriptions and configuration files.
	Name string
	// Params lists the accepted parameter names in display order.
	Params []string
	// Fn evaluates the kind.
	Fn Func
	// Check optionally validates parameter ranges at construction time.
	Check func(Params) error
	// Stochastic marks kinds that draw from the rng.
	Stochastic bool
}

// Custom declares a user-supplied kind. The declaration is validated when
// an Ingredient is built from it (nil fn → ErrNilFunc, duplicate names →
// ErrBadParam). fn follows the Func contract: it MUST NOT mutate x.
func Custom(name string, params []string, fn Func) Kind {
	return Kind{
		Name:       name,
		Params:     append([]string(nil), params...),
		Fn:         fn,
		Stochastic: true, // unknown body: always hand it a seeded rng
	}
}

// accepts reports whether name is one of the kind's parameters.
func (k Kind) accepts(name string) bool {
	for _, p := range k.Params {
		if p == name {
			return true
		}
	}

	return false
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
