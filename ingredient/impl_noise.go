// SPDX-License-Identifier: MIT
// Package: sigmix/ingredient
//
// impl_noise.go - stochastic kinds (uniform, gaussian, poisson).
//
// Determinism policy:
//   - The rng arrives freshly seeded from Ingredient.seed on every call,
//     so the same ingredient always yields the same noise realisation.
//   - Draws happen strictly in sample order, one or more per sample.
//
// AI-Hints:
//   - Poisson switches to a rounded normal approximation above
//     poissonKnuthLimit because exp(-lam) loses precision for large lam.

package ingredient

import (
	"fmt"
	"math"
	"math/rand"
)

// poissonKnuthLimit is the largest rate sampled with Knuth's product method.
const poissonKnuthLimit = 30.0

// Uniform draws from [shift, shift+scale).
var Uniform = Kind{
	Name:       "uniform",
	Params:     []string{"shift", "scale"},
	Stochastic: true,
	Fn: func(x []float64, p Params, rng *rand.Rand) ([]float64, error) {
		shift, scale := p["shift"], p["scale"]
		out := make([]float64, len(x))
		for i := range out {
			out[i] = shift + scale*rng.Float64()
		}
		return out, nil
	},
}

// Gaussian draws from N(mean, stdev²). stdev must be ≥ 0.
var Gaussian = Kind{
	Name:       "gaussian",
	Params:     []string{"mean", "stdev"},
	Stochastic: true,
	Fn: func(x []float64, p Params, rng *rand.Rand) ([]float64, error) {
		mean, sd := p["mean"], p["stdev"]
		out := make([]float64, len(x))
		for i := range out {
			out[i] = mean + sd*rng.NormFloat64()
		}
		return out, nil
	},
	Check: func(p Params) error {
		if p["stdev"] < 0 {
			return fmt.Errorf("gaussian: stdev=%v: %w", p["stdev"], ErrBadParam)
		}
		return nil
	},
}

// Poisson draws event counts with rate lam ≥ 0.
var Poisson = Kind{
	Name:       "poisson",
	Params:     []string{"lam"},
	Stochastic: true,
	Fn: func(x []float64, p Params, rng *rand.Rand) ([]float64, error) {
		lam := p["lam"]
		out := make([]float64, len(x))
		for i := range out {
			out[i] = poisson(rng, lam)
		}
		return out, nil
	},
	Check: func(p Params) error {
		if p["lam"] < 0 {
			return fmt.Errorf("poisson: lam=%v: %w", p["lam"], ErrBadParam)
		}
		return nil
	},
}

// poisson returns one Poisson(lam) draw as a float64 count.
func poisson(rng *rand.Rand, lam float64) float64 {
	if lam == 0 {
		return 0
	}
	if lam > poissonKnuthLimit {
		k := math.Round(lam + math.Sqrt(lam)*rng.NormFloat64())
		return math.Max(k, 0)
	}

	limit := math.Exp(-lam)
	k := 0.0
	prod := rng.Float64()
	for prod > limit {
		k++
		prod *= rng.Float64()
	}

	return k
}
