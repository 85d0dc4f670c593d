// SPDX-License-Identifier: MIT
// Package: sigmix/recipe
//
// cook.go - evaluate every ingredient and fold the results.
//
// Algorithm:
//  1. Reject empty recipes and empty domains.
//  2. For k = 0..n-1: eval[k] = ingredient[k].Evaluate(domain).
//  3. cum[0] = eval[0] (no mixing on the seed);
//     cum[k] = mix[k](cum[k-1], eval[k]) for k ≥ 1.
//  4. final = cum[n-1].
//  5. Optional exports run only after the whole fold succeeded, and
//     either all of them land on disk or none does (see export.go).
//
// Complexity: O(n·m) time and memory for n ingredients over m samples.

package recipe

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/katalvlaran/sigmix/ingredient"
	"github.com/katalvlaran/sigmix/mix"
	"github.com/katalvlaran/sigmix/table"
	"go.uber.org/zap"
)

// Result holds everything one Cook produced.
type Result struct {
	// RunID identifies the Cook call in logs.
	RunID string
	// Domain is the sample domain the recipe was cooked over.
	Domain []float64
	// Names holds each ingredient's display name, in step order.
	Names []string
	// Labels names each cumulative step ("1:sine", "2:+parabola", ...).
	Labels []string
	// Evaluations[k] is ingredient k evaluated over Domain.
	Evaluations [][]float64
	// Cumulative[k] is the running total after step k.
	Cumulative [][]float64
	// Final is Cumulative[len-1].
	Final []float64
}

// Cook evaluates the recipe over domain. See the file header for the fold.
//
// Errors:
//   - ErrEmptyRecipe    — no steps.
//   - ErrEmptyDomain    — len(domain) == 0.
//   - ErrNilIngredient  — a step without an ingredient.
//   - ErrShape          — an evaluation or mix result has the wrong length
//     (ingredient.ErrShape / mix.ErrDimensionMismatch stay matchable).
//   - ErrNilMix         — step k ≥ 1 without a mixing function.
//   - ErrExport         — writing a requested export failed.
//
// Any other ingredient or mix error is returned wrapped. On error no
// Result is returned.
func (r *Recipe) Cook(domain []float64, opts ...CookOption) (*Result, error) {
	if len(r.steps) == 0 {
		return nil, fmt.Errorf("Cook: %w", ErrEmptyRecipe)
	}
	if len(domain) == 0 {
		return nil, fmt.Errorf("Cook: %w", ErrEmptyDomain)
	}
	cfg := newCookConfig(opts...)

	n, m := len(r.steps), len(domain)
	res := &Result{
		RunID:       uuid.NewString(),
		Domain:      append([]float64(nil), domain...),
		Names:       make([]string, n),
		Labels:      make([]string, n),
		Evaluations: make([][]float64, n),
		Cumulative:  make([][]float64, n),
	}
	log := r.log.With(zap.String("run_id", res.RunID))
	log.Debug("cooking recipe", zap.Int("ingredients", n), zap.Int("samples", m))

	for k, st := range r.steps {
		if st.Ingredient == nil {
			return nil, fmt.Errorf("Cook: step %d: %w", k+1, ErrNilIngredient)
		}
		name := st.Ingredient.Name()
		res.Names[k] = name
		res.Labels[k] = stepLabel(k, st)

		// Each step gets its own copy; a misbehaving Func cannot leak
		// writes into later steps or Result.Domain.
		y, err := st.Ingredient.Evaluate(append([]float64(nil), res.Domain...))
		if err != nil {
			if errors.Is(err, ingredient.ErrShape) {
				return nil, fmt.Errorf("Cook: step %d (%s): %w: %w", k+1, name, ErrShape, err)
			}
			return nil, fmt.Errorf("Cook: step %d (%s): %w", k+1, name, err)
		}
		if len(y) != m {
			return nil, fmt.Errorf("Cook: step %d (%s): %d samples for %d-sample domain: %w", k+1, name, len(y), m, ErrShape)
		}
		res.Evaluations[k] = y

		if k == 0 {
			res.Cumulative[0] = append([]float64(nil), y...)
			continue
		}

		if st.Mix.Apply == nil {
			return nil, fmt.Errorf("Cook: step %d (%s): %w", k+1, name, ErrNilMix)
		}
		cum, err := st.Mix.Apply(res.Cumulative[k-1], y)
		if err != nil {
			if errors.Is(err, mix.ErrDimensionMismatch) {
				return nil, fmt.Errorf("Cook: step %d (%s) %s: %w: %w", k+1, name, st.Mix.Name, ErrShape, err)
			}
			return nil, fmt.Errorf("Cook: step %d (%s) %s: %w", k+1, name, st.Mix.Name, err)
		}
		if len(cum) != m {
			return nil, fmt.Errorf("Cook: step %d (%s) %s returned %d samples: %w", k+1, name, st.Mix.Name, len(cum), ErrShape)
		}
		res.Cumulative[k] = cum
	}
	res.Final = res.Cumulative[n-1]

	err := exportAll(log,
		exportTarget{path: cfg.evalPath, cols: res.EvalColumns()},
		exportTarget{path: cfg.cumPath, cols: res.CumulativeColumns()},
	)
	if err != nil {
		return nil, err
	}

	r.cooked.Store(true)
	log.Info("recipe cooked", zap.Int("ingredients", n), zap.Int("samples", m))

	return res, nil
}

// EvalColumns returns one table column per ingredient evaluation.
func (res *Result) EvalColumns() []table.Column {
	cols := make([]table.Column, len(res.Evaluations))
	for k, v := range res.Evaluations {
		cols[k] = table.Column{Name: res.Names[k], Values: v}
	}

	return cols
}

// CumulativeColumns returns one table column per cumulative step.
func (res *Result) CumulativeColumns() []table.Column {
	cols := make([]table.Column, len(res.Cumulative))
	for k, v := range res.Cumulative {
		cols[k] = table.Column{Name: res.Labels[k], Values: v}
	}

	return cols
}

// stepLabel renders "<k>:<symbol><name>", leaving the seed's symbol out.
func stepLabel(k int, st Step) string {
	sym := ""
	if k > 0 {
		sym = st.Mix.Symbol
	}

	return strconv.Itoa(k+1) + ":" + sym + st.Ingredient.Name()
}
