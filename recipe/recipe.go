// SPDX-License-Identifier: MIT
// Package: sigmix/recipe
//
// recipe.go - ordered (ingredient, mixing function) composition.
//
// Design contract:
//   - A Recipe is an append-only list of Steps plus a logger.
//   - Append is O(1) and validates nothing; Cook reports problems.
//   - State moves Building → Cooked on the first successful Cook. Appends
//     after that are allowed (the next Cook sees them).
//   - Cook never mutates the steps, so concurrent Cooks are safe; Append
//     concurrently with Cook is not.

package recipe

import (
	"sync/atomic"

	"github.com/katalvlaran/sigmix/ingredient"
	"github.com/katalvlaran/sigmix/mix"
	"go.uber.org/zap"
)

// State is the lifecycle position of a Recipe.
type State int

const (
	// Building means no Cook has succeeded yet.
	Building State = iota
	// Cooked means at least one Cook succeeded.
	Cooked
)

// String returns "building" or "cooked".
func (s State) String() string {
	if s == Cooked {
		return "cooked"
	}
	return "building"
}

// Step pairs an ingredient with the operation that folds it into the
// running total. The first step's Mix is kept for display only.
type Step struct {
	Ingredient *ingredient.Ingredient
	Mix        mix.Op
}

// Recipe is an ordered composition of ingredients.
type Recipe struct {
	steps  []Step
	log    *zap.Logger
	cooked atomic.Bool
}

// New returns an empty recipe in the Building state.
func New(opts ...Option) *Recipe {
	r := &Recipe{log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Append adds ing, folded in with op. O(1).
func (r *Recipe) Append(ing *ingredient.Ingredient, op mix.Op) {
	r.steps = append(r.steps, Step{Ingredient: ing, Mix: op})
}

// Len returns the number of steps.
func (r *Recipe) Len() int { return len(r.steps) }

// Steps returns a copy of the step list.
func (r *Recipe) Steps() []Step {
	return append([]Step(nil), r.steps...)
}

// State reports whether the recipe has been cooked.
func (r *Recipe) State() State {
	if r.cooked.Load() {
		return Cooked
	}
	return Building
}
