// SPDX-License-Identifier: MIT
// Package: sigmix/recipe
//
// errors.go — sentinel errors for the recipe package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Cook wraps lower-level errors (ingredient, mix, table) with %w, so
//     both the recipe sentinel and the original cause stay matchable.
//   • A failing Cook returns no partial Result and writes no files.
//
// Priority (first failure wins):
//   ErrEmptyRecipe → ErrEmptyDomain → ErrNilIngredient → evaluation errors
//   → ErrShape → ErrNilMix → mixing errors → export errors.

package recipe

import "errors"

var (
	// ErrEmptyRecipe indicates Cook on a recipe without ingredients:
	// there is nothing to seed the fold with.
	ErrEmptyRecipe = errors.New("recipe: no ingredients")

	// ErrEmptyDomain indicates Cook over a zero-length domain.
	ErrEmptyDomain = errors.New("recipe: empty domain")

	// ErrShape indicates an evaluation or mixing result whose length
	// disagrees with the domain length.
	ErrShape = errors.New("recipe: length does not match domain")

	// ErrNilIngredient indicates an appended nil ingredient.
	ErrNilIngredient = errors.New("recipe: nil ingredient")

	// ErrNilMix indicates a step after the first without a mixing function.
	ErrNilMix = errors.New("recipe: nil mixing function")

	// ErrExport indicates a failed flat-file export.
	ErrExport = errors.New("recipe: export failed")
)
