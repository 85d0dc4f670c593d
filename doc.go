// Package sigmix is a small playground for composing synthetic 1-D
// signals: evaluate "ingredients" (lines, parabolas, sinusoids, pulses,
// chirps, noise) over a sample domain and fold them into one "recipe"
// with pairwise mixing functions.
//
// 🚀 What is in the box?
//
//	domain/     — evenly spaced sample domains (Linspace, Arange)
//	ingredient/ — named, parametrized scalar functions + built-in catalog
//	mix/        — elementwise mixing operations (add, multiply, ...)
//	recipe/     — ordered composition: Cook, Describe, Render
//	table/      — CSV export/import of named columns (exact round-trip)
//	chart/      — PNG/SVG/PDF charts via gonum/plot
//	compare/    — DTW / RMSE distances between signals
//	config/     — yaml recipe files
//	cmd/sigmix  — command-line front end
//
// Quick example:
//
//	x, _ := domain.Linspace(-10, 10, 101)
//	r := recipe.New()
//	r.Append(ingredient.MustNew(ingredient.Line, "line", ingredient.Params{"m": 10, "b": 1}), mix.Add)
//	r.Append(ingredient.MustNew(ingredient.Parabola, "parabola", ingredient.Params{"a": -2, "b": 0, "c": 3}), mix.Add)
//	res, err := r.Cook(x, recipe.WithCumulativeExport("output/cum.csv"))
//
// Everything is deterministic: noise ingredients reseed on every
// evaluation, so the same recipe always cooks to the same signal.
package sigmix
