// Package recipe composes ingredients into one signal.
//
// A Recipe is an ordered list of (ingredient, mixing operation) steps.
// Cooking it over a domain evaluates every ingredient and folds the
// evaluations left to right:
//
//	cumulative[0] = eval[0]
//	cumulative[k] = mix[k](cumulative[k-1], eval[k])
//
// Usage:
//
//	r := recipe.New(recipe.WithLogger(log))
//	r.Append(sine, mix.Add)     // seed; its mix is never applied
//	r.Append(parabola, mix.Add)
//	res, err := r.Cook(x,
//		recipe.WithEvalExport("out/eval.csv"),
//		recipe.WithCumulativeExport("out/cum.csv"))
//	fmt.Print(r.Describe())
//	err = res.SaveChart("out/recipe.png")
//
// Failures (empty recipe, length mismatches, bad exports) are reported
// through sentinel errors; a failed Cook returns no partial results.
package recipe
