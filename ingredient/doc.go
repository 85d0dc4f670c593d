// Package ingredient provides named, parametrized scalar functions that
// evaluate themselves over a sample domain.
//
// An Ingredient pairs a Kind (function template + accepted parameter names)
// with a concrete Params binding:
//
//	line, err := ingredient.New(ingredient.Line, "line", ingredient.Params{"m": 10, "b": 1})
//	y, err := line.Evaluate(x) // len(y) == len(x)
//
// Built-in kinds:
//
//	line      m, b                     m·x + b
//	parabola  a, b, c                  a·x² + b·x + c
//	cubic     a, b, c, d               a·x³ + b·x² + c·x + d
//	sinusoid  phase, amplitude, period amplitude·sin(2π·x/period + phase)
//	constant  c                        c
//	pulse     amplitude, frequency, duty
//	chirp     amplitude, f0, f1
//	uniform   shift, scale             U[shift, shift+scale)
//	gaussian  mean, stdev              N(mean, stdev²)
//	poisson   lam                      Poisson(lam)
//
// Custom kinds plug in through Custom(name, params, fn); the parameter
// mapping is checked against the declared names when New runs, so a
// mismatched binding is a construction error, never an evaluation-time
// surprise.
//
// Ingredients are immutable. Stochastic kinds reseed on every Evaluate
// (WithSeed, or a hash of kind and name by default), so evaluation is
// deterministic and safe to call concurrently.
package ingredient
