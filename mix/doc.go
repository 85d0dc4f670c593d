// Package mix holds the pairwise mixing operations a recipe uses to fold
// ingredient evaluations into one signal.
//
// A mixing operation is a pure elementwise Func over two equal-length
// sequences wrapped in a named Op:
//
//	sum, err := mix.Add.Apply([]float64{1, 2}, []float64{10, 20}) // [11 22]
//
// Built-ins: Add, Subtract, Multiply, Divide, Maximum, Minimum, Mean.
// The set is open: mix.New("hypot", "⊕", mix.Elementwise("hypot", math.Hypot)).
//
// The first operand is always the running total, so non-commutative
// operations (Subtract, Divide) read as "total ∘ next".
package mix
