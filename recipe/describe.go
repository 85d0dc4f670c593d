// SPDX-License-Identifier: MIT
// Package: sigmix/recipe
//
// describe.go - human-readable recipe summary (pure formatting).

package recipe

import (
	"fmt"
	"strings"
)

// Describe lists the steps, one per line, with parameters sorted by name:
//
//	Recipe: 2 ingredients
//	  1.     sinusoid: sinusoid(amplitude=4, period=3.14, phase=0)
//	  2. +   parabola: parabola(a=-2, b=0, c=3)
//
// Stochastic ingredients also show their seed.
func (r *Recipe) Describe() string {
	var sb strings.Builder

	noun := "ingredients"
	if len(r.steps) == 1 {
		noun = "ingredient"
	}
	fmt.Fprintf(&sb, "Recipe: %d %s\n", len(r.steps), noun)

	for k, st := range r.steps {
		sym := ""
		if k > 0 {
			sym = st.Mix.Symbol
			if sym == "" {
				sym = "?"
			}
		}
		fmt.Fprintf(&sb, "  %d. %-4s", k+1, sym)
		if st.Ingredient == nil {
			sb.WriteString("<nil>\n")
			continue
		}
		ing := st.Ingredient
		fmt.Fprintf(&sb, "%s: %s(%s)", ing.Name(), ing.Kind(), ing.Params())
		if ing.Stochastic() {
			fmt.Fprintf(&sb, " [seed=%d]", ing.Seed())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String is Describe.
func (r *Recipe) String() string { return r.Describe() }
