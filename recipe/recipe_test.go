package recipe_test

import (
	"bytes"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/sigmix/ingredient"
	"github.com/katalvlaran/sigmix/mix"
	"github.com/katalvlaran/sigmix/recipe"
	"github.com/katalvlaran/sigmix/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// grid returns the 21-point integer domain [-10..10].
func grid() []float64 {
	x := make([]float64, 21)
	for i := range x {
		x[i] = float64(i - 10)
	}
	return x
}

func line(m, b float64) *ingredient.Ingredient {
	return ingredient.MustNew(ingredient.Line, "line", ingredient.Params{"m": m, "b": b})
}

func parabola(a, b, c float64) *ingredient.Ingredient {
	return ingredient.MustNew(ingredient.Parabola, "parabola", ingredient.Params{"a": a, "b": b, "c": c})
}

// TestCook_Seed verifies a single ingredient's cumulative equals its evaluation.
func TestCook_Seed(t *testing.T) {
	x := grid()
	r := recipe.New()
	r.Append(line(1, 0), mix.Multiply) // seed mix is never applied

	res, err := r.Cook(x)
	require.NoError(t, err)
	assert.Equal(t, x, res.Final)
	assert.Equal(t, res.Evaluations[0], res.Cumulative[0])
	require.Len(t, res.Cumulative, 1)
}

// TestCook_LinePlusParabola pins the canonical two-step example.
func TestCook_LinePlusParabola(t *testing.T) {
	x := grid()
	r := recipe.New()
	r.Append(line(10, 1), mix.Add)
	r.Append(parabola(-2, 0, 3), mix.Add)

	res, err := r.Cook(x)
	require.NoError(t, err)
	for i, v := range x {
		assert.Equal(t, (10*v+1)+(-2*v*v+3), res.Final[i], "sample %v", v)
	}
	assert.Equal(t, []string{"line", "parabola"}, res.Names)
	assert.Equal(t, []string{"1:line", "2:+parabola"}, res.Labels)
}

// TestCook_FoldOrder checks cumulative[k] = Mk(cumulative[k-1], eval[k])
// with non-commutative operations.
func TestCook_FoldOrder(t *testing.T) {
	x := grid()
	ops := []mix.Op{mix.Add, mix.Subtract, mix.Multiply, mix.Divide, mix.Maximum}
	ings := []*ingredient.Ingredient{
		line(2, 1),
		parabola(1, 0, 1),
		ingredient.MustNew(ingredient.Constant, "three", ingredient.Params{"c": 3}),
		ingredient.MustNew(ingredient.Constant, "half", ingredient.Params{"c": 0.5}),
		ingredient.MustNew(ingredient.Gaussian, "noise", ingredient.Params{"mean": 0, "stdev": 10}),
	}

	r := recipe.New()
	for i, ing := range ings {
		r.Append(ing, ops[i])
	}
	res, err := r.Cook(x)
	require.NoError(t, err)
	require.Len(t, res.Cumulative, len(ings))

	for k := 1; k < len(ings); k++ {
		want, err := ops[k].Apply(res.Cumulative[k-1], res.Evaluations[k])
		require.NoError(t, err)
		assert.Equal(t, want, res.Cumulative[k], "step %d", k+1)
	}
	assert.Equal(t, res.Cumulative[len(ings)-1], res.Final)
}

// TestCook_Deterministic cooks twice with stochastic ingredients.
func TestCook_Deterministic(t *testing.T) {
	x := grid()
	r := recipe.New()
	r.Append(ingredient.MustNew(ingredient.Uniform, "white noise", ingredient.Params{"shift": 0, "scale": 5}), mix.Add)
	r.Append(ingredient.MustNew(ingredient.Poisson, "poisson", ingredient.Params{"lam": 2}), mix.Add)

	a, err := r.Cook(x)
	require.NoError(t, err)
	b, err := r.Cook(x)
	require.NoError(t, err)
	assert.Equal(t, a.Final, b.Final)
	assert.NotEqual(t, a.RunID, b.RunID)
}

// TestCook_Errors is the error taxonomy table.
func TestCook_Errors(t *testing.T) {
	x := grid()
	short := ingredient.MustNew(ingredient.Custom("short", nil,
		func(x []float64, _ ingredient.Params, _ *rand.Rand) ([]float64, error) {
			return make([]float64, len(x)+1), nil
		}), "short", nil)
	truncating := mix.New("truncate", "~", func(a, _ []float64) ([]float64, error) {
		return a[:1], nil
	})
	mismatch := mix.New("mismatch", "!", func(a, _ []float64) ([]float64, error) {
		return mix.Add.Apply(a, a[:1])
	})

	cases := []struct {
		name   string
		build  func(r *recipe.Recipe)
		domain []float64
		want   []error
	}{
		{"empty recipe", func(*recipe.Recipe) {}, x, []error{recipe.ErrEmptyRecipe}},
		{"empty domain", func(r *recipe.Recipe) { r.Append(line(1, 0), mix.Add) }, nil, []error{recipe.ErrEmptyDomain}},
		{"nil ingredient", func(r *recipe.Recipe) {
			r.Append(line(1, 0), mix.Add)
			r.Append(nil, mix.Add)
		}, x, []error{recipe.ErrNilIngredient}},
		{"evaluation length", func(r *recipe.Recipe) {
			r.Append(line(1, 0), mix.Add)
			r.Append(short, mix.Add)
		}, x, []error{recipe.ErrShape, ingredient.ErrShape}},
		{"nil mix", func(r *recipe.Recipe) {
			r.Append(line(1, 0), mix.Add)
			r.Append(line(2, 0), mix.Op{Name: "none"})
		}, x, []error{recipe.ErrNilMix}},
		{"mix length", func(r *recipe.Recipe) {
			r.Append(line(1, 0), mix.Add)
			r.Append(line(2, 0), truncating)
		}, x, []error{recipe.ErrShape}},
		{"mix mismatch", func(r *recipe.Recipe) {
			r.Append(line(1, 0), mix.Add)
			r.Append(line(2, 0), mismatch)
		}, x, []error{recipe.ErrShape, mix.ErrDimensionMismatch}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := recipe.New()
			tc.build(r)
			res, err := r.Cook(tc.domain)
			assert.Nil(t, res, "no partial results")
			for _, want := range tc.want {
				assert.ErrorIs(t, err, want)
			}
			assert.Equal(t, recipe.Building, r.State())
		})
	}
}

// TestCook_ExportRoundTrip re-parses both exports and compares with memory.
func TestCook_ExportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	evalPath := filepath.Join(dir, "out", "eval.csv")
	cumPath := filepath.Join(dir, "out", "cum.csv")

	r := recipe.New()
	r.Append(ingredient.MustNew(ingredient.Sinusoid, "sinusoid", ingredient.Params{"phase": 0, "amplitude": 4, "period": 3.14159}), mix.Add)
	r.Append(parabola(-2, 0, 3), mix.Add)
	r.Append(ingredient.MustNew(ingredient.Uniform, "white noise", ingredient.Params{"shift": 0, "scale": 5}), mix.Add)

	res, err := r.Cook(grid(), recipe.WithEvalExport(evalPath), recipe.WithCumulativeExport(cumPath))
	require.NoError(t, err)

	evals, err := table.ReadFile(evalPath)
	require.NoError(t, err)
	assert.Equal(t, res.EvalColumns(), evals)

	cums, err := table.ReadFile(cumPath)
	require.NoError(t, err)
	assert.Equal(t, res.CumulativeColumns(), cums)
	assert.Equal(t, "3:+white noise", cums[2].Name)
}

// TestCook_ExportFailure reports ErrExport and no result.
func TestCook_ExportFailure(t *testing.T) {
	dir := t.TempDir()
	r := recipe.New()
	r.Append(line(1, 0), mix.Add)

	// A directory path cannot be created as a file.
	res, err := r.Cook(grid(), recipe.WithEvalExport(dir))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, recipe.ErrExport)
}

// TestCook_ExportAllOrNothing leaves no file behind when a later export
// fails after an earlier one could be written.
func TestCook_ExportAllOrNothing(t *testing.T) {
	dir := t.TempDir()
	evalPath := filepath.Join(dir, "eval.csv")
	r := recipe.New()
	r.Append(line(1, 0), mix.Add)

	res, err := r.Cook(grid(), recipe.WithEvalExport(evalPath), recipe.WithCumulativeExport(dir))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, recipe.ErrExport)
	assert.NoFileExists(t, evalPath)

	// A parent that is a regular file fails while staging the second table.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	res, err = r.Cook(grid(), recipe.WithEvalExport(evalPath), recipe.WithCumulativeExport(filepath.Join(blocker, "cum.csv")))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, recipe.ErrExport)
	assert.NoFileExists(t, evalPath)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "only the blocker file may remain")
	assert.Equal(t, "blocker", entries[0].Name())
	assert.Equal(t, recipe.Building, r.State())
}

// TestCook_UnnamedCustomExport round-trips the export of a single
// ingredient whose display name is empty.
func TestCook_UnnamedCustomExport(t *testing.T) {
	identity := ingredient.Custom("", nil, func(x []float64, _ ingredient.Params, _ *rand.Rand) ([]float64, error) {
		return append([]float64(nil), x...), nil
	})
	r := recipe.New()
	r.Append(ingredient.MustNew(identity, "", nil), mix.Add)

	evalPath := filepath.Join(t.TempDir(), "eval.csv")
	res, err := r.Cook(grid(), recipe.WithEvalExport(evalPath))
	require.NoError(t, err)

	got, err := table.ReadFile(evalPath)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Name)
	assert.Equal(t, res.EvalColumns(), got)
	assert.Len(t, got[0].Values, 21)
}

// TestCook_DomainIsolation hands every step a private domain copy.
func TestCook_DomainIsolation(t *testing.T) {
	clobber := ingredient.Custom("clobber", nil, func(x []float64, _ ingredient.Params, _ *rand.Rand) ([]float64, error) {
		out := make([]float64, len(x))
		for i := range x {
			x[i] = 1000
		}
		return out, nil
	})
	x := grid()
	r := recipe.New()
	r.Append(ingredient.MustNew(clobber, "clobber", nil), mix.Add)
	r.Append(line(1, 0), mix.Add)

	res, err := r.Cook(x)
	require.NoError(t, err)
	assert.Equal(t, grid(), x)
	assert.Equal(t, grid(), res.Domain)
	assert.Equal(t, grid(), res.Evaluations[1])
}

// TestState tracks Building → Cooked and appends after cooking.
func TestState(t *testing.T) {
	r := recipe.New()
	assert.Equal(t, recipe.Building, r.State())
	assert.Equal(t, "building", r.State().String())

	r.Append(line(1, 0), mix.Add)
	_, err := r.Cook(grid())
	require.NoError(t, err)
	assert.Equal(t, recipe.Cooked, r.State())

	r.Append(line(1, 0), mix.Add)
	res, err := r.Cook(grid())
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 20.0, res.Final[20])
	assert.Equal(t, "cooked", r.State().String())
}

// TestDescribe pins the summary layout.
func TestDescribe(t *testing.T) {
	r := recipe.New()
	assert.Equal(t, "Recipe: 0 ingredients\n", r.Describe())

	r.Append(line(10, 1), mix.Add)
	assert.Equal(t, "Recipe: 1 ingredient\n  1.     line: line(b=1, m=10)\n", r.Describe())

	r.Append(parabola(-2, 0, 3), mix.Multiply)
	noise := ingredient.MustNew(ingredient.Gaussian, "gaussian", ingredient.Params{"mean": 5, "stdev": 2}, ingredient.WithSeed(9))
	r.Append(noise, mix.Subtract)

	want := "Recipe: 3 ingredients\n" +
		"  1.     line: line(b=1, m=10)\n" +
		"  2. *   parabola: parabola(a=-2, b=0, c=3)\n" +
		"  3. -   gaussian: gaussian(mean=5, stdev=2) [seed=9]\n"
	assert.Equal(t, want, r.Describe())
	assert.Equal(t, want, r.String())

	sine := recipe.New()
	sine.Append(ingredient.MustNew(ingredient.Sinusoid, "sine", ingredient.Params{"phase": 0, "amplitude": 4, "period": 2}), mix.Add)
	assert.Equal(t, "Recipe: 1 ingredient\n  1.     sine: sinusoid(amplitude=4, period=2, phase=0)\n", sine.Describe())
}

// TestLogging checks the cook run is logged with its run id.
func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := recipe.New(recipe.WithLogger(zap.New(core)))
	r.Append(line(1, 0), mix.Add)

	res, err := r.Cook(grid(), recipe.WithCumulativeExport(filepath.Join(t.TempDir(), "cum.csv")))
	require.NoError(t, err)

	done := logs.FilterMessage("recipe cooked").All()
	require.Len(t, done, 1)
	assert.Equal(t, res.RunID, done[0].ContextMap()["run_id"])
	assert.Equal(t, int64(21), done[0].ContextMap()["samples"])
	assert.Equal(t, 1, logs.FilterMessage("exported table").Len())

	assert.Panics(t, func() { recipe.WithLogger(nil) })
}

// TestRender checks the chart path end to end.
func TestRender(t *testing.T) {
	r := recipe.New()
	r.Append(line(10, 1), mix.Add)
	r.Append(parabola(-2, 0, 3), mix.Add)

	var buf bytes.Buffer
	require.NoError(t, r.Render(grid(), &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	path := filepath.Join(t.TempDir(), "recipe.svg")
	require.NoError(t, r.RenderFile(grid(), path))

	err := recipe.New().Render(grid(), &buf)
	assert.ErrorIs(t, err, recipe.ErrEmptyRecipe)
}

// TestRender_DivideByZero charts 1/x across x=0, where the fold yields +Inf.
func TestRender_DivideByZero(t *testing.T) {
	r := recipe.New()
	r.Append(line(0, 1), mix.Add)
	r.Append(line(1, 0), mix.Divide)

	res, err := r.Cook(grid())
	require.NoError(t, err)
	require.True(t, math.IsInf(res.Final[10], 1))

	var buf bytes.Buffer
	require.NoError(t, r.Render(grid(), &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
	require.NoError(t, r.RenderFile(grid(), filepath.Join(t.TempDir(), "ratio.svg")))
}
