package chart_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/sigmix/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

var (
	xs     = []float64{0, 1, 2, 3}
	curves = []chart.Series{
		{Name: "line", Values: []float64{0, 1, 2, 3}},
		{Name: "parabola", Values: []float64{0, 1, 4, 9}},
	}
	total = chart.Series{Name: "cumulative", Values: []float64{0, 2, 6, 12}}
)

// TestDraw_Legend checks every curve lands in the plot.
func TestDraw_Legend(t *testing.T) {
	p, err := chart.Draw(xs, curves, total, chart.WithTitle("demo"))
	require.NoError(t, err)
	assert.Equal(t, "demo", p.Title.Text)
	assert.Equal(t, "x", p.X.Label.Text)
	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 3.0, p.X.Max)
	assert.Equal(t, 12.0, p.Y.Max)
}

// TestWrite_PNG checks the PNG signature of the encoded chart.
func TestWrite_PNG(t *testing.T) {
	var buf bytes.Buffer
	err := chart.Write(&buf, xs, curves, total, chart.WithSize(4*vg.Inch, 3*vg.Inch))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

// TestSave_SVG writes a file whose format follows the extension.
func TestSave_SVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe.svg")
	require.NoError(t, chart.Save(path, xs, nil, total))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Equal(t, "svg", chart.FormatFor(path))
}

// TestErrors covers empty input and length mismatches.
func TestErrors(t *testing.T) {
	_, err := chart.Draw(nil, curves, total)
	assert.ErrorIs(t, err, chart.ErrNoData)

	_, err = chart.Draw(xs, nil, chart.Series{})
	assert.ErrorIs(t, err, chart.ErrNoData)

	_, err = chart.Draw(xs, []chart.Series{{Name: "short", Values: []float64{1}}}, total)
	assert.ErrorIs(t, err, chart.ErrLengthMismatch)

	assert.Panics(t, func() { chart.WithSize(0, 1) })
}

// TestDraw_NonFiniteGaps draws NaN/±Inf samples as gaps instead of failing.
func TestDraw_NonFiniteGaps(t *testing.T) {
	ratio := chart.Series{Name: "ratio", Values: []float64{1, math.Inf(1), math.NaN(), -1}}

	p, err := chart.Draw(xs, []chart.Series{ratio}, chart.Series{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 3.0, p.X.Max)
	assert.Equal(t, -1.0, p.Y.Min)
	assert.Equal(t, 1.0, p.Y.Max)

	var buf bytes.Buffer
	require.NoError(t, chart.Write(&buf, xs, []chart.Series{ratio}, ratio))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	nan := math.NaN()
	_, err = chart.Draw(xs, curves, chart.Series{Name: "nan", Values: []float64{nan, nan, nan, nan}})
	require.NoError(t, err)
}
