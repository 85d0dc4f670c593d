// SPDX-License-Identifier: MIT
// Package: sigmix/recipe
//
// render.go - hand cooked data to the chart collaborator.

package recipe

import (
	"fmt"
	"io"

	"github.com/katalvlaran/sigmix/chart"
)

// totalName labels the cumulative curve in charts.
const totalName = "cumulative"

// Render cooks the recipe over domain and writes a chart of every
// ingredient curve plus the cumulative curve into w.
func (r *Recipe) Render(domain []float64, w io.Writer, opts ...chart.Option) error {
	res, err := r.Cook(domain)
	if err != nil {
		return fmt.Errorf("Render: %w", err)
	}

	return res.WriteChart(w, opts...)
}

// RenderFile is Render into a file; the format follows the extension.
func (r *Recipe) RenderFile(domain []float64, path string, opts ...chart.Option) error {
	res, err := r.Cook(domain)
	if err != nil {
		return fmt.Errorf("RenderFile: %w", err)
	}

	return res.SaveChart(path, opts...)
}

// Series returns the chart inputs for this result: individual curves and
// the cumulative curve.
func (res *Result) Series() ([]chart.Series, chart.Series) {
	curves := make([]chart.Series, len(res.Evaluations))
	for k, v := range res.Evaluations {
		curves[k] = chart.Series{Name: res.Names[k], Values: v}
	}

	return curves, chart.Series{Name: totalName, Values: res.Final}
}

// WriteChart encodes the chart of an existing result into w.
func (res *Result) WriteChart(w io.Writer, opts ...chart.Option) error {
	curves, total := res.Series()
	return chart.Write(w, res.Domain, curves, total, opts...)
}

// SaveChart writes the chart of an existing result to path.
func (res *Result) SaveChart(path string, opts ...chart.Option) error {
	curves, total := res.Series()
	return chart.Save(path, res.Domain, curves, total, opts...)
}
