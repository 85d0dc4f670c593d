// SPDX-License-Identifier: MIT
// Package: sigmix/config
//
// demo.go - the built-in demonstration recipe.

package config

import (
	"fmt"
	"io"
	"math"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Demo returns the demonstration recipe: a sinusoid plus a parabola plus
// uniform white noise over 101 samples of [-10, 10]. Exports and the chart
// land in dir (empty dir disables them).
func Demo(dir string) *File {
	f := &File{
		Domain: Domain{Start: -10, Stop: 10, Samples: 101},
		Ingredients: []Ingredient{
			{Kind: "sinusoid", Name: "sinusoid", Params: map[string]float64{"phase": 0, "amplitude": 4, "period": math.Pi}},
			{Kind: "parabola", Name: "parabola", Mix: "add", Params: map[string]float64{"a": -2, "b": 0, "c": 3}},
			{Kind: "uniform", Name: "white noise", Mix: "add", Params: map[string]float64{"shift": 0, "scale": 5}},
		},
		Chart: Chart{Title: "sigmix demo"},
	}
	if dir != "" {
		f.Export = Export{
			Eval:       filepath.Join(dir, "eval.csv"),
			Cumulative: filepath.Join(dir, "cum.csv"),
		}
		f.Chart.Path = filepath.Join(dir, "recipe.png")
	}

	return f
}

// Encode writes f as YAML.
func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return enc.Close()
}
