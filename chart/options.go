// SPDX-License-Identifier: MIT
// Package: sigmix/chart
//
// options.go - functional options for chart rendering.
//
// Deterministic defaults:
//   - title  = "Recipe"
//   - labels = "x" / "y"
//   - size   = 8in × 5in
//   - format = "png" (Write only; Save follows the file extension)

package chart

import (
	"gonum.org/v1/plot/vg"
)

// Option customizes a chart.
type Option func(*config)

type config struct {
	title  string
	xLabel string
	yLabel string
	width  vg.Length
	height vg.Length
	format string
}

const (
	defaultTitle  = "Recipe"
	defaultXLabel = "x"
	defaultYLabel = "y"
	defaultWidth  = 8 * vg.Inch
	defaultHeight = 5 * vg.Inch
	defaultFormat = "png"
)

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithLabels sets the axis labels.
func WithLabels(x, y string) Option {
	return func(c *config) { c.xLabel, c.yLabel = x, y }
}

// WithSize sets the canvas size. Panics on non-positive sizes.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic("chart: WithSize(non-positive)")
	}
	return func(c *config) { c.width, c.height = width, height }
}

// WithFormat sets the encoding used by Write ("png", "svg", "pdf", ...).
// Empty keeps the default.
func WithFormat(format string) Option {
	return func(c *config) {
		if format != "" {
			c.format = format
		}
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		title:  defaultTitle,
		xLabel: defaultXLabel,
		yLabel: defaultYLabel,
		width:  defaultWidth,
		height: defaultHeight,
		format: defaultFormat,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
