// SPDX-License-Identifier: MIT
// Package: sigmix/chart
//
// chart.go - render ingredient curves and the cumulative curve.
//
// Purpose:
//   - Draw every individual curve (thin, dashed) and the final cumulative
//     curve (thick, solid) over a shared x axis, with a legend.
//   - Encode to PNG/SVG/PDF/EPS/JPG/TIFF through gonum/plot.
//
// Contract:
//   - Pure with respect to its inputs; writing happens only in Write/Save.
//   - Every curve must have len(x) samples (ErrLengthMismatch).
//   - At least one curve or a non-empty total is required (ErrNoData).
//   - NaN/±Inf samples (e.g. division by zero) are drawn as gaps: a curve
//     becomes one plotter.Line per finite run, sharing one legend entry.

package chart

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is one named curve.
type Series struct {
	Name   string
	Values []float64
}

const (
	curveWidth = 1 // points, individual ingredients
	totalWidth = 3 // points, cumulative curve
)

// Draw builds the plot without encoding it.
func Draw(x []float64, curves []Series, total Series, opts ...Option) (*plot.Plot, error) {
	if len(x) == 0 || (len(curves) == 0 && len(total.Values) == 0) {
		return nil, fmt.Errorf("Draw: %w", ErrNoData)
	}
	cfg := newConfig(opts...)

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = cfg.xLabel
	p.Y.Label.Text = cfg.yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, s := range curves {
		runs, err := lines(x, s)
		if err != nil {
			return nil, fmt.Errorf("Draw: %w", err)
		}
		for _, l := range runs {
			l.LineStyle.Width = vg.Points(curveWidth)
			l.LineStyle.Color = plotutil.Color(i + 1)
			l.LineStyle.Dashes = plotutil.Dashes(1)
			p.Add(l)
		}
		addLegend(p, s.Name, runs)
	}

	if len(total.Values) > 0 {
		runs, err := lines(x, total)
		if err != nil {
			return nil, fmt.Errorf("Draw: %w", err)
		}
		for _, l := range runs {
			l.LineStyle.Width = vg.Points(totalWidth)
			l.LineStyle.Color = plotutil.Color(0)
			p.Add(l)
		}
		addLegend(p, total.Name, runs)
	}

	return p, nil
}

// Write draws and encodes the chart into w using the configured format.
func Write(w io.Writer, x []float64, curves []Series, total Series, opts ...Option) error {
	cfg := newConfig(opts...)
	p, err := Draw(x, curves, total, opts...)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(cfg.width, cfg.height, cfg.format)
	if err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// Save draws the chart into path, creating parent directories; the format
// follows the file extension (".png", ".svg", ".pdf", ...).
func Save(path string, x []float64, curves []Series, total Series, opts ...Option) error {
	cfg := newConfig(opts...)
	p, err := Draw(x, curves, total, opts...)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("Save(%s): %w", path, err)
		}
	}
	if err = p.Save(cfg.width, cfg.height, path); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}

	return nil
}

// FormatFor maps a path extension to a gonum/plot format name.
func FormatFor(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// lines converts a series into one plotter.Line per run of finite points
// over x. A series without finite points yields no lines.
func lines(x []float64, s Series) ([]*plotter.Line, error) {
	if len(s.Values) != len(x) {
		return nil, fmt.Errorf("series %q has %d samples for %d x values: %w", s.Name, len(s.Values), len(x), ErrLengthMismatch)
	}

	var (
		out []*plotter.Line
		run plotter.XYs
	)
	flush := func() error {
		if len(run) == 0 {
			return nil
		}
		l, err := plotter.NewLine(run)
		if err != nil {
			return err
		}
		out = append(out, l)
		run = nil
		return nil
	}

	for i := range x {
		if !finite(x[i]) || !finite(s.Values[i]) {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		run = append(run, plotter.XY{X: x[i], Y: s.Values[i]})
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return out, nil
}

// addLegend registers name once, using the first run as its thumbnail.
func addLegend(p *plot.Plot, name string, runs []*plotter.Line) {
	if len(runs) > 0 {
		p.Legend.Add(name, runs[0])
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
