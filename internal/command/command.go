// SPDX-License-Identifier: MIT
// Package command wires the sigmix command-line interface.
//
// Results (descriptions, summaries, distances) go to stdout; logs go to
// stderr so output can be piped.
package command

import (
	"fmt"
	"io"

	"github.com/katalvlaran/sigmix/chart"
	"github.com/katalvlaran/sigmix/config"
	"github.com/katalvlaran/sigmix/internal/logging"
	"github.com/katalvlaran/sigmix/recipe"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitBadArgs = 2
)

// Version is reported by --version.
var Version = "0.1.0"

// env carries the writers and logger shared by every command.
type env struct {
	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger
}

// Main runs the CLI with args (args[0] is the program name) and returns
// the process exit code.
func Main(args []string, stdout, stderr io.Writer) int {
	e := &env{stdout: stdout, stderr: stderr, log: zap.NewNop()}
	code := ExitOK

	app := cli.NewApp()
	app.Name = "sigmix"
	app.Usage = "Compose synthetic signals from ingredients and mixing functions."
	app.Version = Version
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "Debug-level console logging on stderr",
		},
	}
	app.Before = func(c *cli.Context) error {
		e.log = logging.New(stderr, c.GlobalBool("verbose"))
		return nil
	}
	app.Commands = []cli.Command{
		cookCommand(e),
		describeCommand(e),
		demoCommand(e),
		compareCommand(e),
		kindsCommand(e),
	}
	app.CommandNotFound = func(c *cli.Context, name string) {
		fmt.Fprintf(stderr, "'%s %s' is not a sigmix subcommand\n", c.App.Name, name)
		code = ExitBadArgs
	}

	if err := app.Run(args); err != nil {
		fmt.Fprintln(stderr, "sigmix:", err)
		e.log.Error("command failed", zap.Error(err))
		if code == ExitOK {
			code = ExitFailure
		}
	}
	_ = e.log.Sync()

	return code
}

// cook builds, cooks and exports f, then prints its description and a
// summary of the final signal.
func (e *env) cook(f *config.File) (*recipe.Result, error) {
	rec, x, err := f.Build(e.log)
	if err != nil {
		return nil, err
	}

	res, err := rec.Cook(x,
		recipe.WithEvalExport(f.Export.Eval),
		recipe.WithCumulativeExport(f.Export.Cumulative))
	if err != nil {
		return nil, err
	}

	fmt.Fprint(e.stdout, rec.Describe())
	lo, hi, mean := summarize(res.Final)
	fmt.Fprintf(e.stdout, "samples=%d min=%.4g max=%.4g mean=%.4g\n", len(res.Final), lo, hi, mean)

	for _, p := range []string{f.Export.Eval, f.Export.Cumulative} {
		if p != "" {
			fmt.Fprintln(e.stdout, "wrote", p)
		}
	}

	if f.Chart.Path != "" {
		if err := res.SaveChart(f.Chart.Path, chartOptions(f.Chart)...); err != nil {
			return nil, err
		}
		e.log.Info("chart saved", zap.String("path", f.Chart.Path))
		fmt.Fprintln(e.stdout, "wrote", f.Chart.Path)
	}

	return res, nil
}

// chartOptions maps the config chart section to chart options.
func chartOptions(c config.Chart) []chart.Option {
	var opts []chart.Option
	if c.Title != "" {
		opts = append(opts, chart.WithTitle(c.Title))
	}
	if c.Width > 0 && c.Height > 0 {
		opts = append(opts, chart.WithSize(vg.Length(c.Width)*vg.Inch, vg.Length(c.Height)*vg.Inch))
	}

	return opts
}

func summarize(v []float64) (lo, hi, mean float64) {
	if len(v) == 0 {
		return 0, 0, 0
	}
	lo, hi = v[0], v[0]
	var sum float64
	for _, x := range v {
		lo = min(lo, x)
		hi = max(hi, x)
		sum += x
	}

	return lo, hi, sum / float64(len(v))
}
