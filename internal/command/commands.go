// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/sigmix/compare"
	"github.com/katalvlaran/sigmix/config"
	"github.com/katalvlaran/sigmix/ingredient"
	"github.com/katalvlaran/sigmix/mix"
	"github.com/urfave/cli"
)

var errNoRecipe = errors.New("--recipe is required")

func cookCommand(e *env) cli.Command {
	return cli.Command{
		Name:  "cook",
		Usage: "Cook a recipe file, export tables and draw the chart",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "recipe, r", Usage: "Recipe file (yaml)"},
			cli.StringFlag{Name: "eval", Usage: "Write per-ingredient evaluations to this CSV (overrides the file)"},
			cli.StringFlag{Name: "cum", Usage: "Write cumulative steps to this CSV (overrides the file)"},
			cli.StringFlag{Name: "chart", Usage: "Write the chart to this path; format follows the extension (overrides the file)"},
		},
		Action: func(c *cli.Context) error {
			path := c.String("recipe")
			if path == "" {
				return errNoRecipe
			}
			f, err := config.Load(path)
			if err != nil {
				return err
			}
			if v := c.String("eval"); v != "" {
				f.Export.Eval = v
			}
			if v := c.String("cum"); v != "" {
				f.Export.Cumulative = v
			}
			if v := c.String("chart"); v != "" {
				f.Chart.Path = v
			}
			_, err = e.cook(f)
			return err
		},
	}
}

func describeCommand(e *env) cli.Command {
	return cli.Command{
		Name:  "describe",
		Usage: "Print the ingredient/mixing sequence of a recipe file",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "recipe, r", Usage: "Recipe file (yaml)"},
		},
		Action: func(c *cli.Context) error {
			path := c.String("recipe")
			if path == "" {
				return errNoRecipe
			}
			f, err := config.Load(path)
			if err != nil {
				return err
			}
			rec, _, err := f.Build(e.log)
			if err != nil {
				return err
			}
			fmt.Fprint(e.stdout, rec.Describe())
			return nil
		},
	}
}

func demoCommand(e *env) cli.Command {
	return cli.Command{
		Name:  "demo",
		Usage: "Cook the built-in demo recipe (sinusoid + parabola + white noise)",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "out, o", Value: "output", Usage: "Directory for eval.csv, cum.csv and recipe.png"},
			cli.BoolFlag{Name: "dump", Usage: "Print the demo recipe as yaml instead of cooking it"},
		},
		Action: func(c *cli.Context) error {
			f := config.Demo(c.String("out"))
			if c.Bool("dump") {
				return f.Encode(e.stdout)
			}
			_, err := e.cook(f)
			return err
		},
	}
}

func compareCommand(e *env) cli.Command {
	return cli.Command{
		Name:  "compare",
		Usage: "Distance between the final signals of two recipe files",
		Flags: []cli.Flag{
			cli.StringSliceFlag{Name: "recipe, r", Usage: "Recipe file (yaml); give exactly two"},
			cli.IntFlag{Name: "window, w", Value: -1, Usage: "DTW Sakoe-Chiba band; -1 for unlimited"},
			cli.Float64Flag{Name: "penalty", Usage: "DTW slope penalty"},
		},
		Action: func(c *cli.Context) error {
			paths := c.StringSlice("recipe")
			if len(paths) != 2 {
				return fmt.Errorf("compare needs exactly two --recipe files, got %d", len(paths))
			}

			finals := make([][]float64, 2)
			for i, p := range paths {
				f, err := config.Load(p)
				if err != nil {
					return err
				}
				rec, x, err := f.Build(e.log)
				if err != nil {
					return err
				}
				res, err := rec.Cook(x)
				if err != nil {
					return err
				}
				finals[i] = res.Final
			}

			opts := compare.Options{Window: c.Int("window"), SlopePenalty: c.Float64("penalty")}
			d, err := compare.DTW(finals[0], finals[1], opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.stdout, "dtw=%.6g\n", d)

			if rmse, err := compare.RMSE(finals[0], finals[1]); err == nil {
				fmt.Fprintf(e.stdout, "rmse=%.6g\n", rmse)
			}
			return nil
		},
	}
}

func kindsCommand(e *env) cli.Command {
	return cli.Command{
		Name:  "kinds",
		Usage: "List ingredient kinds and mixing functions",
		Action: func(c *cli.Context) error {
			fmt.Fprintln(e.stdout, "ingredients:")
			for _, name := range ingredient.Kinds() {
				k, _ := ingredient.Lookup(name)
				fmt.Fprintf(e.stdout, "  %-9s %s\n", name, strings.Join(k.Params, ", "))
			}
			fmt.Fprintln(e.stdout, "mixing functions:")
			for _, name := range mix.Names() {
				op, _ := mix.Lookup(name)
				fmt.Fprintf(e.stdout, "  %-9s %s\n", name, op.Symbol)
			}
			return nil
		},
	}
}
