// SPDX-License-Identifier: MIT
// Package: sigmix/config
//
// config.go - YAML recipe files.
//
// Contract:
//   - Parse is strict: unknown keys are rejected so typos never silently
//     drop a parameter.
//   - Validate reports EVERY problem at once (multierr), each wrapped with
//     ErrInvalidConfig; ingredient construction errors keep their own
//     sentinels too.
//   - Build is deterministic: the same file always yields the same recipe,
//     domain and noise samples.
//
// Defaults:
//   - ingredient name → kind name
//   - ingredient mix  → "add"
//   - ingredient seed → File.Seed + index (when File.Seed is set), else the
//     ingredient package's name-derived seed

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/sigmix/domain"
	"github.com/katalvlaran/sigmix/ingredient"
	"github.com/katalvlaran/sigmix/mix"
	"github.com/katalvlaran/sigmix/recipe"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// defaultMix is applied to ingredients without an explicit mix.
const defaultMix = "add"

// File is one recipe document.
type File struct {
	Domain      Domain       `yaml:"domain"`
	Seed        *int64       `yaml:"seed,omitempty"`
	Ingredients []Ingredient `yaml:"ingredients"`
	Export      Export       `yaml:"export,omitempty"`
	Chart       Chart        `yaml:"chart,omitempty"`
}

// Domain describes a Linspace domain.
type Domain struct {
	Start   float64 `yaml:"start"`
	Stop    float64 `yaml:"stop"`
	Samples int     `yaml:"samples"`
}

// Ingredient describes one recipe step.
type Ingredient struct {
	Kind   string             `yaml:"kind"`
	Name   string             `yaml:"name,omitempty"`
	Mix    string             `yaml:"mix,omitempty"`
	Params map[string]float64 `yaml:"params,omitempty"`
	Seed   *int64             `yaml:"seed,omitempty"`
}

// Export holds optional flat-file destinations.
type Export struct {
	Eval       string `yaml:"eval,omitempty"`
	Cumulative string `yaml:"cumulative,omitempty"`
}

// Chart holds optional chart settings. Width/Height are inches.
type Chart struct {
	Path   string  `yaml:"path,omitempty"`
	Title  string  `yaml:"title,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// Load reads and validates the file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return cfg, nil
}

// Parse decodes and validates a recipe document.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg File
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Parse: empty document: %w", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("Parse: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the document without building anything heavier than the
// ingredients themselves. All problems are combined with multierr.
func (f *File) Validate() error {
	var errs error

	if f.Domain.Samples < 1 || f.Domain.Samples > domain.MaxSamples {
		errs = multierr.Append(errs, fmt.Errorf("domain.samples=%d: %w", f.Domain.Samples, ErrInvalidConfig))
	}
	if len(f.Ingredients) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("ingredients: none listed: %w", ErrInvalidConfig))
	}
	if f.Chart.Width < 0 || f.Chart.Height < 0 {
		errs = multierr.Append(errs, fmt.Errorf("chart size %vx%v: %w", f.Chart.Width, f.Chart.Height, ErrInvalidConfig))
	}

	for i, spec := range f.Ingredients {
		if _, err := f.ingredient(i, spec); err != nil {
			errs = multierr.Append(errs, err)
		}
		if _, err := mixFor(i, spec); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	return errs
}

// Build turns the document into a recipe and its domain.
func (f *File) Build(log *zap.Logger) (*recipe.Recipe, []float64, error) {
	if err := f.Validate(); err != nil {
		return nil, nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	x, err := domain.Linspace(f.Domain.Start, f.Domain.Stop, f.Domain.Samples)
	if err != nil {
		return nil, nil, fmt.Errorf("Build: %w: %w", ErrInvalidConfig, err)
	}

	rec := recipe.New(recipe.WithLogger(log))
	for i, spec := range f.Ingredients {
		ing, err := f.ingredient(i, spec)
		if err != nil {
			return nil, nil, err
		}
		op, err := mixFor(i, spec)
		if err != nil {
			return nil, nil, err
		}
		rec.Append(ing, op)
	}
	log.Debug("recipe built from config", zap.Int("ingredients", rec.Len()), zap.Int("samples", len(x)))

	return rec, x, nil
}

// ingredient constructs step i.
func (f *File) ingredient(i int, spec Ingredient) (*ingredient.Ingredient, error) {
	kind, ok := ingredient.Lookup(spec.Kind)
	if !ok {
		return nil, fmt.Errorf("ingredients[%d]: unknown kind %q: %w", i, spec.Kind, ErrInvalidConfig)
	}

	var opts []ingredient.Option
	switch {
	case spec.Seed != nil:
		opts = append(opts, ingredient.WithSeed(*spec.Seed))
	case f.Seed != nil:
		opts = append(opts, ingredient.WithSeed(*f.Seed+int64(i)))
	}

	ing, err := ingredient.New(kind, spec.Name, ingredient.Params(spec.Params), opts...)
	if err != nil {
		return nil, fmt.Errorf("ingredients[%d]: %w: %w", i, ErrInvalidConfig, err)
	}

	return ing, nil
}

// mixFor resolves the mixing operation of step i.
func mixFor(i int, spec Ingredient) (mix.Op, error) {
	name := spec.Mix
	if name == "" {
		name = defaultMix
	}
	op, ok := mix.Lookup(name)
	if !ok {
		return mix.Op{}, fmt.Errorf("ingredients[%d]: unknown mix %q: %w", i, name, ErrInvalidConfig)
	}

	return op, nil
}
