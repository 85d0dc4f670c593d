// SPDX-License-Identifier: MIT
// Package: sigmix/recipe
//
// options.go — functional options for New and Cook.
//
// Contract (strict):
//   • Options are functional and applied in order (last wins).
//   • Option constructors PANIC on meaningless inputs (nil logger);
//     Cook itself never panics.
//   • No hidden globals: the default logger is zap.NewNop().

package recipe

import (
	"go.uber.org/zap"
)

// Option customizes a Recipe.
type Option func(*Recipe)

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("recipe: WithLogger(nil)")
	}
	return func(r *Recipe) {
		r.log = log
	}
}

// CookOption customizes one Cook call.
type CookOption func(*cookConfig)

type cookConfig struct {
	evalPath string
	cumPath  string
}

// WithEvalExport writes the per-ingredient evaluations to path
// (one column per ingredient, one row per domain sample).
// An empty path disables the export.
func WithEvalExport(path string) CookOption {
	return func(c *cookConfig) {
		c.evalPath = path
	}
}

// WithCumulativeExport writes the running cumulative sequences to path
// (one column per step, one row per domain sample).
// An empty path disables the export.
func WithCumulativeExport(path string) CookOption {
	return func(c *cookConfig) {
		c.cumPath = path
	}
}

func newCookConfig(opts ...CookOption) cookConfig {
	var cfg cookConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
