// SPDX-License-Identifier: MIT
// Package config: sentinel error set.

package config

import "errors"

// ErrInvalidConfig marks every problem found in a recipe document. Use
// multierr.Errors to list them individually.
var ErrInvalidConfig = errors.New("config: invalid recipe file")
