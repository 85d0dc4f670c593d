// SPDX-License-Identifier: MIT
// Package logging builds the zap loggers used by the sigmix command.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to w. Verbose selects a human-readable
// console encoder at debug level; otherwise JSON at info level.
func New(w io.Writer, verbose bool) *zap.Logger {
	var (
		enc   zapcore.Encoder
		level = zap.InfoLevel
	)
	if verbose {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zap.DebugLevel
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), level)

	return zap.New(core)
}
