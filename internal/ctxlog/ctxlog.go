// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package ctxlog carries an hclog.Logger through a context.Context.
package ctxlog

import (
	"context"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
)

type key struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger hclog.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// FromContext returns the logger stored in ctx, or a null logger.
func FromContext(ctx context.Context) hclog.Logger {
	if logger, ok := ctx.Value(key{}).(hclog.Logger); ok {
		return logger
	}
	return hclog.NewNullLogger()
}

// New builds the CLI logger. format is "text" or "json"; an unknown level falls
// back to warn.
func New(w io.Writer, level, format string) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Warn
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "philarios",
		Level:      lvl,
		Output:     w,
		JSONFormat: strings.EqualFold(format, "json"),
	})
}
