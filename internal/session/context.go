// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/philarios/philarios/internal/config"
)

var (
	// ErrNotInitialized indicates no philarios.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a philarios project (philarios.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the loaded project configuration.
type Context struct {
	// Dir is the project root, the directory holding philarios.yaml.
	Dir string

	Config *config.Config
}

// Path resolves a path from the config file against the project root.
func (c *Context) Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the session Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	s, err := LoadDir(cwd)
	if err != nil {
		return nil, err
	}
	return With(ctx, s), nil
}

// LoadDir loads the project rooted at dir.
func LoadDir(dir string) (*Context, error) {
	configPath := filepath.Join(dir, config.FileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	return &Context{Dir: dir, Config: cfg}, nil
}

// With returns a copy of ctx carrying s.
func With(ctx context.Context, s *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if s, ok := ctx.Value(contextKey{}).(*Context); ok {
		return s
	}
	return nil
}
