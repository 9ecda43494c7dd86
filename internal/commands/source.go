// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/philarios/philarios/internal/config"
	"github.com/philarios/philarios/internal/schema"
	"github.com/philarios/philarios/internal/schemas"
)

// loadSchema resolves ref as a builtin name first and as a schema file otherwise.
func loadSchema(ref string) (*schema.Schema, error) {
	s, err := schemas.Get(ref)
	if err == nil {
		return s, nil
	}
	if _, statErr := os.Stat(ref); statErr != nil {
		return nil, fmt.Errorf("%w; no schema file %s either", err, ref)
	}
	return loadSchemaFile("", ref)
}

// loadTarget loads the schema of t, resolving file paths against base.
func loadTarget(base string, t config.Target) (*schema.Schema, error) {
	var (
		s   *schema.Schema
		err error
	)
	if t.Builtin != "" {
		s, err = schemas.Get(t.Builtin)
	} else {
		s, err = loadSchemaFile(base, t.Schema)
	}
	if err != nil {
		return nil, err
	}
	if t.Package != "" {
		s.Package = t.Package
	}
	return s, nil
}

func loadSchemaFile(base, path string) (*schema.Schema, error) {
	if path == "" {
		return nil, errors.New("schema path is empty")
	}
	if base != "" && !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	s, err := schema.NewLoader(os.DirFS(dir)).LoadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema %s: %w", path, err)
	}
	return s, nil
}

// resolvePath joins a relative p onto base.
func resolvePath(base, p string) string {
	if base == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
