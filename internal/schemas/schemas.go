// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schemas holds the schemas of the DSLs shipped with philarios.
package schemas

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/philarios/philarios/internal/schema"
)

// ErrUnknownSchema indicates a builtin schema name that does not exist.
var ErrUnknownSchema = errors.New("unknown builtin schema")

var builtins = map[string]func() *schema.Schema{
	"canvas":     Canvas,
	"concourse":  Concourse,
	"domain":     Domain,
	"filesystem": FileSystem,
}

// Get returns a fresh copy of the builtin schema called name.
func Get(name string) (*schema.Schema, error) {
	fn, ok := builtins[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %s)", ErrUnknownSchema, name, strings.Join(Names(), ", "))
	}
	return fn(), nil
}

// Names returns the builtin schema names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
