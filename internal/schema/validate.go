// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"errors"
	"fmt"
	"go/token"
	"reflect"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidSchema indicates a schema that cannot be generated from.
var ErrInvalidSchema = errors.New("invalid schema")

// Validate reports every problem found in s. The returned error wraps
// ErrInvalidSchema once per problem.
func Validate(s *Schema) error {
	var result *multierror.Error
	fail := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf("%w: "+format, append([]any{ErrInvalidSchema}, args...)...))
	}

	if s.Name == "" {
		fail("schema name is empty")
	}
	if !token.IsIdentifier(s.Package) {
		fail("package %q is not a valid Go identifier", s.Package)
	}

	decls := make(map[string]Type)
	for t := range s.All() {
		name, ok := Named(t)
		if !ok {
			continue
		}
		if prev, dup := decls[name]; dup {
			if !reflect.DeepEqual(prev, t) {
				fail("type %s is declared twice with different definitions", name)
			}
			continue
		}
		decls[name] = t
	}

	for _, t := range s.Types {
		if t == nil {
			fail("nil top-level type")
			continue
		}
		if _, ok := Named(t); !ok {
			fail("top-level type %s is not a declaration", t)
		}
	}

	for t := range s.All() {
		switch t := t.(type) {
		case Struct:
			validateStruct(t, fail)
		case Union:
			if !isIdent(t.Name) {
				fail("union name %q is not an identifier", t.Name)
			}
			if len(t.Shapes) == 0 {
				fail("union %s has no shapes", t.Name)
			}
			seen := make(map[string]struct{})
			for _, shape := range t.Shapes {
				if _, dup := seen[shape.Name]; dup {
					fail("union %s lists shape %s twice", t.Name, shape.Name)
				}
				seen[shape.Name] = struct{}{}
			}
		case Enum:
			if !isIdent(t.Name) {
				fail("enum name %q is not an identifier", t.Name)
			}
			if len(t.Values) == 0 {
				fail("enum %s has no values", t.Name)
			}
			seen := make(map[string]struct{})
			for _, v := range t.Values {
				if v == "" {
					fail("enum %s has an empty value", t.Name)
				}
				if _, dup := seen[v]; dup {
					fail("enum %s lists value %q twice", t.Name, v)
				}
				seen[v] = struct{}{}
			}
		case Ref:
			if _, ok := decls[t.Name]; !ok {
				fail("reference to unknown type %s", t.Name)
			}
		case Option:
			if t.Inner == nil {
				fail("option without inner type")
			}
		case List:
			if t.Inner == nil {
				fail("list without element type")
			}
		case Map:
			if t.Key == nil || t.Value == nil {
				fail("map without key or value type")
			}
		}
	}

	return result.ErrorOrNil()
}

func validateStruct(t Struct, fail func(string, ...any)) {
	if !isIdent(t.Name) {
		fail("struct name %q is not an identifier", t.Name)
	}
	seen := make(map[string]struct{})
	for _, f := range t.Fields {
		if !isIdent(f.Name) {
			fail("field %s.%s: name is not an identifier", t.Name, f.Name)
		}
		if f.Type == nil {
			fail("field %s.%s has no type", t.Name, f.Name)
		}
		if _, dup := seen[f.Name]; dup {
			fail("field %s.%s is declared twice", t.Name, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	if t.Key == "" {
		return
	}
	f, ok := t.Field(t.Key)
	switch {
	case !ok:
		fail("struct %s: key field %s does not exist", t.Name, t.Key)
	case f.Type != String:
		fail("struct %s: key field %s must be a required string, got %s", t.Name, t.Key, typeString(f.Type))
	}
}
