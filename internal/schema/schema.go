// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import "iter"

// Walk returns an iterator over t and every type nested in it: field types,
// union shapes and collection parameters. Refs are not followed.
func Walk(t Type) iter.Seq[Type] {
	return func(yield func(Type) bool) {
		walk(t, yield)
	}
}

func walk(t Type, yield func(Type) bool) bool {
	if t == nil {
		return true
	}
	if !yield(t) {
		return false
	}
	switch t := t.(type) {
	case Struct:
		for _, f := range t.Fields {
			if !walk(f.Type, yield) {
				return false
			}
		}
	case Union:
		for _, s := range t.Shapes {
			if !walk(s, yield) {
				return false
			}
		}
	case Option:
		return walk(t.Inner, yield)
	case List:
		return walk(t.Inner, yield)
	case Map:
		return walk(t.Key, yield) && walk(t.Value, yield)
	}
	return true
}

// All returns an iterator over every type of the schema, nested ones included.
func (s *Schema) All() iter.Seq[Type] {
	return func(yield func(Type) bool) {
		for _, t := range s.Types {
			if !walk(t, yield) {
				return
			}
		}
	}
}

// Declarations returns every Struct, Union and Enum of the schema, nested ones
// included, in depth-first declaration order. A name declared twice is kept once.
func (s *Schema) Declarations() []Type {
	var out []Type
	seen := make(map[string]struct{})
	for t := range s.All() {
		name, ok := Named(t)
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Lookup returns the declaration called name.
func (s *Schema) Lookup(name string) (Type, bool) {
	for t := range s.All() {
		if n, ok := Named(t); ok && n == name {
			return t, true
		}
	}
	return nil, false
}

// Deref follows a Ref to its declaration.
// A Ref to an unknown name is returned unchanged.
func (s *Schema) Deref(t Type) Type {
	ref, ok := t.(Ref)
	if !ok {
		return t
	}
	if decl, ok := s.Lookup(ref.Name); ok {
		return decl
	}
	return t
}

// Unions returns the unions the named struct is a shape of.
func (s *Schema) Unions(shape string) []Union {
	var out []Union
	seen := make(map[string]struct{})
	for t := range s.All() {
		u, ok := t.(Union)
		if !ok {
			continue
		}
		if _, dup := seen[u.Name]; dup {
			continue
		}
		if _, ok := u.Shape(shape); ok {
			seen[u.Name] = struct{}{}
			out = append(out, u)
		}
	}
	return out
}
