// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package export renders philarios schemas into other schema languages.
package export

import (
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/philarios/philarios/internal/schema"
)

// Draft is the JSON Schema dialect of every exported document.
const Draft = "https://json-schema.org/draft/2020-12/schema"

var (
	// ErrUnknownRoot is returned when the requested root is not a declaration.
	ErrUnknownRoot = errors.New("unknown root type")
	// ErrUnsupportedKey is returned for map keys JSON objects cannot carry.
	ErrUnsupportedKey = errors.New("map key cannot be represented in JSON")
)

// JSONSchema converts s into a JSON Schema document validating a resolved
// value of the root declaration. Every declaration of s is emitted under
// $defs and referenced by name.
func JSONSchema(s *schema.Schema, root string) (*jsonschema.Schema, error) {
	if err := schema.Validate(s); err != nil {
		return nil, err
	}
	if _, ok := s.Lookup(root); !ok {
		return nil, fmt.Errorf("%w: %s has no declaration %q", ErrUnknownRoot, s.Name, root)
	}

	c := &converter{schema: s}
	defs := make(map[string]*jsonschema.Schema)
	for _, decl := range s.Declarations() {
		name, _ := schema.Named(decl)
		def, err := c.declaration(decl)
		if err != nil {
			return nil, err
		}
		defs[name] = def
	}

	return &jsonschema.Schema{
		Schema: Draft,
		Title:  s.Name,
		Ref:    defRef(root),
		Defs:   defs,
	}, nil
}

type converter struct {
	schema *schema.Schema
}

func (c *converter) declaration(t schema.Type) (*jsonschema.Schema, error) {
	switch t := t.(type) {
	case schema.Struct:
		return c.object(t)
	case schema.Union:
		out := &jsonschema.Schema{Description: t.Doc}
		for _, shape := range t.Shapes {
			out.OneOf = append(out.OneOf, &jsonschema.Schema{Ref: defRef(shape.Name)})
		}
		return out, nil
	case schema.Enum:
		out := &jsonschema.Schema{Type: "string", Description: t.Doc}
		for _, v := range t.Values {
			out.Enum = append(out.Enum, v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s is not a declaration", schema.ErrInvalidSchema, t)
	}
}

func (c *converter) object(t schema.Struct) (*jsonschema.Schema, error) {
	out := &jsonschema.Schema{
		Type:                 "object",
		Description:          t.Doc,
		Properties:           make(map[string]*jsonschema.Schema, len(t.Fields)),
		AdditionalProperties: falseSchema(),
	}
	for _, f := range t.Fields {
		inner, optional := unwrapOption(f.Type)
		prop, err := c.value(t.Name, f.Name, inner)
		if err != nil {
			return nil, err
		}
		if f.Doc != "" {
			prop.Description = f.Doc
		}
		out.Properties[f.Name] = prop
		// Lists and maps may be omitted; they resolve to empty.
		if !optional && !isCollection(c.schema.Deref(inner)) {
			out.Required = append(out.Required, f.Name)
		}
	}
	return out, nil
}

func (c *converter) value(owner, field string, t schema.Type) (*jsonschema.Schema, error) {
	switch t := t.(type) {
	case schema.Primitive:
		return primitive(t), nil
	case schema.Ref:
		return &jsonschema.Schema{Ref: defRef(t.Name)}, nil
	case schema.Struct:
		return &jsonschema.Schema{Ref: defRef(t.Name)}, nil
	case schema.Union:
		return &jsonschema.Schema{Ref: defRef(t.Name)}, nil
	case schema.Enum:
		return &jsonschema.Schema{Ref: defRef(t.Name)}, nil
	case schema.Option:
		return c.value(owner, field, t.Inner)
	case schema.List:
		items, err := c.value(owner, field, t.Inner)
		if err != nil {
			return nil, err
		}
		return &jsonschema.Schema{Type: "array", Items: items}, nil
	case schema.Map:
		names, err := c.key(owner, field, t.Key)
		if err != nil {
			return nil, err
		}
		values, err := c.value(owner, field, t.Value)
		if err != nil {
			return nil, err
		}
		return &jsonschema.Schema{Type: "object", PropertyNames: names, AdditionalProperties: values}, nil
	default:
		return nil, fmt.Errorf("%w: %s.%s has type %s", schema.ErrInvalidSchema, owner, field, t)
	}
}

// key returns the propertyNames constraint for a map key, nil when any string is allowed.
func (c *converter) key(owner, field string, t schema.Type) (*jsonschema.Schema, error) {
	switch d := c.schema.Deref(t).(type) {
	case schema.Primitive:
		if d == schema.String {
			return nil, nil
		}
	case schema.Enum:
		return &jsonschema.Schema{Ref: defRef(d.Name)}, nil
	}
	return nil, fmt.Errorf("%w: %s.%s has key %s", ErrUnsupportedKey, owner, field, t)
}

func primitive(p schema.Primitive) *jsonschema.Schema {
	switch p {
	case schema.Bool:
		return &jsonschema.Schema{Type: "boolean"}
	case schema.Int:
		return &jsonschema.Schema{Type: "integer", Format: "int32"}
	case schema.Long:
		return &jsonschema.Schema{Type: "integer", Format: "int64"}
	case schema.Short, schema.Byte:
		return &jsonschema.Schema{Type: "integer"}
	case schema.Float:
		return &jsonschema.Schema{Type: "number", Format: "float"}
	case schema.Double:
		return &jsonschema.Schema{Type: "number", Format: "double"}
	case schema.Char, schema.String:
		return &jsonschema.Schema{Type: "string"}
	default:
		// any
		return &jsonschema.Schema{}
	}
}

func unwrapOption(t schema.Type) (schema.Type, bool) {
	optional := false
	for {
		opt, ok := t.(schema.Option)
		if !ok {
			return t, optional
		}
		optional = true
		t = opt.Inner
	}
}

func isCollection(t schema.Type) bool {
	switch t.(type) {
	case schema.List, schema.Map:
		return true
	}
	return false
}

func defRef(name string) string {
	return "#/$defs/" + name
}

// falseSchema is the boolean schema false.
func falseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}
