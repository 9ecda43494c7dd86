// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema describes the type universe of one generated DSL: structs,
// unions, enums, primitives and the collection types built from them.
package schema

import "fmt"

// Schema is the root artifact fed to the code generator.
type Schema struct {
	Name    string
	Package string
	Types   []Type
}

// Type is one of the closed set of type descriptors declared in this package.
type Type interface {
	// String renders the type in the expression grammar accepted by ParseType.
	String() string
	isType()
}

// Field is a named member of a Struct.
type Field struct {
	Name string
	Type Type
	Doc  string
}

// Struct is a record type.
type Struct struct {
	Name   string
	Fields []Field
	// Key names a required string field. Resolved values of a keyed struct are
	// registered under that field's value and can be referenced by name.
	Key string
	Doc string
}

// Union is a tagged union over a set of struct shapes.
type Union struct {
	Name   string
	Shapes []Struct
	Doc    string
}

// Enum is a closed set of string values.
type Enum struct {
	Name   string
	Values []string
	Doc    string
}

// Ref refers to a named type declared elsewhere in the same schema.
type Ref struct {
	Name string
}

// Option marks a value that may be absent.
type Option struct {
	Inner Type
}

// List is an ordered sequence.
type List struct {
	Inner Type
}

// Map is an ordered sequence of key/value pairs.
type Map struct {
	Key   Type
	Value Type
}

// Primitive is a leaf type.
type Primitive string

const (
	Bool   Primitive = "boolean"
	Int    Primitive = "int"
	Long   Primitive = "long"
	Float  Primitive = "float"
	Double Primitive = "double"
	Short  Primitive = "short"
	Byte   Primitive = "byte"
	Char   Primitive = "char"
	String Primitive = "string"
	Any    Primitive = "any"
)

// Primitives lists every primitive in declaration order.
var Primitives = []Primitive{Bool, Int, Long, Float, Double, Short, Byte, Char, String, Any}

func (Struct) isType()    {}
func (Union) isType()     {}
func (Enum) isType()      {}
func (Ref) isType()       {}
func (Option) isType()    {}
func (List) isType()      {}
func (Map) isType()       {}
func (Primitive) isType() {}

func (t Struct) String() string    { return t.Name }
func (t Union) String() string     { return t.Name }
func (t Enum) String() string      { return t.Name }
func (t Ref) String() string       { return t.Name }
func (t Option) String() string    { return fmt.Sprintf("option<%s>", typeString(t.Inner)) }
func (t List) String() string      { return fmt.Sprintf("list<%s>", typeString(t.Inner)) }
func (t Map) String() string       { return fmt.Sprintf("map<%s,%s>", typeString(t.Key), typeString(t.Value)) }
func (t Primitive) String() string { return string(t) }

func typeString(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// Field returns the field called name.
func (t Struct) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Shape returns the shape called name.
func (t Union) Shape(name string) (Struct, bool) {
	for _, s := range t.Shapes {
		if s.Name == name {
			return s, true
		}
	}
	return Struct{}, false
}

// Named reports the declared name of t, if t is a declaration.
func Named(t Type) (string, bool) {
	switch t := t.(type) {
	case Struct:
		return t.Name, true
	case Union:
		return t.Name, true
	case Enum:
		return t.Name, true
	default:
		return "", false
	}
}

// Convenience constructors keep hand-written schemas short.

// F returns a field.
func F(name string, t Type) Field { return Field{Name: name, Type: t} }

// ListOf returns list<t>.
func ListOf(t Type) List { return List{Inner: t} }

// OptionOf returns option<t>.
func OptionOf(t Type) Option { return Option{Inner: t} }

// MapOf returns map<k,v>.
func MapOf(k, v Type) Map { return Map{Key: k, Value: v} }

// RefTo returns a reference to the named type.
func RefTo(name string) Ref { return Ref{Name: name} }
