// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

// ScaffoldImport is the import path of the runtime package generated code uses.
const ScaffoldImport = "github.com/philarios/philarios/scaffold"

// File is the complete input of the file template.
type File struct {
	Schema         string
	Package        string
	ScaffoldImport string
	NeedsSlices    bool
	Enums          []Enum
	Unions         []Union
	Structs        []Struct
}

// Enum is a generated string enum.
type Enum struct {
	Name       string
	SchemaName string
	Doc        string
	Values     []EnumValue
}

// EnumValue is one constant of an Enum.
type EnumValue struct {
	Const string
	Value string
}

// Union is a generated sealed interface.
type Union struct {
	Name       string
	SchemaName string
	Doc        string
	Shapes     []string
}

// Struct is a generated value type together with its shell, builder and spec.
type Struct struct {
	Name       string
	SchemaName string
	Doc        string
	Fields     []Field
	// Key is the Go name of the field the value is registered under.
	Key string
	// Unions lists the unions this struct is a shape of.
	Unions []string
	Params []Param
}

// HasNodes reports whether resolving the struct needs a Group.
func (s Struct) HasNodes() bool {
	for _, f := range s.Fields {
		switch f.Mode {
		case ModeNode, ModeOptNode, ModeNodeList, ModeNodeMap:
			return true
		}
	}
	return false
}

// Mode is how a field is stored in the shell and resolved.
type Mode string

const (
	ModeScalar    Mode = "scalar"
	ModeOptScalar Mode = "optScalar"
	ModeNode      Mode = "node"
	ModeOptNode   Mode = "optNode"
	ModeList      Mode = "list"
	ModeNodeList  Mode = "nodeList"
	ModeMap       Mode = "map"
	ModeNodeMap   Mode = "nodeMap"
)

// Field is one field of a generated struct.
type Field struct {
	Name      string
	Schema    string
	Doc       string
	Mode      Mode
	Type      string
	ShellType string
	Tag       string
}

// Required reports whether the shell must have the field set before resolving.
func (f Field) Required() bool {
	return f.Mode == ModeScalar || f.Mode == ModeNode
}

// ParamKind is the closed set of builder method shapes.
type ParamKind int

const (
	Set ParamKind = iota
	SetFunc
	SetSpec
	SetRef
	Add
	AddFunc
	AddSpec
	AddRef
	AddAll
	Put
	PutEntry
	PutFunc
	PutSpec
	PutRef
	PutAll
)

func (k ParamKind) String() string {
	switch k {
	case Set:
		return "Set"
	case SetFunc:
		return "SetFunc"
	case SetSpec:
		return "SetSpec"
	case SetRef:
		return "SetRef"
	case Add:
		return "Add"
	case AddFunc:
		return "AddFunc"
	case AddSpec:
		return "AddSpec"
	case AddRef:
		return "AddRef"
	case AddAll:
		return "AddAll"
	case Put:
		return "Put"
	case PutEntry:
		return "PutEntry"
	case PutFunc:
		return "PutFunc"
	case PutSpec:
		return "PutSpec"
	case PutRef:
		return "PutRef"
	case PutAll:
		return "PutAll"
	default:
		panic("codegen: unknown param kind")
	}
}

// Param is one generated builder method.
type Param struct {
	Kind ParamKind
	// Builder is the Go name of the struct whose builder gets the method.
	Builder string
	Method  string
	// Field is the Go name of the shell field the method stages into.
	Field  string
	Schema string
	// Type is the Go type of a single staged value.
	Type string
	// Key is the Go type of map keys.
	Key string
	// Target is the struct staged by Func, Spec and Ref methods.
	Target string
	// Union is set when Target is staged where the union is expected.
	Union string
	// Node is set when the shell stores scaffolds instead of values.
	Node bool
	// Code is the rendered method.
	Code string
}
