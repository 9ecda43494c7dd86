// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"fmt"
	"go/token"

	"github.com/hashicorp/go-multierror"
	"github.com/philarios/philarios/internal/schema"
)

var goPrimitives = map[schema.Primitive]string{
	schema.Bool:   "bool",
	schema.Int:    "int32",
	schema.Long:   "int64",
	schema.Float:  "float32",
	schema.Double: "float64",
	schema.Short:  "int16",
	schema.Byte:   "int8",
	schema.Char:   "rune",
	schema.String: "string",
	schema.Any:    "any",
}

// Builder methods every generated builder already has.
var reservedMethods = map[string]struct{}{
	"Builder": {},
	"Context": {},
	"Shell":   {},
	"Include": {},
}

// Names that would be shadowed inside generated generic code.
var reservedTypes = map[string]struct{}{
	"C": {},
	"D": {},
}

// Build validates s and classifies every field of every type into the shell
// storage mode and the builder methods generated for it.
// Shape errors of the whole schema are returned together.
func Build(s *schema.Schema) (*File, error) {
	if err := schema.Validate(s); err != nil {
		return nil, err
	}

	b := &builder{schema: s}
	file := &File{
		Schema:         s.Name,
		Package:        s.Package,
		ScaffoldImport: ScaffoldImport,
	}

	for _, decl := range s.Declarations() {
		switch t := decl.(type) {
		case schema.Enum:
			file.Enums = append(file.Enums, b.enum(t))
		case schema.Union:
			file.Unions = append(file.Unions, b.union(t))
		case schema.Struct:
			st := b.structType(t)
			for _, f := range st.Fields {
				if f.Mode == ModeList || f.Mode == ModeMap {
					file.NeedsSlices = true
				}
			}
			file.Structs = append(file.Structs, st)
		}
	}

	b.checkGlobalNames(file)

	if err := b.errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return file, nil
}

type builder struct {
	schema *schema.Schema
	errs   *multierror.Error
}

func (b *builder) fail(typeName, field, format string, args ...any) {
	b.errs = multierror.Append(b.errs, &UnsupportedShapeError{
		Type:   typeName,
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	})
}

func (b *builder) enum(t schema.Enum) Enum {
	name := ToPascalCase(t.Name)
	e := Enum{Name: name, SchemaName: t.Name, Doc: t.Doc}
	for _, v := range t.Values {
		c := name + ToPascalCase(v)
		if !token.IsIdentifier(c) {
			b.fail(t.Name, "", "enum value %q does not form a Go identifier", v)
			continue
		}
		e.Values = append(e.Values, EnumValue{Const: c, Value: v})
	}
	return e
}

func (b *builder) union(t schema.Union) Union {
	u := Union{Name: ToPascalCase(t.Name), SchemaName: t.Name, Doc: t.Doc}
	for _, shape := range t.Shapes {
		u.Shapes = append(u.Shapes, ToPascalCase(shape.Name))
	}
	return u
}

func (b *builder) structType(t schema.Struct) Struct {
	st := Struct{
		Name:       ToPascalCase(t.Name),
		SchemaName: t.Name,
		Doc:        t.Doc,
	}
	if t.Key != "" {
		st.Key = ToPascalCase(t.Key)
	}
	for _, u := range b.schema.Unions(t.Name) {
		st.Unions = append(st.Unions, ToPascalCase(u.Name))
	}

	fieldNames := make(map[string]string)
	for _, f := range t.Fields {
		field, params, ok := b.field(st, f)
		if !ok {
			continue
		}
		if prev, dup := fieldNames[field.Name]; dup {
			b.fail(t.Name, f.Name, "field name %s collides with field %s", field.Name, prev)
			continue
		}
		if field.Name == "Resolve" {
			b.fail(t.Name, f.Name, "field name %s collides with the shell's Resolve method", field.Name)
			continue
		}
		fieldNames[field.Name] = f.Name
		st.Fields = append(st.Fields, field)
		st.Params = append(st.Params, params...)
	}

	methods := make(map[string]struct{})
	for _, p := range st.Params {
		if _, ok := reservedMethods[p.Method]; ok {
			b.fail(t.Name, p.Schema, "builder method %s collides with a built-in builder method", p.Method)
			continue
		}
		if _, dup := methods[p.Method]; dup {
			b.fail(t.Name, p.Schema, "builder method %s is generated twice", p.Method)
			continue
		}
		methods[p.Method] = struct{}{}
	}
	return st
}

// value is a classified element type: what a single staged value looks like.
type value struct {
	goType string
	node   bool
	// targets are the structs that can be staged by Func, Spec and Ref
	// methods, with the union they are wrapped into, if any.
	targets []target
}

type target struct {
	shape string
	name  string
	union string
}

// field dispatches one field by shape.
func (b *builder) field(st Struct, f schema.Field) (Field, []Param, bool) {
	name := ToPascalCase(f.Name)
	if !token.IsIdentifier(name) {
		b.fail(st.SchemaName, f.Name, "name does not form a Go identifier")
		return Field{}, nil, false
	}

	t, optional := b.unwrapOption(f.Type)
	field := Field{Name: name, Schema: f.Name, Doc: f.Doc, Tag: f.Name}
	newParam := func(kind ParamKind, method string, v value) Param {
		return Param{
			Kind:    kind,
			Builder: st.Name,
			Method:  method,
			Field:   name,
			Schema:  f.Name,
			Type:    v.goType,
			Node:    v.node,
		}
	}

	var params []Param
	switch t := t.(type) {
	case schema.List:
		elem, ok := b.element(st.SchemaName, f.Name, t.Inner)
		if !ok {
			return Field{}, nil, false
		}
		field.Tag += ",omitempty"
		field.Type = "[]" + elem.goType
		if elem.node {
			field.Mode = ModeNodeList
			field.ShellType = "[]scaffold.Scaffold[" + elem.goType + "]"
		} else {
			field.Mode = ModeList
			field.ShellType = field.Type
		}
		params = append(params, newParam(Add, "Add"+name, elem))
		for _, tg := range elem.targets {
			params = append(params, targetParams(newParam(AddFunc, "", elem), "Add"+name, tg, AddFunc, AddSpec, AddRef)...)
		}
		params = append(params, newParam(AddAll, "AddAll"+name, elem))

	case schema.Map:
		key, ok := b.mapKey(st.SchemaName, f.Name, t.Key)
		if !ok {
			return Field{}, nil, false
		}
		elem, ok := b.element(st.SchemaName, f.Name, t.Value)
		if !ok {
			return Field{}, nil, false
		}
		field.Tag += ",omitempty"
		field.Type = fmt.Sprintf("scaffold.Entries[%s, %s]", key, elem.goType)
		if elem.node {
			field.Mode = ModeNodeMap
			field.ShellType = fmt.Sprintf("[]scaffold.Entry[%s, scaffold.Scaffold[%s]]", key, elem.goType)
		} else {
			field.Mode = ModeMap
			field.ShellType = field.Type
		}
		withKey := func(p Param) Param {
			p.Key = key
			return p
		}
		params = append(params,
			withKey(newParam(Put, "Put"+name, elem)),
			withKey(newParam(PutEntry, "Put"+name+"Entry", elem)),
		)
		for _, tg := range elem.targets {
			params = append(params, targetParams(withKey(newParam(PutFunc, "", elem)), "Put"+name, tg, PutFunc, PutSpec, PutRef)...)
		}
		params = append(params, withKey(newParam(PutAll, "PutAll"+name, elem)))

	default:
		v, ok := b.scalarOrNode(st.SchemaName, f.Name, t)
		if !ok {
			return Field{}, nil, false
		}
		switch {
		case v.node && optional:
			field.Mode = ModeOptNode
		case v.node:
			field.Mode = ModeNode
		case optional:
			field.Mode = ModeOptScalar
		default:
			field.Mode = ModeScalar
		}
		field.Type = v.goType
		if v.node {
			field.ShellType = "scaffold.Scaffold[" + v.goType + "]"
		} else {
			field.ShellType = "*" + v.goType
			if optional {
				field.Type = "*" + v.goType
			}
		}
		if optional {
			field.Tag += ",omitempty"
		}
		params = append(params, newParam(Set, name, v))
		for _, tg := range v.targets {
			params = append(params, targetParams(newParam(SetFunc, "", v), name, tg, SetFunc, SetSpec, SetRef)...)
		}
	}
	return field, params, true
}

// targetParams fans one aggregate target out into its Func, Spec and Ref methods.
func targetParams(base Param, prefix string, tg target, kinds ...ParamKind) []Param {
	suffixes := []string{"Func", "Spec", "Ref"}
	out := make([]Param, 0, len(kinds))
	for i, kind := range kinds {
		p := base
		p.Kind = kind
		p.Method = prefix + tg.shape + suffixes[i]
		p.Target = tg.name
		p.Union = tg.union
		out = append(out, p)
	}
	return out
}

// unwrapOption strips Refs and any number of Options.
func (b *builder) unwrapOption(t schema.Type) (schema.Type, bool) {
	optional := false
	for {
		t = b.schema.Deref(t)
		opt, ok := t.(schema.Option)
		if !ok {
			return t, optional
		}
		optional = true
		t = opt.Inner
	}
}

// element classifies the element type of a list or the value type of a map.
func (b *builder) element(typeName, field string, t schema.Type) (value, bool) {
	t = b.schema.Deref(t)
	switch t.(type) {
	case schema.List, schema.Map:
		b.fail(typeName, field, "nested collection %s", t)
		return value{}, false
	case schema.Option:
		b.fail(typeName, field, "optional collection element %s", t)
		return value{}, false
	}
	return b.scalarOrNode(typeName, field, t)
}

func (b *builder) mapKey(typeName, field string, t schema.Type) (string, bool) {
	switch t := b.schema.Deref(t).(type) {
	case schema.Primitive:
		return goPrimitives[t], true
	case schema.Enum:
		return ToPascalCase(t.Name), true
	case schema.Struct, schema.Union:
		b.fail(typeName, field, "map key %s must be a primitive or an enum", t)
	case schema.List, schema.Map:
		b.fail(typeName, field, "nested collection as map key %s", t)
	default:
		b.fail(typeName, field, "map key %s must be a primitive or an enum", t)
	}
	return "", false
}

func (b *builder) scalarOrNode(typeName, field string, t schema.Type) (value, bool) {
	switch t := t.(type) {
	case schema.Primitive:
		goType, ok := goPrimitives[t]
		if !ok {
			b.fail(typeName, field, "unknown primitive %q", string(t))
			return value{}, false
		}
		return value{goType: goType}, true
	case schema.Enum:
		return value{goType: ToPascalCase(t.Name)}, true
	case schema.Struct:
		name := ToPascalCase(t.Name)
		v := value{goType: "*" + name, node: true}
		if len(t.Fields) > 0 {
			v.targets = []target{{name: name}}
		}
		return v, true
	case schema.Union:
		name := ToPascalCase(t.Name)
		v := value{goType: name, node: true}
		for _, shape := range t.Shapes {
			if len(shape.Fields) == 0 {
				continue
			}
			shapeName := ToPascalCase(shape.Name)
			v.targets = append(v.targets, target{shape: shapeName, name: shapeName, union: name})
		}
		return v, true
	default:
		b.fail(typeName, field, "unsupported type %s", t)
		return value{}, false
	}
}

// checkGlobalNames reports package-level identifiers generated twice.
func (b *builder) checkGlobalNames(file *File) {
	seen := make(map[string]string)
	claim := func(owner, ident string) {
		if _, ok := reservedTypes[ident]; ok {
			b.fail(owner, "", "generated identifier %s is reserved for type parameters", ident)
			return
		}
		if prev, dup := seen[ident]; dup {
			b.fail(owner, "", "generated identifier %s collides with one generated for %s", ident, prev)
			return
		}
		seen[ident] = owner
	}

	for _, e := range file.Enums {
		claim(e.SchemaName, e.Name)
		claim(e.SchemaName, e.Name+"Values")
		for _, v := range e.Values {
			claim(e.SchemaName, v.Const)
		}
	}
	for _, u := range file.Unions {
		claim(u.SchemaName, u.Name)
	}
	for _, s := range file.Structs {
		for _, ident := range []string{
			s.Name,
			s.Name + "Shell",
			s.Name + "Builder",
			"New" + s.Name + "Builder",
			s.Name + "Spec",
			"Include" + s.Name,
			"Include" + s.Name + "ForEach",
		} {
			claim(s.SchemaName, ident)
		}
	}
}
