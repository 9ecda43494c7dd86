// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// rawSchema is the on-disk form of a Schema.
type rawSchema struct {
	Name    string    `yaml:"name" json:"name"`
	Package string    `yaml:"package" json:"package"`
	Types   []rawType `yaml:"types" json:"types"`
}

// rawType holds exactly one of Struct, Union or Enum.
type rawType struct {
	Struct string     `yaml:"struct,omitempty" json:"struct,omitempty"`
	Union  string     `yaml:"union,omitempty" json:"union,omitempty"`
	Enum   string     `yaml:"enum,omitempty" json:"enum,omitempty"`
	Doc    string     `yaml:"doc,omitempty" json:"doc,omitempty"`
	Key    string     `yaml:"key,omitempty" json:"key,omitempty"`
	Fields []rawField `yaml:"fields,omitempty" json:"fields,omitempty"`
	Shapes []rawType  `yaml:"shapes,omitempty" json:"shapes,omitempty"`
	Values []string   `yaml:"values,omitempty" json:"values,omitempty"`
}

type rawField struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
	Doc  string `yaml:"doc,omitempty" json:"doc,omitempty"`
}

// Loader loads schema files from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads, decodes and validates a schema file.
// The format is determined from the file extension.
func (l *Loader) LoadFile(filePath string) (*Schema, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var raw rawSchema
	switch path.Ext(filePath) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s: %w", filePath, err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s: %w", filePath, err)
		}
	default:
		return nil, fmt.Errorf("%s: format not supported", filePath)
	}

	s, err := raw.decode()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	if err := Validate(s); err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return s, nil
}

func (r rawSchema) decode() (*Schema, error) {
	s := &Schema{Name: r.Name, Package: r.Package}
	if s.Package == "" {
		s.Package = r.Name
	}
	for i, rt := range r.Types {
		t, err := rt.decode()
		if err != nil {
			return nil, fmt.Errorf("types[%d]: %w", i, err)
		}
		s.Types = append(s.Types, t)
	}
	return s, nil
}

func (r rawType) decode() (Type, error) {
	kinds := 0
	for _, n := range []string{r.Struct, r.Union, r.Enum} {
		if n != "" {
			kinds++
		}
	}
	if kinds != 1 {
		return nil, fmt.Errorf("%w: exactly one of struct, union or enum must be set", ErrInvalidSchema)
	}

	switch {
	case r.Struct != "":
		return r.decodeStruct()
	case r.Union != "":
		u := Union{Name: r.Union, Doc: r.Doc}
		for _, rs := range r.Shapes {
			if rs.Struct == "" {
				return nil, fmt.Errorf("%w: union %s: shapes must be structs", ErrInvalidSchema, r.Union)
			}
			shape, err := rs.decodeStruct()
			if err != nil {
				return nil, err
			}
			u.Shapes = append(u.Shapes, shape)
		}
		return u, nil
	default:
		return Enum{Name: r.Enum, Values: r.Values, Doc: r.Doc}, nil
	}
}

func (r rawType) decodeStruct() (Struct, error) {
	s := Struct{Name: r.Struct, Key: r.Key, Doc: r.Doc}
	for _, rf := range r.Fields {
		t, err := ParseType(rf.Type)
		if err != nil {
			return Struct{}, fmt.Errorf("field %s.%s: %w", r.Struct, rf.Name, err)
		}
		s.Fields = append(s.Fields, Field{Name: rf.Name, Type: t, Doc: rf.Doc})
	}
	return s, nil
}

// Marshal encodes s in the file format read by Loader. format is "yaml" or
// "json". Structs declared inline in fields are hoisted to the top level.
func Marshal(s *Schema, format string) ([]byte, error) {
	raw := rawSchema{Name: s.Name, Package: s.Package}
	for _, decl := range s.Declarations() {
		if st, ok := decl.(Struct); ok && len(s.Unions(st.Name)) > 0 {
			continue
		}
		raw.Types = append(raw.Types, encodeType(decl))
	}

	switch format {
	case "yaml", "yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(raw); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "json":
		return json.MarshalIndent(raw, "", "  ")
	default:
		return nil, fmt.Errorf("format %q not supported", format)
	}
}

func encodeType(t Type) rawType {
	switch t := t.(type) {
	case Struct:
		return encodeStruct(t)
	case Union:
		r := rawType{Union: t.Name, Doc: t.Doc}
		for _, shape := range t.Shapes {
			r.Shapes = append(r.Shapes, encodeStruct(shape))
		}
		return r
	case Enum:
		return rawType{Enum: t.Name, Values: t.Values, Doc: t.Doc}
	default:
		return rawType{}
	}
}

func encodeStruct(t Struct) rawType {
	r := rawType{Struct: t.Name, Key: t.Key, Doc: t.Doc}
	for _, f := range t.Fields {
		r.Fields = append(r.Fields, rawField{Name: f.Name, Type: typeString(f.Type), Doc: f.Doc})
	}
	return r
}
