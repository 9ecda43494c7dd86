// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schemas

import "github.com/philarios/philarios/internal/schema"

// Domain describes entities and the relationships between them.
func Domain() *schema.Schema {
	return &schema.Schema{
		Name:    "domain",
		Package: "domain",
		Types: []schema.Type{
			schema.Struct{
				Name: "Domain",
				Fields: []schema.Field{
					schema.F("name", schema.String),
					schema.F("entities", schema.ListOf(schema.RefTo("Entity"))),
					schema.F("relationships", schema.ListOf(schema.RefTo("Relationship"))),
				},
			},
			schema.Struct{
				Name: "Entity",
				Key:  "name",
				Fields: []schema.Field{
					schema.F("name", schema.String),
					schema.F("attributes", schema.ListOf(schema.RefTo("Attribute"))),
					schema.F("doc", schema.OptionOf(schema.String)),
				},
			},
			schema.Enum{
				Name:   "AttributeType",
				Values: []string{"string", "int", "bool", "date", "decimal"},
			},
			schema.Struct{
				Name: "Attribute",
				Fields: []schema.Field{
					schema.F("name", schema.String),
					schema.F("type", schema.RefTo("AttributeType")),
					schema.F("required", schema.Bool),
				},
			},
			schema.Enum{
				Name:   "Cardinality",
				Values: []string{"one-to-one", "one-to-many", "many-to-many"},
			},
			schema.Struct{
				Name: "Relationship",
				Key:  "name",
				Fields: []schema.Field{
					schema.F("name", schema.String),
					schema.F("from", schema.RefTo("Entity")),
					schema.F("to", schema.RefTo("Entity")),
					schema.F("cardinality", schema.RefTo("Cardinality")),
				},
			},
		},
	}
}
