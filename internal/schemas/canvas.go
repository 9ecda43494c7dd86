// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schemas

import "github.com/philarios/philarios/internal/schema"

// Canvas describes a tree of shapes drawn on a named canvas.
func Canvas() *schema.Schema {
	styled := schema.OptionOf(schema.RefTo("Style"))
	return &schema.Schema{
		Name:    "canvas",
		Package: "canvas",
		Types: []schema.Type{
			schema.Struct{
				Name: "Point",
				Fields: []schema.Field{
					schema.F("x", schema.Int),
					schema.F("y", schema.Int),
				},
			},
			schema.Enum{
				Name:   "Color",
				Values: []string{"black", "white", "red", "green", "blue"},
			},
			schema.Struct{
				Name: "Style",
				Key:  "name",
				Doc:  "Style is a named stroke style shapes can share.",
				Fields: []schema.Field{
					schema.F("name", schema.String),
					schema.F("stroke", schema.RefTo("Color")),
					schema.F("width", schema.Double),
				},
			},
			schema.Union{
				Name: "Shape",
				Shapes: []schema.Struct{
					{
						Name: "Circle",
						Fields: []schema.Field{
							schema.F("center", schema.RefTo("Point")),
							schema.F("radius", schema.Double),
							schema.F("style", styled),
						},
					},
					{
						Name: "Square",
						Fields: []schema.Field{
							schema.F("origin", schema.RefTo("Point")),
							schema.F("side", schema.Double),
							schema.F("style", styled),
						},
					},
					{
						Name: "Polyline",
						Fields: []schema.Field{
							schema.F("points", schema.ListOf(schema.RefTo("Point"))),
							schema.F("style", styled),
						},
					},
				},
			},
			schema.Struct{
				Name: "Canvas",
				Fields: []schema.Field{
					schema.F("name", schema.String),
					schema.F("width", schema.Int),
					schema.F("height", schema.Int),
					schema.F("styles", schema.ListOf(schema.RefTo("Style"))),
					schema.F("shapes", schema.ListOf(schema.RefTo("Shape"))),
					schema.F("palette", schema.MapOf(schema.String, schema.RefTo("Color"))),
				},
			},
		},
	}
}
