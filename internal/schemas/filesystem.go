// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schemas

import "github.com/philarios/philarios/internal/schema"

// FileSystem describes a directory tree.
func FileSystem() *schema.Schema {
	return &schema.Schema{
		Name:    "filesystem",
		Package: "filesystem",
		Types: []schema.Type{
			schema.Struct{
				Name: "FileSystem",
				Fields: []schema.Field{
					schema.F("root", schema.RefTo("Directory")),
				},
			},
			schema.Union{
				Name: "Node",
				Shapes: []schema.Struct{
					{
						Name: "File",
						Fields: []schema.Field{
							schema.F("name", schema.String),
							schema.F("content", schema.OptionOf(schema.String)),
							schema.F("mode", schema.OptionOf(schema.Int)),
						},
					},
					{
						Name: "Directory",
						Fields: []schema.Field{
							schema.F("name", schema.String),
							schema.F("children", schema.ListOf(schema.RefTo("Node"))),
						},
					},
					{
						Name: "Link",
						Fields: []schema.Field{
							schema.F("name", schema.String),
							schema.F("target", schema.String),
						},
					},
				},
			},
		},
	}
}
