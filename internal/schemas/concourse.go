// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schemas

import "github.com/philarios/philarios/internal/schema"

// Concourse describes Concourse CI teams, pipelines, resources and jobs.
// Resources are keyed by name so plan steps can reference them.
func Concourse() *schema.Schema {
	return &schema.Schema{
		Name:    "concourse",
		Package: "concourse",
		Types: []schema.Type{
			schema.Struct{
				Name: "Concourse",
				Doc:  "Concourse is the set of teams managed together.",
				Fields: []schema.Field{
					schema.F("teams", schema.ListOf(schema.RefTo("Team"))),
				},
			},
			schema.Struct{
				Name: "Team",
				Fields: []schema.Field{
					schema.F("name", schema.String),
					schema.F("pipelines", schema.ListOf(schema.RefTo("Pipeline"))),
				},
			},
			schema.Struct{
				Name: "Pipeline",
				Fields: []schema.Field{
					schema.F("name", schema.String),
					schema.F("resources", schema.ListOf(schema.RefTo("Resource"))),
					schema.F("jobs", schema.ListOf(schema.RefTo("Job"))),
					schema.F("vars", schema.MapOf(schema.String, schema.String)),
				},
			},
			schema.Enum{
				Name:   "ResourceKind",
				Values: []string{"git", "s3", "time", "registry-image"},
			},
			schema.Struct{
				Name: "Resource",
				Key:  "name",
				Fields: []schema.Field{
					schema.F("name", schema.String),
					schema.F("type", schema.RefTo("ResourceKind")),
					schema.F("source", schema.MapOf(schema.String, schema.Any)),
					schema.F("checkEvery", schema.OptionOf(schema.String)),
					schema.F("icon", schema.OptionOf(schema.String)),
				},
			},
			schema.Struct{
				Name: "Job",
				Fields: []schema.Field{
					schema.F("name", schema.String),
					schema.F("plan", schema.ListOf(schema.RefTo("Step"))),
					schema.F("serial", schema.Bool),
					schema.F("maxInFlight", schema.OptionOf(schema.Int)),
					schema.F("public", schema.OptionOf(schema.Bool)),
				},
			},
			schema.Union{
				Name: "Step",
				Doc:  "Step is one step of a job plan.",
				Shapes: []schema.Struct{
					{
						Name: "Get",
						Fields: []schema.Field{
							schema.F("resource", schema.RefTo("Resource")),
							schema.F("trigger", schema.OptionOf(schema.Bool)),
							schema.F("passed", schema.ListOf(schema.String)),
						},
					},
					{
						Name: "Put",
						Fields: []schema.Field{
							schema.F("resource", schema.RefTo("Resource")),
							schema.F("params", schema.MapOf(schema.String, schema.Any)),
						},
					},
					{
						Name: "Task",
						Fields: []schema.Field{
							schema.F("task", schema.String),
							schema.F("config", schema.RefTo("TaskConfig")),
						},
					},
				},
			},
			schema.Enum{
				Name:   "Platform",
				Values: []string{"linux", "darwin", "windows"},
			},
			schema.Struct{
				Name: "TaskConfig",
				Fields: []schema.Field{
					schema.F("platform", schema.RefTo("Platform")),
					schema.F("image", schema.String),
					schema.F("run", schema.RefTo("Command")),
					schema.F("inputs", schema.ListOf(schema.String)),
				},
			},
			schema.Struct{
				Name: "Command",
				Fields: []schema.Field{
					schema.F("path", schema.String),
					schema.F("args", schema.ListOf(schema.String)),
				},
			},
		},
	}
}
