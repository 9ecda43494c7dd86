// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// InitAnswers collects the first generation target of a new project.
type InitAnswers struct {
	UseBuiltin bool
	Builtin    string
	Schema     string
	Output     string
	Package    string
}

// RunInitForm runs the interactive form for the init command.
// Fields already set in a are used as defaults.
func RunInitForm(a *InitAnswers, builtins []string) error {
	options := make([]huh.Option[string], 0, len(builtins))
	for _, name := range builtins {
		options = append(options, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("Schema source").
				Options(
					huh.NewOption("Built-in schema", true),
					huh.NewOption("Schema file", false),
				).
				Value(&a.UseBuiltin),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Built-in schema").
				Options(options...).
				Value(&a.Builtin),
		).WithHideFunc(func() bool { return !a.UseBuiltin }),
		huh.NewGroup(
			huh.NewInput().
				Title("Path to schema file").
				Placeholder("schemas/model.yaml").
				Validate(requiredValidator("schema path")).
				Value(&a.Schema),
		).WithHideFunc(func() bool { return a.UseBuiltin }),
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Placeholder("./dsl").
				Validate(requiredValidator("output directory")).
				Value(&a.Output),
			huh.NewInput().
				Title("Package name (optional)").
				Placeholder("defaults to the schema's package").
				Validate(PackageValidator).
				Value(&a.Package),
		),
	).WithTheme(Theme()).Run()
}
