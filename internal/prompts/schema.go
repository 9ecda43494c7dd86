// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/philarios/philarios/internal/schema"
)

// RunSchemaSelectForm prompts the user to pick one of the named schemas.
func RunSchemaSelectForm(title string, value *string, schemas []*schema.Schema) error {
	if len(schemas) == 0 {
		return errNoChoices
	}

	options := make([]huh.Option[string], 0, len(schemas))
	for _, s := range schemas {
		label := fmt.Sprintf("%s - %d declarations", s.Name, len(s.Declarations()))
		options = append(options, huh.NewOption(label, s.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Filtering(true).
				Value(value).
				Height(10),
		),
	).WithTheme(Theme()).Run()
}

// RunRootSelectForm prompts the user to pick the root declaration of s.
func RunRootSelectForm(value *string, s *schema.Schema) error {
	var options []huh.Option[string]
	for _, decl := range s.Declarations() {
		name, _ := schema.Named(decl)
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", name, kindOf(decl)), name))
	}
	if len(options) == 0 {
		return errNoChoices
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Root type").
				Options(options...).
				Filtering(true).
				Value(value).
				Height(10),
		),
	).WithTheme(Theme()).Run()
}

func kindOf(t schema.Type) string {
	switch t.(type) {
	case schema.Union:
		return "union"
	case schema.Enum:
		return "enum"
	default:
		return "struct"
	}
}
