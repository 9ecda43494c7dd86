// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/philarios/philarios/internal/prompts"
	"github.com/philarios/philarios/internal/schema"
	"github.com/philarios/philarios/internal/schemas"
	"github.com/spf13/cobra"
)

func newSchemasDescribeCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "describe [name|file]",
		Short: "Show the declarations of a schema",
		Long: `Show every struct, union and enum of a built-in schema or a schema file.
Without an argument a built-in schema is picked interactively.`,
		Example: `  # Describe a built-in schema
  philarios schemas describe concourse

  # Print a schema file in the loader's yaml form
  philarios schemas describe schemas/shop.yaml -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := schemaFromArgs(args, "Select schema to describe")
			if err != nil {
				return err
			}
			return runSchemasDescribe(cmd.OutOrStdout(), s, format)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "text", "Output format (text, json or yaml)")
	return cmd
}

// schemaFromArgs loads the schema named by the only argument or prompts for a builtin.
func schemaFromArgs(args []string, title string) (*schema.Schema, error) {
	if len(args) == 1 {
		return loadSchema(args[0])
	}

	var all []*schema.Schema
	for _, name := range schemas.Names() {
		s, err := schemas.Get(name)
		if err != nil {
			return nil, err
		}
		all = append(all, s)
	}
	var name string
	if err := prompts.RunSchemaSelectForm(title, &name, all); err != nil {
		return nil, err
	}
	return schemas.Get(name)
}

func runSchemasDescribe(out io.Writer, s *schema.Schema, format string) error {
	switch format {
	case "text", "":
		return describeText(out, s)
	case "json", "yaml":
		data, err := schema.Marshal(s, format)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format %q (want text, json or yaml)", format)
	}
}

func describeText(out io.Writer, s *schema.Schema) error {
	_, _ = fmt.Fprintf(out, "%s (package %s)\n\n", s.Name, s.Package)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, decl := range s.Declarations() {
		switch d := decl.(type) {
		case schema.Struct:
			kind := "struct"
			if d.Key != "" {
				kind = "struct keyed by " + d.Key
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t\n", d.Name, kind)
			for _, f := range d.Fields {
				_, _ = fmt.Fprintf(w, "  %s\t%s\t%s\n", f.Name, f.Type, f.Doc)
			}
		case schema.Union:
			shapes := make([]string, 0, len(d.Shapes))
			for _, shape := range d.Shapes {
				shapes = append(shapes, shape.Name)
			}
			_, _ = fmt.Fprintf(w, "%s\tunion\t%s\n", d.Name, strings.Join(shapes, " | "))
		case schema.Enum:
			_, _ = fmt.Fprintf(w, "%s\tenum\t%s\n", d.Name, strings.Join(d.Values, ", "))
		}
	}
	return w.Flush()
}
