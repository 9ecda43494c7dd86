// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/philarios/philarios/internal/schema"
	"github.com/philarios/philarios/internal/schemas"
	"github.com/spf13/cobra"
)

func newSchemasListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in schemas",
		Example: `  # List built-in schemas
  philarios schemas list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchemasList(cmd.OutOrStdout())
		},
	}
	return cmd
}

func runSchemasList(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tPACKAGE\tSTRUCTS\tUNIONS\tENUMS")

	for _, name := range schemas.Names() {
		s, err := schemas.Get(name)
		if err != nil {
			return err
		}
		structs, unions, enums := countDeclarations(s)
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", s.Name, s.Package, structs, unions, enums)
	}

	return w.Flush()
}

func countDeclarations(s *schema.Schema) (structs, unions, enums int) {
	for _, decl := range s.Declarations() {
		switch decl.(type) {
		case schema.Struct:
			structs++
		case schema.Union:
			unions++
		case schema.Enum:
			enums++
		}
	}
	return structs, unions, enums
}
