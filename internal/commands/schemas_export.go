// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/philarios/philarios/internal/export"
	"github.com/philarios/philarios/internal/prompts"
	"github.com/philarios/philarios/internal/schema"
	"github.com/spf13/cobra"
)

func newSchemasExportCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "export [name|file]",
		Short: "Export a schema as JSON Schema",
		Long: `Export a schema as a JSON Schema (draft 2020-12) document describing the
resolved value of one root type. Every declaration is emitted under $defs.`,
		Example: `  # Export the concourse schema rooted at Pipeline
  philarios schemas export concourse --root Pipeline`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := schemaFromArgs(args, "Select schema to export")
			if err != nil {
				return err
			}
			if root == "" {
				if err := prompts.RunRootSelectForm(&root, s); err != nil {
					return err
				}
			}
			return runSchemasExport(cmd.OutOrStdout(), s, root)
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", "", "Root type of the exported document")
	return cmd
}

func runSchemasExport(out io.Writer, s *schema.Schema, root string) error {
	doc, err := export.JSONSchema(s, root)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize JSON Schema: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
