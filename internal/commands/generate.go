// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/philarios/philarios/internal/codegen"
	"github.com/philarios/philarios/internal/config"
	"github.com/philarios/philarios/internal/ctxlog"
	"github.com/philarios/philarios/internal/prompts"
	"github.com/philarios/philarios/internal/session"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	builtin    string
	schemaPath string
	output     string
	pkg        string
}

func (o *generateOptions) adHoc() bool {
	return o.builtin != "" || o.schemaPath != ""
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate DSL packages from schemas",
		Long: `Generate a Go DSL package for a schema.

With --builtin or --schema a single package is generated into --output.
Without them every target listed in philarios.yaml is generated.
Unsupported field shapes are reported together and nothing is written
for a schema that has any.`,
		Example: `  # Generate a built-in DSL
  philarios generate --builtin concourse --output ./dsl/concourse

  # Generate from a schema file under another package name
  philarios generate --schema schemas/shop.yaml --output ./shop --package shop

  # Generate every configured target
  philarios generate`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.adHoc() {
				return nil
			}
			if opts.output != "" || opts.pkg != "" {
				return errors.New("--output and --package require --builtin or --schema")
			}
			return session.PreRunLoad(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			base, targets, err := opts.targets(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), base, targets)
		},
	}

	cmd.Flags().StringVarP(&opts.builtin, "builtin", "b", "", "Built-in schema name")
	cmd.Flags().StringVarP(&opts.schemaPath, "schema", "s", "", "Path to a schema file (yaml or json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory")
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Package name, defaults to the schema's")
	cmd.MarkFlagsMutuallyExclusive("builtin", "schema")

	return cmd
}

// targets returns the targets to generate and the directory their paths are relative to.
func (o *generateOptions) targets(cmd *cobra.Command) (string, []config.Target, error) {
	if o.adHoc() {
		t := config.Target{Builtin: o.builtin, Schema: o.schemaPath, Output: o.output, Package: o.pkg}
		if t.Output == "" {
			return "", nil, errors.New("--output is required with --builtin or --schema")
		}
		if err := t.Validate(); err != nil {
			return "", nil, err
		}
		return "", []config.Target{t}, nil
	}
	s, err := session.RequireFromCommand(cmd)
	if err != nil {
		return "", nil, err
	}
	if len(s.Config.Targets) == 0 {
		return "", nil, fmt.Errorf("no targets configured in %s", config.FileName)
	}
	return s.Dir, s.Config.Targets, nil
}

func runGenerate(ctx context.Context, w io.Writer, base string, targets []config.Target) error {
	log := ctxlog.FromContext(ctx)

	var (
		errs   *multierror.Error
		fields []prompts.ResultField
	)
	for _, t := range targets {
		s, err := loadTarget(base, t)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", t.Source(), err))
			continue
		}
		log.Debug("generating target", "source", t.Source(), "package", s.Package, "output", t.Output)

		path, err := codegen.Write(ctx, s, resolvePath(base, t.Output))
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", t.Source(), err))
			continue
		}
		fields = append(fields, prompts.ResultField{Label: t.Source(), Value: path})
	}

	if len(fields) > 0 {
		prompts.PrintResult(w, fields, fmt.Sprintf("Generated %d of %d packages", len(fields), len(targets)))
	}
	return errs.ErrorOrNil()
}
