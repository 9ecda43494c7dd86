// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/philarios/philarios/internal/config"
	"github.com/philarios/philarios/internal/prompts"
	"github.com/philarios/philarios/internal/schemas"
	"github.com/spf13/cobra"
)

type initOptions struct {
	builtin        string
	schemaPath     string
	output         string
	pkg            string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new philarios project",
		Long: `Initialize a new philarios project with a philarios.yaml configuration file
holding a first generation target.`,
		Example: `  # Interactive mode
  philarios init

  # Non-interactive
  philarios init --builtin concourse --output ./dsl/concourse --non-interactive
  philarios init --schema schemas/shop.yaml --output ./shop --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			return runInit(cmd.OutOrStdout(), cwd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.builtin, "builtin", "b", "", "Built-in schema name")
	cmd.Flags().StringVarP(&opts.schemaPath, "schema", "s", "", "Path to a schema file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory of the generated package")
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Package name override")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --builtin or --schema, and --output)")
	cmd.MarkFlagsMutuallyExclusive("builtin", "schema")

	return cmd
}

func runInit(w io.Writer, dir string, opts *initOptions) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New("philarios.yaml already exists; project already initialized")
	}

	target := config.Target{
		Builtin: opts.builtin,
		Schema:  opts.schemaPath,
		Output:  opts.output,
		Package: opts.pkg,
	}

	if opts.nonInteractive {
		if target.Builtin == "" && target.Schema == "" {
			return errors.New("non-interactive mode requires either --builtin or --schema")
		}
	} else {
		answers := prompts.InitAnswers{
			UseBuiltin: opts.schemaPath == "",
			Builtin:    opts.builtin,
			Schema:     opts.schemaPath,
			Output:     opts.output,
			Package:    opts.pkg,
		}
		if err := prompts.RunInitForm(&answers, schemas.Names()); err != nil {
			return err
		}
		target = config.Target{Output: answers.Output, Package: answers.Package}
		if answers.UseBuiltin {
			target.Builtin = answers.Builtin
		} else {
			target.Schema = answers.Schema
		}
	}

	if target.Builtin != "" {
		if _, err := schemas.Get(target.Builtin); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Targets: []config.Target{target},
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult(w, []prompts.ResultField{
		{Label: "Config", Value: config.FileName},
		{Label: "Schema", Value: target.Source()},
		{Label: "Output", Value: target.Output},
	}, "Initialization completed")
	return nil
}
