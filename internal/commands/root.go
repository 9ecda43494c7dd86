// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"os"

	"github.com/philarios/philarios/internal/ctxlog"
	"github.com/spf13/cobra"
)

// EnvLogLevel overrides the default of --log-level.
const EnvLogLevel = "PHILARIOS_LOG_LEVEL"

type rootOptions struct {
	logLevel  string
	logFormat string
}

// NewRootCmd creates and returns the root command for the CLI.
// getenv is consulted for flag defaults; nil means os.Getenv.
func NewRootCmd(getenv func(string) string) *cobra.Command {
	if getenv == nil {
		getenv = os.Getenv
	}
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "philarios",
		Short: "Generate typed Go DSLs from schemas",
		Long: `philarios turns a schema of structs, unions and enums into a Go package of
builders, reusable specs and resolvable shells for building configuration trees.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger := ctxlog.New(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
	}

	level := getenv(EnvLogLevel)
	if level == "" {
		level = "warn"
	}
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", level, "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format (text or json)")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGenerateCmd())
	registerSchemasCmd(rootCmd)
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func registerSchemasCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "schemas",
		Short: "Inspect built-in and file schemas",
	}

	cmd.AddCommand(newSchemasListCmd())
	cmd.AddCommand(newSchemasDescribeCmd())
	cmd.AddCommand(newSchemasExportCmd())

	parent.AddCommand(cmd)
}
