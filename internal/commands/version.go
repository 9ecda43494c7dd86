// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/philarios/philarios/internal/prompts"
	"github.com/philarios/philarios/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the philarios version",
		Example: `  # Show version details
  philarios version

  # Print only the version
  philarios version --short`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Short())
				return err
			}
			b := version.Get()
			prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
				{Label: "Version", Value: b.Version},
				{Label: "Commit", Value: b.Commit},
				{Label: "Built", Value: b.Date},
				{Label: "Go", Value: b.Go},
			}, "")
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version")
	return cmd
}
