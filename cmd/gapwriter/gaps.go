// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gapwriter/internal/gaps"
	"github.com/pdiddy/gapwriter/internal/metrics"
	"github.com/pdiddy/gapwriter/internal/report"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps [query...]",
	Short: "Suggest content gaps for a keyword",
	Long: `Gaps prints five deterministic content gap suggestions for the query,
highest score first. The same query always yields the same list. No API key
is needed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		formatFlag, _ := cmd.Flags().GetString("format")
		format, err := report.ParseFormat(formatFlag)
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		result := gaps.Generate(query)
		metrics.RecordGaps()
		return report.WriteGaps(cmd.OutOrStdout(), format, query, result)
	},
}

func init() {
	gapsCmd.Flags().String("format", "table", "output format: table, json, yaml, markdown")
	rootCmd.AddCommand(gapsCmd)
}
