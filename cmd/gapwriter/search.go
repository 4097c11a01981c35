// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gapwriter/internal/report"
	"github.com/pdiddy/gapwriter/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search the web for a keyword",
	Long: `Search sends the query to the Brave Search API and prints the web
results. Arguments are joined with spaces.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("format", "table", "output format: table, json, yaml, markdown")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	if query == "" {
		return fmt.Errorf("provide a search query")
	}
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := report.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	sb, _ := newBackends()
	results, err := search.Search(cmd.Context(), sb, query)
	if err != nil {
		return describe(err)
	}
	return report.WriteSearch(cmd.OutOrStdout(), format, query, results)
}
