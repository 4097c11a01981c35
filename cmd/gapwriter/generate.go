// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gapwriter/internal/completion"
	"github.com/pdiddy/gapwriter/internal/draft"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic...>",
	Short: "Draft a Markdown blog post for a topic",
	Long: `Generate asks the Together completions API for a long-form blog post on
the topic and prints the Markdown. With --output-dir the post is also saved
as <slug>.md with a YAML front matter header.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("output-dir", "", "directory to save the post in")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic := strings.Join(args, " ")
	if topic == "" {
		return fmt.Errorf("provide a topic")
	}
	outDir, _ := cmd.Flags().GetString("output-dir")

	_, cb := newBackends()
	post, err := completion.Generate(cmd.Context(), cb, topic)
	if err != nil {
		return describe(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), post.Content)

	if outDir != "" {
		path, err := draft.Write(outDir, post)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s\n", path)
	}
	return nil
}
