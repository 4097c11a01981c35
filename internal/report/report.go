// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders search results and content gaps for the CLI.
// Supported formats are a fixed-width table, indented JSON, YAML, and
// Markdown.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gapwriter/pkg/types"
)

// Format selects the output rendering.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a --format flag value. The empty string means table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use table, json, yaml, or markdown", s)
	}
}

// searchDoc and gapsDoc are the JSON and YAML document shapes. The search
// document matches the /api/search response body.
type searchDoc struct {
	Query   string               `json:"query" yaml:"query"`
	Results []types.SearchResult `json:"results" yaml:"results"`
}

type gapsDoc struct {
	Query string             `json:"query" yaml:"query"`
	Gaps  []types.ContentGap `json:"gaps" yaml:"gaps"`
}

// WriteSearch renders results for query in format f.
func WriteSearch(w io.Writer, f Format, query string, results []types.SearchResult) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, searchDoc{Query: query, Results: results})
	case FormatYAML:
		return writeYAML(w, searchDoc{Query: query, Results: results})
	case FormatMarkdown:
		return writeSearchMarkdown(w, query, results)
	default:
		writeSearchTable(w, results)
		return nil
	}
}

// WriteGaps renders gaps for query in format f.
func WriteGaps(w io.Writer, f Format, query string, gaps []types.ContentGap) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, gapsDoc{Query: query, Gaps: gaps})
	case FormatYAML:
		return writeYAML(w, gapsDoc{Query: query, Gaps: gaps})
	case FormatMarkdown:
		return writeGapsMarkdown(w, query, gaps)
	default:
		writeGapsTable(w, gaps)
		return nil
	}
}

// ScoreLabel renders a gap score out of ten.
func ScoreLabel(score int) string {
	return fmt.Sprintf("%d/10", score)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func writeSearchTable(w io.Writer, results []types.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %s\n", "Rank", "Title", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for i, r := range results {
		fmt.Fprintf(w, "%-4d  %-50s  %s\n", i+1, truncate(r.Title, 50), r.URL)
	}
	fmt.Fprintf(w, "\n%d results\n", len(results))
}

func writeGapsTable(w io.Writer, gaps []types.ContentGap) {
	fmt.Fprintf(w, "%-4s  %-60s  %s\n", "Rank", "Gap", "Score")
	fmt.Fprintln(w, strings.Repeat("-", 76))
	for i, g := range gaps {
		fmt.Fprintf(w, "%-4d  %-60s  %s\n", i+1, truncate(g.Gap, 60), ScoreLabel(g.Score))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
