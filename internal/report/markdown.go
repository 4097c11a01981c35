// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/pdiddy/gapwriter/pkg/types"
)

func writeSearchMarkdown(w io.Writer, query string, results []types.SearchResult) error {
	md := markdown.NewMarkdown(w)
	md.H1(fmt.Sprintf("Results for %q", query))
	md.PlainText("")

	if len(results) == 0 {
		md.PlainText("No results found.")
		return md.Build()
	}

	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			"[" + cell(r.Title) + "](" + r.URL + ")",
			cell(r.Description),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Title", "Description"},
		Rows:   rows,
	})
	return md.Build()
}

func writeGapsMarkdown(w io.Writer, query string, gaps []types.ContentGap) error {
	md := markdown.NewMarkdown(w)
	md.H1("Content Gap Analysis")
	md.PlainText("")
	md.PlainText(fmt.Sprintf("Gap opportunities for %q.", query))
	md.PlainText("")

	rows := make([][]string, len(gaps))
	for i, g := range gaps {
		rows[i] = []string{cell(g.Gap), ScoreLabel(g.Score)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Gap", "Score"},
		Rows:   rows,
	})
	return md.Build()
}

// cell keeps text from breaking a Markdown table row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
