// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gapwriter/pkg/types"
)

var sampleResults = []types.SearchResult{
	{ID: "0", Title: "SEO Basics", URL: "https://example.com/seo", Description: "Learn | rank\nfast"},
	{ID: "1", Title: "Keyword Research", URL: "https://example.com/kw", Description: "Find terms"},
}

var sampleGaps = []types.ContentGap{
	{Gap: "templates about professional seo", Score: 9},
	{Gap: "seo checklist for budget-friendly", Score: 8},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteSearchTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSearch(&buf, FormatTable, "seo", sampleResults))

	out := buf.String()
	assert.Contains(t, out, "Rank")
	assert.Contains(t, out, "SEO Basics")
	assert.Contains(t, out, "https://example.com/kw")
	assert.Contains(t, out, "2 results")
}

func TestWriteSearchTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSearch(&buf, FormatTable, "seo", nil))
	assert.Equal(t, "No results found.\n", buf.String())
}

func TestWriteSearchJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSearch(&buf, FormatJSON, "seo", sampleResults))

	var doc struct {
		Query   string               `json:"query"`
		Results []types.SearchResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "seo", doc.Query)
	assert.Equal(t, sampleResults, doc.Results)
}

func TestWriteGapsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGaps(&buf, FormatYAML, "seo", sampleGaps))

	var doc struct {
		Query string             `yaml:"query"`
		Gaps  []types.ContentGap `yaml:"gaps"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "seo", doc.Query)
	assert.Equal(t, sampleGaps, doc.Gaps)
}

func TestWriteGapsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGaps(&buf, FormatTable, "seo", sampleGaps))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], "templates about professional seo")
	assert.True(t, strings.HasSuffix(lines[2], "9/10"))
	assert.True(t, strings.HasSuffix(lines[3], "8/10"))
}

func TestWriteGapsMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGaps(&buf, FormatMarkdown, "seo", sampleGaps))

	out := buf.String()
	assert.Contains(t, out, "# Content Gap Analysis")
	assert.Contains(t, out, `"seo"`)
	assert.Contains(t, out, "templates about professional seo")
	assert.Contains(t, out, "9/10")
	assert.Contains(t, out, "8/10")
}

func TestWriteSearchMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSearch(&buf, FormatMarkdown, "seo", sampleResults))

	out := buf.String()
	assert.Contains(t, out, "[SEO Basics](https://example.com/seo)")
	assert.Contains(t, out, "rank fast")
	assert.NotContains(t, out, "rank\nfast")
}

func TestWriteSearchMarkdownEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSearch(&buf, FormatMarkdown, "seo", []types.SearchResult{}))
	assert.Contains(t, buf.String(), "No results found.")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ééééééé...", truncate(strings.Repeat("é", 20), 10))
}

func TestScoreLabel(t *testing.T) {
	assert.Equal(t, "7/10", ScoreLabel(7))
}
