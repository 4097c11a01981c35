// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gaps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gapwriter/pkg/types"
)

func TestSeed(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "seo", 327},
		{"latin-1", "é", 233},
		{"astral plane counts both surrogates", "😀", 0xD83D + 0xDE00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Seed(tt.query))
		})
	}
}

func TestGenerateSEO(t *testing.T) {
	want := []types.ContentGap{
		{Gap: "templates about professional seo", Score: 9},
		{Gap: "seo checklist for budget-friendly", Score: 8},
		{Gap: "ultimate seo resources", Score: 7},
		{Gap: "seo tutorial for advanced strategies", Score: 6},
		{Gap: "beginners guide to seo guide", Score: 5},
	}
	assert.Equal(t, want, Generate("seo"))
}

func TestGenerateEmptyQuery(t *testing.T) {
	want := []types.ContentGap{
		{Gap: " examples for sustainable", Score: 9},
		{Gap: "premium  strategies", Score: 8},
		{Gap: "tips about affordable ", Score: 7},
		{Gap: " tutorial for advanced strategies", Score: 6},
		{Gap: "beginners guide to  guide", Score: 5},
	}
	assert.Equal(t, want, Generate(""))
}

func TestGenerateProperties(t *testing.T) {
	queries := []string{
		"seo",
		"vegan desserts",
		"eco-travel for seniors",
		"a",
		"Ünïcödé ☕ 😀",
		"very long query with many words to push the seed well past a few thousand",
	}
	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			got := Generate(q)
			require.Len(t, got, Count)

			for i, g := range got {
				assert.GreaterOrEqual(t, g.Score, types.MinGapScore)
				assert.LessOrEqual(t, g.Score, types.MaxGapScore)
				assert.Contains(t, g.Gap, q)
				if i > 0 {
					assert.GreaterOrEqual(t, got[i-1].Score, g.Score, "scores must be non-increasing")
				}
			}

			assert.Equal(t, got, Generate(q), "same query must give same gaps")
		})
	}
}

func TestPhraseTemplates(t *testing.T) {
	tests := []struct {
		name        string
		i           int
		keyword     string
		contentType string
		want        string
	}{
		{"keyword first", 0, "quick", "tips", "quick garden tips"},
		{"query first strips for", 1, "advanced strategies for", "tools", "garden tools for advanced strategies"},
		{"query first keeps plain keyword", 4, "premium", "guide", "garden guide for premium"},
		{"type first", 2, "beginners guide to", "examples", "examples about beginners guide to garden"},
		{"cycle wraps at three", 3, "affordable", "templates", "affordable garden templates"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, phrase(tt.i, "garden", tt.keyword, tt.contentType))
		})
	}
}

func TestPick(t *testing.T) {
	assert.Equal(t, 7, pick(327, 0, 9, 0))
	assert.Equal(t, 7, pick(327, 0, 9, 10))
	assert.Equal(t, 7, pick(327, 5, 9, 20))
	assert.Equal(t, 5, pick(0, 5, 9, 0))
}
