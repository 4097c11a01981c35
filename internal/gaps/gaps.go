// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gaps synthesizes content gap suggestions for a search query.
//
// The generator is a pure function of the query: the sum of the query's
// UTF-16 code units seeds index arithmetic over two fixed word lists, so the
// same query always yields the same five gaps in the same order.
package gaps

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf16"

	"github.com/pdiddy/gapwriter/pkg/types"
)

// Count is the number of gaps Generate returns.
const Count = 5

// keywords are the adjectives combined with the query.
var keywords = [...]string{
	"beginners guide to",
	"advanced strategies for",
	"affordable",
	"premium",
	"sustainable",
	"quick",
	"comprehensive",
	"ultimate",
	"budget-friendly",
	"professional",
}

// contentTypes are the content formats combined with the query.
var contentTypes = [...]string{
	"guide",
	"tutorial",
	"tips",
	"strategies",
	"examples",
	"case studies",
	"tools",
	"resources",
	"checklist",
	"templates",
}

// Generate returns Count gaps for query, sorted by score descending. Gaps
// with equal scores keep their generation order. An empty query is valid
// and uses seed 0.
func Generate(query string) []types.ContentGap {
	seed := Seed(query)

	out := make([]types.ContentGap, 0, Count)
	for i := 0; i < Count; i++ {
		keyword := keywords[pick(seed, 0, len(keywords)-1, i)]
		contentType := contentTypes[pick(seed, 0, len(contentTypes)-1, i+10)]
		out = append(out, types.ContentGap{
			Gap:   phrase(i, query, keyword, contentType),
			Score: pick(seed, types.MinGapScore, types.MaxGapScore, i+20),
		})
	}

	slices.SortStableFunc(out, func(a, b types.ContentGap) int {
		return b.Score - a.Score
	})
	return out
}

// Seed returns the sum of the UTF-16 code units of s. Characters outside the
// Basic Multilingual Plane contribute both surrogate halves.
func Seed(s string) int {
	sum := 0
	for _, u := range utf16.Encode([]rune(s)) {
		sum += int(u)
	}
	return sum
}

// pick maps seed+offset onto the inclusive range [lo, hi].
func pick(seed, lo, hi, offset int) int {
	return lo + (seed+offset)%(hi-lo+1)
}

// phrase composes the gap text using one of three templates chosen by i.
func phrase(i int, query, keyword, contentType string) string {
	switch i % 3 {
	case 0:
		return fmt.Sprintf("%s %s %s", keyword, query, contentType)
	case 1:
		return fmt.Sprintf("%s %s for %s", query, contentType, strings.Replace(keyword, " for", "", 1))
	default:
		return fmt.Sprintf("%s about %s %s", contentType, keyword, query)
	}
}
