// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MinGapScore and MaxGapScore bound ContentGap.Score.
const (
	MinGapScore = 5
	MaxGapScore = 9
)

// ContentGap is a synthesized topic suggestion with a heuristic score.
type ContentGap struct {
	// Gap is the suggested topic phrase.
	Gap string `json:"gap" yaml:"gap"`

	// Score is the heuristic relevance in [MinGapScore, MaxGapScore].
	Score int `json:"score" yaml:"score"`
}

// BlogPost pairs a topic with the Markdown draft generated for it. The content
// is opaque; nothing inspects its structure.
type BlogPost struct {
	Topic   string `json:"topic" yaml:"topic"`
	Content string `json:"content" yaml:"content"`
}
