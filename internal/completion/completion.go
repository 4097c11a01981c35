// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package completion relays blog post requests to a text completion API.
// A topic is rendered into a fixed prompt, sent with fixed sampling
// parameters, and the first completion's text is returned as Markdown.
package completion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pdiddy/gapwriter/internal/metrics"
	"github.com/pdiddy/gapwriter/pkg/types"
)

var (
	// ErrEmptyTopic is returned when the topic is empty.
	ErrEmptyTopic = errors.New("topic is empty")

	// ErrMissingAPIKey is returned when no completion API key is configured.
	// No request is sent in that case.
	ErrMissingAPIKey = errors.New("completion API key is not configured")
)

// ShapeError reports a successful upstream response that lacks the
// expected completion text. Raw holds the body for diagnosis.
type ShapeError struct {
	Raw string
}

func (e *ShapeError) Error() string {
	return "unexpected completion response structure"
}

// Backend abstracts the completion API so tests can supply a mock.
type Backend interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generate renders the prompt for topic and returns the generated post.
func Generate(ctx context.Context, b Backend, topic string) (types.BlogPost, error) {
	if topic == "" {
		return types.BlogPost{}, ErrEmptyTopic
	}

	prompt, err := BuildPrompt(topic)
	if err != nil {
		return types.BlogPost{}, fmt.Errorf("rendering prompt: %w", err)
	}

	slog.InfoContext(ctx, "generating blog post", "backend", b.Name(), "topic", topic)

	start := time.Now()
	text, err := b.Complete(ctx, prompt)
	metrics.ObserveRelay(metrics.RelayCompletion, err, time.Since(start))
	if err != nil {
		slog.ErrorContext(ctx, "blog post generation failed", "backend", b.Name(), "topic", topic, "error", err)
		return types.BlogPost{}, err
	}

	slog.InfoContext(ctx, "blog post generated", "topic", topic, "bytes", len(text))
	return types.BlogPost{Topic: topic, Content: text}, nil
}
