// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search relays keyword queries to a web search API and reshapes
// the upstream results into types.SearchResult values.
package search

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pdiddy/gapwriter/internal/metrics"
	"github.com/pdiddy/gapwriter/pkg/types"
)

var (
	// ErrEmptyQuery is returned when the query string is empty.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrMissingAPIKey is returned when no search API key is configured.
	// No request is sent in that case.
	ErrMissingAPIKey = errors.New("search API key is not configured")
)

// Backend searches one web search API.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string) ([]types.SearchResult, error)
}

// Search validates query and runs it against b, recording the outcome.
// The result slice is never nil on success.
func Search(ctx context.Context, b Backend, query string) ([]types.SearchResult, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	start := time.Now()
	results, err := b.Search(ctx, query)
	metrics.ObserveRelay(metrics.RelaySearch, err, time.Since(start))
	if err != nil {
		slog.ErrorContext(ctx, "search failed", "backend", b.Name(), "query", query, "error", err)
		return nil, err
	}

	if results == nil {
		results = []types.SearchResult{}
	}
	slog.InfoContext(ctx, "search completed", "backend", b.Name(), "query", query, "results", len(results))
	return results, nil
}
