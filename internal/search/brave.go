// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/gapwriter/internal/httputil"
	"github.com/pdiddy/gapwriter/pkg/types"
)

// DefaultBraveEndpoint is the Brave web search endpoint.
const DefaultBraveEndpoint = "https://api.search.brave.com/res/v1/web/search"

// braveService names Brave in errors and logs.
const braveService = "Brave Search API"

// BraveBackend queries the Brave web search API.
type BraveBackend struct {
	Client    *http.Client
	Endpoint  string
	APIKey    string
	UserAgent string
}

// NewBraveBackend builds a backend from cfg. An empty endpoint falls back to
// DefaultBraveEndpoint.
func NewBraveBackend(client *http.Client, cfg types.SearchConfig, httpCfg types.HTTPConfig) *BraveBackend {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultBraveEndpoint
	}
	return &BraveBackend{
		Client:    client,
		Endpoint:  endpoint,
		APIKey:    cfg.APIKey,
		UserAgent: httpCfg.UserAgent,
	}
}

// Name returns the backend identifier.
func (b *BraveBackend) Name() string { return "brave" }

// Search sends one request for query and maps web.results in order. The
// transport negotiates gzip on its own, so Accept-Encoding is not set here.
func (b *BraveBackend) Search(ctx context.Context, query string) ([]types.SearchResult, error) {
	if b.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	reqURL := b.Endpoint + "?" + url.Values{"q": {query}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", b.APIKey)
	if b.UserAgent != "" {
		req.Header.Set("User-Agent", b.UserAgent)
	}

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	body, err := httputil.Do(ctx, client, braveService, req)
	if err != nil {
		return nil, err
	}

	var br braveResponse
	if err := json.Unmarshal(body, &br); err != nil {
		slog.ErrorContext(ctx, "unparseable search response", "body", string(body))
		return nil, fmt.Errorf("parsing %s response: %w", braveService, err)
	}
	return br.toResults(), nil
}

// toResults maps upstream results to SearchResult, using the list index as
// the ID. A response without web results maps to an empty slice.
func (br braveResponse) toResults() []types.SearchResult {
	if br.Web == nil {
		return []types.SearchResult{}
	}
	results := make([]types.SearchResult, 0, len(br.Web.Results))
	for i, r := range br.Web.Results {
		results = append(results, types.SearchResult{
			ID:          strconv.Itoa(i),
			Title:       r.Title,
			URL:         r.URL,
			Description: r.Description,
		})
	}
	return results
}

// Brave API JSON structures.
type braveResponse struct {
	Web *braveWeb `json:"web"`
}

type braveWeb struct {
	Results []braveResult `json:"results"`
}

type braveResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}
