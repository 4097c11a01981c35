// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for gapwriter: search results,
// content gaps, generated posts, and per-component configuration.
package types

// SearchResult is one web result returned by the search relay. The ID is the
// decimal position of the result in the upstream response, so it is stable
// only within a single response.
type SearchResult struct {
	// ID is the result's index in the upstream result list ("0", "1", ...).
	ID string `json:"id" yaml:"id"`

	// Title is the page title as returned by the search API.
	Title string `json:"title" yaml:"title"`

	// URL is the page address.
	URL string `json:"url" yaml:"url"`

	// Description is the snippet the search API returned for the page.
	Description string `json:"description" yaml:"description"`
}
