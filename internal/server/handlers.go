// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pdiddy/gapwriter/internal/completion"
	"github.com/pdiddy/gapwriter/internal/gaps"
	"github.com/pdiddy/gapwriter/internal/httputil"
	"github.com/pdiddy/gapwriter/internal/metrics"
	"github.com/pdiddy/gapwriter/internal/search"
	"github.com/pdiddy/gapwriter/pkg/types"
)

type searchResponse struct {
	Results []types.SearchResult `json:"results"`
}

type generateRequest struct {
	Topic string `json:"topic"`
}

type generateResponse struct {
	Content string `json:"content"`
}

type gapsResponse struct {
	Query string             `json:"query"`
	Gaps  []types.ContentGap `json:"gaps"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleSearch serves GET /api/search?q=.
func (s *Server) handleSearch(c echo.Context) error {
	results, err := search.Search(c.Request().Context(), s.search, c.QueryParam("q"))
	if err != nil {
		return searchError(err)
	}
	return c.JSON(http.StatusOK, searchResponse{Results: results})
}

func searchError(err error) error {
	var upErr *httputil.UpstreamError
	switch {
	case errors.Is(err, search.ErrEmptyQuery):
		return newAPIError(http.StatusBadRequest, "Query parameter is required", "")
	case errors.Is(err, search.ErrMissingAPIKey):
		return newAPIError(http.StatusInternalServerError, "Brave API key is not configured", "")
	case errors.As(err, &upErr):
		return newAPIError(upstreamStatus(upErr), "Failed to fetch search results from Brave", upErr.Body)
	default:
		return newAPIError(http.StatusInternalServerError, "Failed to fetch search results", "")
	}
}

// handleGenerateBlog serves POST /api/generate-blog with body {"topic": ...}.
// The body is read as JSON whatever the Content-Type header says. An empty
// body is treated as a missing topic.
func (s *Server) handleGenerateBlog(c echo.Context) error {
	var req generateRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return newAPIError(http.StatusBadRequest, "Invalid request body", err.Error())
	}

	post, err := completion.Generate(c.Request().Context(), s.completion, req.Topic)
	if err != nil {
		return generateError(err)
	}
	return c.JSON(http.StatusOK, generateResponse{Content: post.Content})
}

func generateError(err error) error {
	var upErr *httputil.UpstreamError
	var shapeErr *completion.ShapeError
	switch {
	case errors.Is(err, completion.ErrEmptyTopic):
		return newAPIError(http.StatusBadRequest, "Topic is required", "")
	case errors.Is(err, completion.ErrMissingAPIKey):
		return newAPIError(http.StatusInternalServerError, "Together API key is not configured", "")
	case errors.As(err, &shapeErr):
		return newAPIError(http.StatusInternalServerError, "Unexpected API response structure", shapeErr.Raw)
	case errors.As(err, &upErr):
		return newAPIError(upstreamStatus(upErr), "Failed to generate blog post", upErr.Body)
	default:
		return newAPIError(http.StatusInternalServerError, "Failed to generate blog post", err.Error())
	}
}

// handleGaps serves GET /api/gaps?q=. An empty query is valid.
func (s *Server) handleGaps(c echo.Context) error {
	q := c.QueryParam("q")
	result := gaps.Generate(q)
	metrics.RecordGaps()
	return c.JSON(http.StatusOK, gapsResponse{Query: q, Gaps: result})
}

// upstreamStatus forwards the upstream error status. Non-error statuses
// (redirects the client did not follow) become 502.
func upstreamStatus(e *httputil.UpstreamError) int {
	if e.StatusCode >= 400 && e.StatusCode <= 599 {
		return e.StatusCode
	}
	return http.StatusBadGateway
}
