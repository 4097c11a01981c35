// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package completion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gapwriter/internal/httputil"
	"github.com/pdiddy/gapwriter/pkg/types"
)

func newTestBackend(ts *httptest.Server, key string) *TogetherBackend {
	b := NewTogetherBackend(ts.Client(), types.CompletionConfig{
		Endpoint: ts.URL + "/v1/completions",
		APIKey:   key,
	}, types.HTTPConfig{UserAgent: "gapwriter-test/0.1"})
	return b
}

func TestTogetherCompleteRequest(t *testing.T) {
	var (
		captured *http.Request
		payload  map[string]any
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		fmt.Fprint(w, `{"choices":[{"text":"# Post"}]}`)
	}))
	defer ts.Close()

	text, err := newTestBackend(ts, "together-key").Complete(context.Background(), "the prompt")
	require.NoError(t, err)
	assert.Equal(t, "# Post", text)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/v1/completions", captured.URL.Path)
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	assert.Equal(t, "Bearer together-key", captured.Header.Get("Authorization"))

	assert.Equal(t, DefaultModel, payload["model"])
	assert.Equal(t, "the prompt", payload["prompt"])
	assert.Equal(t, float64(DefaultMaxTokens), payload["max_tokens"])
	assert.Equal(t, DefaultTemperature, payload["temperature"])
}

func TestTogetherCompleteShapeErrors(t *testing.T) {
	bodies := map[string]string{
		"no choices":       `{"id":"x"}`,
		"empty choices":    `{"choices":[]}`,
		"missing text":     `{"choices":[{"index":0}]}`,
		"empty text":       `{"choices":[{"text":""}]}`,
		"text wrong type":  `{"choices":[{"text":42}]}`,
		"not json":         `upstream hiccup`,
		"json null":        `null`,
		"choices not list": `{"choices":{"text":"x"}}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, body)
			}))
			defer ts.Close()

			_, err := newTestBackend(ts, "k").Complete(context.Background(), "p")
			var shapeErr *ShapeError
			require.True(t, errors.As(err, &shapeErr), "got %v", err)
			assert.Equal(t, body, shapeErr.Raw)
		})
	}
}

func TestTogetherCompleteUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"invalid api key"}}`)
	}))
	defer ts.Close()

	_, err := newTestBackend(ts, "bad").Complete(context.Background(), "p")

	var upErr *httputil.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusUnauthorized, upErr.StatusCode)
	assert.JSONEq(t, `{"error":{"message":"invalid api key"}}`, upErr.Body)
}

func TestTogetherCompleteMissingKeySkipsNetwork(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer ts.Close()

	_, err := newTestBackend(ts, "").Complete(context.Background(), "p")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestNewTogetherBackendOverrides(t *testing.T) {
	temp := 0.2
	b := NewTogetherBackend(nil, types.CompletionConfig{
		Model:       "meta-llama/Llama-3-8b",
		MaxTokens:   256,
		Temperature: &temp,
	}, types.HTTPConfig{})

	assert.Equal(t, DefaultTogetherEndpoint, b.Endpoint)
	assert.Equal(t, "meta-llama/Llama-3-8b", b.Model)
	assert.Equal(t, 256, b.MaxTokens)
	assert.Equal(t, 0.2, b.Temperature)
	assert.Equal(t, "together", b.Name())
}

func TestNewTogetherBackendTemperature(t *testing.T) {
	zero := 0.0
	tests := []struct {
		name string
		in   *float64
		want float64
	}{
		{"unset uses default", nil, DefaultTemperature},
		{"explicit zero kept", &zero, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewTogetherBackend(nil, types.CompletionConfig{Temperature: tt.in}, types.HTTPConfig{})
			assert.Equal(t, tt.want, b.Temperature)
		})
	}
}

func TestTogetherCompleteSendsZeroTemperature(t *testing.T) {
	var payload map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		fmt.Fprint(w, `{"choices":[{"text":"ok"}]}`)
	}))
	defer ts.Close()

	zero := 0.0
	b := NewTogetherBackend(ts.Client(), types.CompletionConfig{
		Endpoint:    ts.URL,
		APIKey:      "k",
		Temperature: &zero,
	}, types.HTTPConfig{})
	_, err := b.Complete(context.Background(), "p")
	require.NoError(t, err)

	temp, ok := payload["temperature"]
	require.True(t, ok)
	assert.Equal(t, 0.0, temp)
}
