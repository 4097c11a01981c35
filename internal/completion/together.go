// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pdiddy/gapwriter/internal/httputil"
	"github.com/pdiddy/gapwriter/pkg/types"
)

// Defaults for the Together completions API.
const (
	DefaultTogetherEndpoint = "https://api.together.xyz/v1/completions"
	DefaultModel            = "mistralai/Mixtral-8x7B-Instruct-v0.1"
	DefaultMaxTokens        = 1000
	DefaultTemperature      = 0.7
)

const togetherService = "Together AI API"

// TogetherBackend calls the Together completions API.
type TogetherBackend struct {
	Client      *http.Client
	Endpoint    string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	UserAgent   string
}

// NewTogetherBackend builds a backend from cfg, filling unset fields with
// the package defaults.
func NewTogetherBackend(client *http.Client, cfg types.CompletionConfig, httpCfg types.HTTPConfig) *TogetherBackend {
	b := &TogetherBackend{
		Client:      client,
		Endpoint:    cfg.Endpoint,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: DefaultTemperature,
		UserAgent:   httpCfg.UserAgent,
	}
	if cfg.Temperature != nil {
		b.Temperature = *cfg.Temperature
	}
	if b.Endpoint == "" {
		b.Endpoint = DefaultTogetherEndpoint
	}
	if b.Model == "" {
		b.Model = DefaultModel
	}
	if b.MaxTokens <= 0 {
		b.MaxTokens = DefaultMaxTokens
	}
	return b
}

// Name returns the backend identifier.
func (b *TogetherBackend) Name() string { return "together" }

// Complete sends prompt and returns choices[0].text. An empty or missing
// text is a *ShapeError.
func (b *TogetherBackend) Complete(ctx context.Context, prompt string) (string, error) {
	if b.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	payload, err := json.Marshal(togetherRequest{
		Model:       b.Model,
		Prompt:      prompt,
		MaxTokens:   b.MaxTokens,
		Temperature: b.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.APIKey)
	if b.UserAgent != "" {
		req.Header.Set("User-Agent", b.UserAgent)
	}

	slog.DebugContext(ctx, "calling completion API", "endpoint", b.Endpoint, "model", b.Model)

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	body, err := httputil.Do(ctx, client, togetherService, req)
	if err != nil {
		return "", err
	}

	var tr togetherResponse
	if err := json.Unmarshal(body, &tr); err != nil || len(tr.Choices) == 0 || tr.Choices[0].Text == "" {
		slog.ErrorContext(ctx, "unexpected completion response structure", "body", string(body))
		return "", &ShapeError{Raw: string(body)}
	}
	return tr.Choices[0].Text, nil
}

// Together API JSON structures.
type togetherRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type togetherResponse struct {
	ID      string           `json:"id"`
	Model   string           `json:"model"`
	Choices []togetherChoice `json:"choices"`
}

type togetherChoice struct {
	Text         string `json:"text"`
	Index        int    `json:"index"`
	FinishReason string `json:"finish_reason"`
}
