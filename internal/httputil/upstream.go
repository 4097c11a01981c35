// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the outbound HTTP helper shared by the relays.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxBodyBytes caps how much of an upstream response body is read. Bodies
// longer than this are truncated.
var MaxBodyBytes int64 = 8 << 20

// UpstreamError reports a non-2xx response from a third-party API. Body holds
// the raw response text so callers can surface it as diagnostic detail.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d", e.Service, e.StatusCode)
}

// NewClient returns the client used for upstream calls. A zero timeout
// leaves the transport defaults in place.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Do executes req exactly once on ctx and returns the response body. A
// response outside the 2xx range yields an *UpstreamError carrying the
// status and body; transport failures are returned wrapped. There are no
// retries.
func Do(ctx context.Context, client *http.Client, service string, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", service, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			Service:    service,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}
	return body, nil
}
