// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics provides Prometheus metrics for gapwriter.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pdiddy/gapwriter/internal/httputil"
)

// Relay names used as label values.
const (
	RelaySearch     = "search"
	RelayCompletion = "completion"
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeUpstream = "upstream_error"
	OutcomeError    = "error"
)

var (
	// RelayRequestsTotal counts relay calls by outcome.
	RelayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gapwriter",
			Name:      "relay_requests_total",
			Help:      "Total number of relay calls to third-party APIs",
		},
		[]string{"relay", "outcome"},
	)

	// UpstreamDuration measures how long relay calls take.
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gapwriter",
			Name:      "upstream_duration_seconds",
			Help:      "Duration of relay calls in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"relay"},
	)

	// HTTPRequestsTotal counts inbound requests by route and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gapwriter",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests served",
		},
		[]string{"method", "route", "code"},
	)

	// GapsGeneratedTotal counts gap generator invocations.
	GapsGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gapwriter",
			Name:      "gaps_generated_total",
			Help:      "Total number of content gap lists generated",
		},
	)
)

// Outcome classifies a relay error for labelling.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	var upErr *httputil.UpstreamError
	if errors.As(err, &upErr) {
		return OutcomeUpstream
	}
	return OutcomeError
}

// ObserveRelay records one relay call.
func ObserveRelay(relay string, err error, d time.Duration) {
	RelayRequestsTotal.WithLabelValues(relay, Outcome(err)).Inc()
	UpstreamDuration.WithLabelValues(relay).Observe(d.Seconds())
}

// RecordGaps records one gap generation.
func RecordGaps() {
	GapsGeneratedTotal.Inc()
}

// ObserveHTTP records one served request. route is the matched route
// pattern, not the raw path, to keep label cardinality bounded.
func ObserveHTTP(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
