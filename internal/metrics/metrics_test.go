// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/gapwriter/internal/httputil"
)

func TestOutcome(t *testing.T) {
	upErr := &httputil.UpstreamError{Service: "x", StatusCode: 502}
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, OutcomeOK},
		{"upstream", upErr, OutcomeUpstream},
		{"wrapped upstream", fmt.Errorf("relay: %w", upErr), OutcomeUpstream},
		{"other", errors.New("boom"), OutcomeError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome(tt.err))
		})
	}
}

func TestObserveRelay(t *testing.T) {
	before := testutil.ToFloat64(RelayRequestsTotal.WithLabelValues(RelaySearch, OutcomeOK))
	ObserveRelay(RelaySearch, nil, 10*time.Millisecond)
	after := testutil.ToFloat64(RelayRequestsTotal.WithLabelValues(RelaySearch, OutcomeOK))
	assert.Equal(t, before+1, after)
}

func TestRecordGaps(t *testing.T) {
	before := testutil.ToFloat64(GapsGeneratedTotal)
	RecordGaps()
	assert.Equal(t, before+1, testutil.ToFloat64(GapsGeneratedTotal))
}

func TestObserveHTTP(t *testing.T) {
	c := HTTPRequestsTotal.WithLabelValues("GET", "/api/gaps", "200")
	before := testutil.ToFloat64(c)
	ObserveHTTP("GET", "/api/gaps", 200)
	assert.Equal(t, before+1, testutil.ToFloat64(c))

	unmatched := HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")
	before = testutil.ToFloat64(unmatched)
	ObserveHTTP("GET", "", 404)
	assert.Equal(t, before+1, testutil.ToFloat64(unmatched))
}
