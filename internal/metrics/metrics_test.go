// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("POST", "/api/v1/recommendations", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("POST", "/api/v1/recommendations", "200", 15*time.Millisecond)

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("api_requests_total = %v, want %v", got, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc: got %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec: got %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		name    string
		outcome string
	}{
		{"success", OutcomeSuccess},
		{"input error", OutcomeInputError},
		{"internal error", OutcomeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := RecommendationRequests.WithLabelValues(tt.outcome)
			before := testutil.ToFloat64(counter)

			RecordRecommendation(tt.outcome, time.Millisecond)

			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Errorf("recommendation_requests_total{outcome=%q} = %v, want %v", tt.outcome, got, before+1)
			}
		})
	}
}

func TestRecordModelPrediction(t *testing.T) {
	counter := ModelPredictions.WithLabelValues("pest", OutcomeFallback)
	before := testutil.ToFloat64(counter)

	RecordModelPrediction("pest", OutcomeFallback)
	RecordModelPrediction("pest", OutcomeFallback)

	if got := testutil.ToFloat64(counter); got != before+2 {
		t.Errorf("model_predictions_total = %v, want %v", got, before+2)
	}
}

func TestSetModelLoaded(t *testing.T) {
	SetModelLoaded("yield", true)
	if got := testutil.ToFloat64(ModelLoaded.WithLabelValues("yield")); got != 1 {
		t.Errorf("model_loaded{yield} = %v, want 1", got)
	}

	SetModelLoaded("yield", false)
	if got := testutil.ToFloat64(ModelLoaded.WithLabelValues("yield")); got != 0 {
		t.Errorf("model_loaded{yield} = %v, want 0", got)
	}
}

func TestRecordRateLimitHit(t *testing.T) {
	counter := APIRateLimitHits.WithLabelValues("/api/v1/recommendations")
	before := testutil.ToFloat64(counter)

	RecordRateLimitHit("/api/v1/recommendations")

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("api_rate_limit_hits_total = %v, want %v", got, before+1)
	}
}

func TestMetricGathering(t *testing.T) {
	RecordRemoteModelCall("yield", 20*time.Millisecond)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem in %s: %s", p.Metric, p.Text)
	}

	count, err := testutil.GatherAndCount(prometheus.DefaultGatherer, "model_remote_request_duration_seconds")
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if count == 0 {
		t.Error("expected model_remote_request_duration_seconds to be registered")
	}
}
