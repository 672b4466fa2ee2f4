// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered with the default registry through promauto at
// package init, so importing the package is enough to expose them.
//
// # Metric Families
//
//   - api_*: HTTP request counts, latency and in-flight requests
//   - recommendation_*: engine calls by outcome and their latency
//   - model_*: per-crop predictions by model and outcome, loaded artifacts
//   - circuit_breaker_*: state of the breaker in front of the remote model server
//
// # Usage
//
//	metrics.RecordAPIRequest("POST", "/api/v1/recommendations", "200", time.Since(start))
//	metrics.RecordModelPrediction("yield", metrics.OutcomeFallback)
package metrics
