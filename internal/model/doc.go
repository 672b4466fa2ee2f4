// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

// Package model provides the predictors behind the recommendation engine.
//
// Three backends are supported:
//
//   - local: JSON artifacts loaded from a directory (a linear yield regressor,
//     a standard scaler and a binary logistic pest classifier)
//   - remote: an HTTP inference server reached through a circuit breaker
//   - none: recommend.Unavailable stand-ins, so every value comes from the fallback tables
//
// # Artifacts
//
//	models/
//	  yield_model.json      {"features": [...], "coefficients": [...], "intercept": 0}
//	  pest_scaler.json      {"features": [...], "mean": [...], "scale": [...]}
//	  pest_risk_model.json  {"features": [...], "coefficients": [...], "intercept": 0, "classes": [0, 1]}
//
// Feature names must match recommend.YieldColumns and recommend.PestColumns
// exactly, in order. A mismatched artifact is rejected at load time rather
// than producing silently wrong predictions.
//
// # Thread Safety
//
// All predictors are immutable after construction and safe for concurrent use.
package model
