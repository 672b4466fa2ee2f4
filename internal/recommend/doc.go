// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

// Package recommend implements the crop recommendation engine.
//
// # Pipeline
//
// For every candidate crop the engine runs the same steps:
//
//   - Feature synthesis: the farm inputs overlaid by the weather forecast are
//     turned into the yield row and the pest row (fixed column order)
//   - Yield prediction: Regressor call, falling back to a per-crop constant
//   - Price estimation: deterministic weather and yield factors on a base price
//   - Pest risk: Scaler then Classifier, falling back to a per-crop constant
//   - Economics: total cost, revenue, profit and ROI percentage
//
// The candidates are then stably sorted by ROI (descending) and the top N
// (3 by default) receive strengths, weaknesses and an explanation string.
//
// # Predictors
//
// Predictors are opaque capabilities (Regressor, Scaler, Classifier). Every
// call is captured as an Outcome and resolved against the fallback tables,
// so a missing or broken model never removes a crop from the result.
// The Unavailable stand-in implements all three interfaces and always fails,
// which gives tests and model-less deployments the fallback path.
//
// # Reference Data
//
// All static crop data (defaults, costs, prices, averages, optimal
// temperatures, encodings, fallbacks) lives in ReferenceTables, built once
// by DefaultReferenceTables and captured by the engine.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), recommend.Predictors{
//	    Yield:  provider.Yield,
//	    Scaler: provider.Scaler,
//	    Pest:   provider.Pest,
//	}, logger)
//
//	recs, err := engine.Recommend(ctx, farm, weather)
//
// # Thread Safety
//
// The engine holds no per-request mutable state. Predictors are treated as
// read-only after construction, so one engine serves concurrent requests
// without locking.
package recommend
