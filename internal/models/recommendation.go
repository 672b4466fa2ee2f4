// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package models

import (
	"github.com/tomtom215/harvestwise/internal/recommend"
)

// RecommendationRequest is the body of both recommendation endpoints.
//
// Example:
//
//	{
//	  "farmInputs": {"Soil_pH": 6.5, "Soil_Moisture": 30},
//	  "weatherForecast": {"Temperature_C": 25, "Rainfall_mm": 150}
//	}
type RecommendationRequest struct {
	FarmInputs      recommend.FarmInputs      `json:"farmInputs" validate:"required,min=1"`
	WeatherForecast recommend.WeatherForecast `json:"weatherForecast" validate:"required,min=1"`
}

// RecommendationData is the data payload of POST /api/v1/recommendations.
type RecommendationData struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Warnings        []string                   `json:"warnings"`
}

// LegacyRecommendationResponse is the body of a successful
// POST /get_crop_recommendations call.
type LegacyRecommendationResponse struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// LegacyErrorResponse is the body of a failed POST /get_crop_recommendations call.
type LegacyErrorResponse struct {
	Error string `json:"error"`
}

// LegacyMissingInputMessage is returned when either request object is absent or empty.
const LegacyMissingInputMessage = "Missing farm inputs or weather forecast"

// CropInfo describes one candidate crop for GET /api/v1/crops.
type CropInfo struct {
	Name string `json:"name"`
	recommend.CropProfile
}

// CropsData is the data payload of GET /api/v1/crops.
type CropsData struct {
	Crops []CropInfo `json:"crops"`
}

// HealthStatus is the data payload of the health endpoints.
//
// Models maps each prediction (yield, pest) to
// whether it is currently model-backed. Engine carries the engine's
// request and fallback counters on the readiness probe.
type HealthStatus struct {
	Status  string             `json:"status"`
	Version string             `json:"version,omitempty"`
	Uptime  float64            `json:"uptime_seconds"`
	Backend string             `json:"model_backend,omitempty"`
	Breaker string             `json:"breaker_state,omitempty"`
	Models  map[string]bool    `json:"models,omitempty"`
	Engine  *recommend.Metrics `json:"engine,omitempty"`
}
