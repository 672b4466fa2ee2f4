// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package api

import (
	"context"
	"time"

	"github.com/tomtom215/harvestwise/internal/recommend"
)

// Recommender is the part of recommend.Engine the handlers use.
type Recommender interface {
	Generate(ctx context.Context, farm recommend.FarmInputs, weather recommend.WeatherForecast) (*recommend.Result, error)
	Tables() *recommend.ReferenceTables
	GetMetrics() recommend.Metrics
}

// ModelStatus reports on the prediction backend. model.Set implements it.
type ModelStatus interface {
	Backend() string
	Status() map[string]bool
	BreakerState() string
}

// Handler serves the recommendation, reference data and health endpoints.
type Handler struct {
	engine    Recommender
	models    ModelStatus
	version   string
	startTime time.Time
}

// NewHandler creates a new API handler.
// models may be nil, in which case readiness omits backend details.
func NewHandler(engine Recommender, models ModelStatus, version string) *Handler {
	return &Handler{
		engine:    engine,
		models:    models,
		version:   version,
		startTime: time.Now(),
	}
}
