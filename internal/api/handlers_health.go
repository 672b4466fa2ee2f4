// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/harvestwise/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK whenever the process can serve HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, r, http.StatusMethodNotAllowed, models.ErrCodeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: models.HealthStatus{
			Status:  "alive",
			Version: h.version,
			Uptime:  time.Since(h.startTime).Seconds(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
//
// The service is ready once an engine is wired. Predictors that are not
// model-backed do not make it unready because the engine falls back for
// them; the models map reports which ones are.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, r, http.StatusMethodNotAllowed, models.ErrCodeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	if h.engine == nil {
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeNotReady, "Recommendation engine not initialized", nil)
		return
	}

	status := models.HealthStatus{
		Status:  "ready",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}
	engineMetrics := h.engine.GetMetrics()
	status.Engine = &engineMetrics
	if h.models != nil {
		status.Backend = h.models.Backend()
		status.Breaker = h.models.BreakerState()
		status.Models = h.models.Status()
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   status,
	})
}
