// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

/*
Package middleware provides HTTP middleware components for the application.

All middleware uses the chi signature func(http.Handler) http.Handler.

Key Components:

  - RequestID: Request and correlation IDs for log tracing
  - AccessLog: One structured log line per request
  - PrometheusMetrics: HTTP request/response instrumentation keyed by route pattern

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)          // tracing IDs first
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)

CORS and rate limiting come from go-chi/cors and go-chi/httprate and are
assembled in internal/api.
*/
package middleware
