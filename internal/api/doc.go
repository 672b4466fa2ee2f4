// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

/*
Package api provides the HTTP surface of Harvestwise using the Chi router.

# Endpoints

Recommendations:
  - POST /get_crop_recommendations: Unversioned endpoint with a bare body
  - POST /api/v1/recommendations: Same request, answered with the standard envelope

Reference data:
  - GET /api/v1/crops: Reference profile of every candidate crop

Health:
  - GET /api/v1/health/live: Liveness probe
  - GET /api/v1/health/ready: Readiness probe with per-model backing status

Observability:
  - GET /metrics: Prometheus exposition

# Request Body

	{
	  "farmInputs": {"Soil_pH": 6.5, "Soil_Moisture": 30, "Fertilizer_Usage_kg": 150},
	  "weatherForecast": {"Temperature_C": 25, "Rainfall_mm": 150}
	}

# Error Mapping

On /api/v1/recommendations:
  - Malformed JSON: 400 INVALID_JSON
  - Absent or empty farmInputs/weatherForecast: 400 VALIDATION_ERROR
  - Missing required field inside either object: 400 MISSING_FIELD
  - Non-numeric field value: 400 INVALID_FIELD

On /get_crop_recommendations every client error is 400 with {"error": "..."},
and absent or empty input objects produce "Missing farm inputs or weather forecast".

# Middleware Stack

Applied to all routes in order: request and correlation IDs, real IP,
access log, panic recovery, CORS. Data endpoints add IP rate limiting
and Prometheus instrumentation.
*/
package api
