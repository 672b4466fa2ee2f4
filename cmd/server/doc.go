// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

/*
Package main is the entry point for the Harvestwise server.

Harvestwise ranks candidate crops for a farm from its soil readings and a
weather forecast, combining yield and pest-risk predictions with market
economics, and serves the result over HTTP.

Startup order:

 1. Configuration: Koanf v2 (defaults, config file, environment)
 2. Logging: zerolog in JSON or console format
 3. Model backend: local artifacts, remote inference server, or none
 4. Recommendation engine
 5. Chi router with CORS, rate limiting and Prometheus middleware
 6. Suture v4 supervisor tree running the HTTP server and model monitor

SIGINT and SIGTERM cancel the tree; in-flight requests drain for up to
HTTP_SHUTDOWN_TIMEOUT.

# Endpoints

	POST /get_crop_recommendations   bare JSON, compatible with existing clients
	POST /api/v1/recommendations     enveloped response
	GET  /api/v1/crops               reference crop profiles
	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /metrics

# Example

	export MODEL_BACKEND=local
	export MODEL_DIR=/var/lib/harvestwise/models
	./harvestwise

	curl -X POST localhost:5000/get_crop_recommendations \
	  -d '{"farmInputs":{"Soil_pH":6.5,"Soil_Moisture":30},"weatherForecast":{"Temperature_C":24,"Rainfall_mm":120}}'
*/
package main
