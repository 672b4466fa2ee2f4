// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

/*
Package services provides suture.Service wrappers for Harvestwise components.

HTTPServerService adapts *http.Server's blocking ListenAndServe to suture's
context-aware Serve, shutting down gracefully on cancellation.

ModelMonitorService polls the model backend on an interval, keeps the
model_loaded gauge current and logs availability changes, so a
remote circuit opening or closing shows up in logs and metrics between
requests.

Return behavior follows suture: nil or ctx.Err() on shutdown, an error to
request a restart.
*/
package services
