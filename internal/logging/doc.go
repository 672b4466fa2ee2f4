// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

// Package logging provides the process-wide zerolog logger for Harvestwise.
//
// The package exposes a global logger configured once at startup, context
// helpers that carry request and correlation IDs from the HTTP layer into the
// recommendation engine, and an slog.Handler bridge for libraries that only
// speak log/slog (the suture supervisor via sutureslog).
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("addr", addr).Msg("server listening")
//	logging.Ctx(ctx).Warn().Err(err).Msg("prediction failed")
//
// # Configuration
//
// Level and Format come from the logging section of the service configuration
// (LOG_LEVEL and LOG_FORMAT in the environment). JSON is the default format;
// console output is meant for local development.
//
// # Request Tracing
//
// The HTTP middleware stores a request ID (full UUID) and a correlation ID
// (8 characters) in the request context. Ctx and CtxWith attach both to every
// event logged for that request.
package logging
