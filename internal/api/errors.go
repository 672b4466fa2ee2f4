// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package api

import "errors"

// maxRequestBodyBytes caps recommendation request bodies.
const maxRequestBodyBytes = 1 << 20

// Common API errors
var (
	// ErrEmptyBody indicates the request had no body
	ErrEmptyBody = errors.New("request body is empty")
)
