// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

/*
Package models defines the HTTP request and response shapes for Harvestwise.

Key Components:

  - APIResponse: Standard envelope for the /api/v1 endpoints
  - APIError: Structured error with a machine-readable code
  - RecommendationRequest: Body shared by both recommendation endpoints
  - LegacyRecommendationResponse: Bare body of the unversioned endpoint
  - CropsData, HealthStatus: Payloads of the informational endpoints

Domain types (Recommendation, CropProfile) live in internal/recommend and are
embedded here rather than copied.
*/
package models
