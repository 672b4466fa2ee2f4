// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

// Package validation provides struct validation using go-playground/validator v10.
//
// The package exposes a thread-safe singleton validator with error messages
// keyed by json field names, and converts failures to the API's
// VALIDATION_ERROR shape.
//
// # Usage
//
//	type RecommendationRequest struct {
//	    FarmInputs      map[string]any `json:"farmInputs" validate:"required,min=1"`
//	    WeatherForecast map[string]any `json:"weatherForecast" validate:"required,min=1"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Messages
//
//   - required: "farmInputs is required"
//   - min on maps: "farmInputs must have at least 1 entries"
//   - min on numbers: "top must be at least 1"
//
// Multiple failures are joined with "; " and listed under details.fields.
package validation
