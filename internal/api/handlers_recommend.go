// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/harvestwise/internal/logging"
	"github.com/tomtom215/harvestwise/internal/models"
	"github.com/tomtom215/harvestwise/internal/recommend"
	"github.com/tomtom215/harvestwise/internal/validation"
)

// Recommendations handles POST /api/v1/recommendations.
// Returns the ranked crops and any advisory warnings in the standard envelope.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, r, http.StatusMethodNotAllowed, models.ErrCodeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	req, err := decodeRecommendationRequest(r)
	if err != nil {
		if isBodyTooLarge(err) {
			respondError(w, r, http.StatusRequestEntityTooLarge, models.ErrCodeInvalidJSON, "Request body too large", nil)
			return
		}
		respondError(w, r, http.StatusBadRequest, models.ErrCodeInvalidJSON, "Request body must be a JSON object", nil)
		return
	}

	if verr := validation.ValidateStruct(req); verr != nil {
		apiErr := verr.ToAPIError()
		respondErrorDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	res, err := h.engine.Generate(r.Context(), req.FarmInputs, req.WeatherForecast)
	if err != nil {
		var inputErr *recommend.InputError
		if errors.As(err, &inputErr) {
			respondInputError(w, r, inputErr)
			return
		}
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeInternal, "Failed to generate recommendations", err)
		return
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: models.RecommendationData{
			Recommendations: res.Recommendations,
			Warnings:        res.Warnings,
		},
		Metadata: models.Metadata{
			QueryTimeMS: res.LatencyMS,
		},
	})
}

// respondInputError maps an engine input error onto MISSING_FIELD or INVALID_FIELD.
func respondInputError(w http.ResponseWriter, r *http.Request, inputErr *recommend.InputError) {
	code := models.ErrCodeMissingField
	if inputErr.Kind == recommend.InputInvalid {
		code = models.ErrCodeInvalidField
	}

	details := map[string]interface{}{
		"fields": inputErr.Fields,
	}
	if inputErr.Source != "" {
		details["source"] = inputErr.Source
	}

	respondErrorDetails(w, r, http.StatusBadRequest, code, inputErr.Error(), details, nil)
}

// LegacyRecommendations handles POST /get_crop_recommendations.
//
// The body shape matches /api/v1/recommendations but responses are bare:
// {"recommendations": [...]} on success and {"error": "..."} otherwise.
func (h *Handler) LegacyRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, r, http.StatusMethodNotAllowed, models.LegacyErrorResponse{Error: "Method not allowed"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	req, err := decodeRecommendationRequest(r)
	if err != nil {
		if errors.Is(err, ErrEmptyBody) {
			writeJSON(w, r, http.StatusBadRequest, models.LegacyErrorResponse{Error: models.LegacyMissingInputMessage})
			return
		}
		if isBodyTooLarge(err) {
			writeJSON(w, r, http.StatusRequestEntityTooLarge, models.LegacyErrorResponse{Error: "Request body too large"})
			return
		}
		writeJSON(w, r, http.StatusBadRequest, models.LegacyErrorResponse{Error: err.Error()})
		return
	}

	if verr := validation.ValidateStruct(req); verr != nil {
		writeJSON(w, r, http.StatusBadRequest, models.LegacyErrorResponse{Error: models.LegacyMissingInputMessage})
		return
	}

	logging.Ctx(r.Context()).Debug().
		Int("farm_fields", len(req.FarmInputs)).
		Int("weather_fields", len(req.WeatherForecast)).
		Msg("legacy recommendation request received")

	res, err := h.engine.Generate(r.Context(), req.FarmInputs, req.WeatherForecast)
	if err != nil {
		var inputErr *recommend.InputError
		if errors.As(err, &inputErr) {
			writeJSON(w, r, http.StatusBadRequest, models.LegacyErrorResponse{Error: inputErr.Error()})
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("Error processing request")
		writeJSON(w, r, http.StatusInternalServerError, models.LegacyErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, r, http.StatusOK, models.LegacyRecommendationResponse{Recommendations: res.Recommendations})
}
