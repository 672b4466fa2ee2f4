// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package recommend

import (
	"context"
)

// Input field names shared by farm inputs, weather forecasts and feature rows.
const (
	FieldSoilPH       = "Soil_pH"
	FieldSoilMoisture = "Soil_Moisture"
	FieldTemperature  = "Temperature_C"
	FieldRainfall     = "Rainfall_mm"
	FieldFertilizer   = "Fertilizer_Usage_kg"
	FieldPesticide    = "Pesticide_Usage_kg"
	FieldCropEncoded  = "Crop_Type_Encoded"
)

// Crop identifies a candidate crop.
type Crop string

const (
	// CropWheat is wheat.
	CropWheat Crop = "Wheat"
	// CropSoybean is soybean.
	CropSoybean Crop = "Soybean"
	// CropCorn is corn (maize).
	CropCorn Crop = "Corn"
	// CropRice is rice.
	CropRice Crop = "Rice"
)

// String returns the crop name.
func (c Crop) String() string {
	return string(c)
}

// FarmInputs holds the soil readings for one farm.
// Values are loosely typed as decoded from JSON and coerced to float64 per call.
type FarmInputs map[string]any

// WeatherForecast holds the forecast for the growing season.
type WeatherForecast map[string]any

// Recommendation is the evaluation of one crop.
// Field names match the payload consumed by the dashboard UI.
type Recommendation struct {
	// Crop is the evaluated crop.
	Crop Crop `json:"Crop"`

	// PredictedYield is the expected yield in tons.
	PredictedYield float64 `json:"Predicted_Yield"`

	// PredictedPrice is the expected market price per ton.
	PredictedPrice float64 `json:"Predicted_Price"`

	// EstimatedProfit is revenue minus total cost.
	EstimatedProfit float64 `json:"Estimated_Profit"`

	// EstimatedROIPercentage is profit over total cost, times 100.
	EstimatedROIPercentage float64 `json:"Estimated_ROI_Percentage"`

	// PestRiskScore is the probability (0-1) of pest infestation.
	PestRiskScore float64 `json:"Pest_Risk_Score"`

	// Strengths lists favorable factors. Set only for ranked results.
	Strengths []string `json:"Strengths"`

	// Weaknesses lists unfavorable factors. Set only for ranked results.
	Weaknesses []string `json:"Weaknesses"`

	// Explanation is the composed natural-language summary.
	Explanation string `json:"Explanation"`

	// Sources records where the predicted values came from.
	Sources *PredictionSources `json:"Sources,omitempty"`
}

// PredictionSources records whether each model-backed value was predicted or substituted.
type PredictionSources struct {
	Yield Source `json:"yield"`
	Pest  Source `json:"pest"`
}

// Source classifies the origin of a predicted value.
type Source string

const (
	// SourceModel means the predictor produced the value.
	SourceModel Source = "model"
	// SourceFallback means the static fallback table produced the value.
	SourceFallback Source = "fallback"
)

// Regressor predicts a single value from an ordered feature row.
type Regressor interface {
	Predict(ctx context.Context, features []float64) (float64, error)
}

// Scaler transforms a raw feature row into the scale a Classifier was trained on.
type Scaler interface {
	Transform(ctx context.Context, features []float64) ([]float64, error)
}

// Classifier returns per-class probabilities for a scaled feature row.
// Index 1 is the positive class.
type Classifier interface {
	PredictProba(ctx context.Context, features []float64) ([]float64, error)
}

// Predictors bundles the capabilities the engine consults.
// Nil members are replaced by Unavailable.
type Predictors struct {
	Yield  Regressor
	Scaler Scaler
	Pest   Classifier
}

// Metrics contains engine counters for diagnostics.
type Metrics struct {
	// Requests is the number of Recommend calls.
	Requests int64 `json:"requests"`

	// InputErrors is the number of calls rejected for missing or non-numeric fields.
	InputErrors int64 `json:"input_errors"`

	// InternalErrors is the number of calls that failed after validation.
	InternalErrors int64 `json:"internal_errors"`

	// YieldFallbacks is the number of per-crop yield predictions served from the fallback table.
	YieldFallbacks int64 `json:"yield_fallbacks"`

	// PestFallbacks is the number of per-crop pest predictions served from the fallback table.
	PestFallbacks int64 `json:"pest_fallbacks"`
}
