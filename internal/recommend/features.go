// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package recommend

import (
	"fmt"
	"strconv"
	"strings"
)

// YieldColumns is the column order the yield regressor was trained on.
var YieldColumns = []string{
	FieldSoilPH,
	FieldSoilMoisture,
	FieldTemperature,
	FieldRainfall,
	FieldFertilizer,
	FieldPesticide,
	FieldCropEncoded,
}

// PestColumns is the column order the pest scaler and classifier were trained on.
var PestColumns = []string{
	FieldTemperature,
	FieldRainfall,
	FieldCropEncoded,
	FieldSoilMoisture,
}

// Features holds the model inputs for one crop.
type Features struct {
	Crop Crop

	// Yield follows YieldColumns.
	Yield []float64

	// Pest follows PestColumns.
	Pest []float64

	// Temperature and Rainfall are kept for the price estimator and explanations.
	Temperature float64
	Rainfall    float64
}

// mergeInputs overlays the weather forecast on a copy of the farm inputs.
func mergeInputs(farm FarmInputs, weather WeatherForecast) map[string]any {
	merged := make(map[string]any, len(farm)+len(weather))
	for k, v := range farm {
		merged[k] = v
	}
	for k, v := range weather {
		merged[k] = v
	}
	return merged
}

// BuildFeatures produces the yield and pest rows for crop.
// Fertilizer and pesticide rates come from the merged inputs when present,
// else from the crop's standard rates.
func BuildFeatures(tables *ReferenceTables, crop Crop, merged map[string]any) (Features, error) {
	profile := tables.Profile(crop)

	values := make(map[string]float64, len(YieldColumns))
	for _, field := range []string{FieldSoilPH, FieldSoilMoisture, FieldTemperature, FieldRainfall} {
		v, err := coerceField(merged, field)
		if err != nil {
			return Features{}, err
		}
		values[field] = v
	}

	fertilizer, err := coerceOptional(merged, FieldFertilizer, profile.FertilizerKg)
	if err != nil {
		return Features{}, err
	}
	pesticide, err := coerceOptional(merged, FieldPesticide, profile.PesticideKg)
	if err != nil {
		return Features{}, err
	}
	values[FieldFertilizer] = fertilizer
	values[FieldPesticide] = pesticide
	values[FieldCropEncoded] = tables.Encoding(crop)

	return Features{
		Crop:        crop,
		Yield:       row(values, YieldColumns),
		Pest:        row(values, PestColumns),
		Temperature: values[FieldTemperature],
		Rainfall:    values[FieldRainfall],
	}, nil
}

func row(values map[string]float64, columns []string) []float64 {
	out := make([]float64, len(columns))
	for i, col := range columns {
		out[i] = values[col]
	}
	return out
}

// coerceField converts a required field. Absent keys are treated as invalid here;
// presence is checked earlier by Validate.
func coerceField(m map[string]any, field string) (float64, error) {
	v, ok := m[field]
	if !ok {
		return 0, &InputError{Kind: InputInvalid, Fields: []string{field}, Err: fmt.Errorf("%w: absent", ErrNotNumeric)}
	}
	f, err := ToFloat(v)
	if err != nil {
		return 0, &InputError{Kind: InputInvalid, Fields: []string{field}, Err: err}
	}
	return f, nil
}

func coerceOptional(m map[string]any, field string, def float64) (float64, error) {
	if _, ok := m[field]; !ok {
		return def, nil
	}
	return coerceField(m, field)
}

// ToFloat coerces a decoded JSON value to float64.
// Numbers, json.Number and numeric strings are accepted.
func ToFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrNotNumeric, err)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, n)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("%w: null", ErrNotNumeric)
	default:
		return 0, fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
}
