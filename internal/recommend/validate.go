// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package recommend

import (
	"fmt"
)

var (
	requiredFarmFields    = []string{FieldSoilPH, FieldSoilMoisture}
	requiredWeatherFields = []string{FieldTemperature, FieldRainfall}
)

// Validate checks that both inputs carry their required keys.
// It returns advisory warnings for soil readings outside the expected ranges;
// warnings never block processing. A missing key or a non-numeric soil
// reading is returned as an *InputError.
func Validate(adv AdvisoryRanges, farm FarmInputs, weather WeatherForecast) ([]string, error) {
	if missing := missingFields(farm, requiredFarmFields); len(missing) > 0 {
		return nil, &InputError{Kind: InputMissing, Source: "farm", Fields: missing}
	}
	if missing := missingFields(weather, requiredWeatherFields); len(missing) > 0 {
		return nil, &InputError{Kind: InputMissing, Source: "weather", Fields: missing}
	}

	var warnings []string

	ph, err := coerceField(farm, FieldSoilPH)
	if err != nil {
		return nil, err
	}
	if !adv.SoilPH.Contains(ph) {
		warnings = append(warnings, fmt.Sprintf("Soil pH is outside normal range (%.1f-%.1f)",
			adv.SoilPH.Min, adv.SoilPH.Max))
	}

	moisture, err := coerceField(farm, FieldSoilMoisture)
	if err != nil {
		return nil, err
	}
	if !adv.SoilMoisture.Contains(moisture) {
		warnings = append(warnings, fmt.Sprintf("Soil moisture is outside normal range (%g-%g%%)",
			adv.SoilMoisture.Min, adv.SoilMoisture.Max))
	}

	return warnings, nil
}

func missingFields(m map[string]any, required []string) []string {
	var missing []string
	for _, field := range required {
		if _, ok := m[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}
