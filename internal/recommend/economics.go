// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package recommend

// Baselines at which every price factor equals 1.0.
const (
	baselineTemperature = 25.0
	baselineRainfall    = 150.0
	baselineYield       = 3000.0

	temperatureSensitivity = 0.01   // +/- 1% per degree
	rainfallSensitivity    = 0.0005 // +/- 0.05% per mm
	yieldSensitivity       = 0.0001 // +/- 0.01% per ton
)

// EstimatePrice scales a crop's base price by weather and yield factors.
func EstimatePrice(basePrice, temperature, rainfall, predictedYield float64) float64 {
	tempFactor := 1.0 + (temperature-baselineTemperature)*temperatureSensitivity
	rainFactor := 1.0 + (rainfall-baselineRainfall)*rainfallSensitivity
	yieldFactor := 1.0 + (predictedYield-baselineYield)*yieldSensitivity
	return basePrice * tempFactor * rainFactor * yieldFactor
}

// Economics is the cost and return breakdown for one crop.
type Economics struct {
	TotalCost     float64
	Revenue       float64
	Profit        float64
	ROIPercentage float64
}

// ComputeEconomics derives cost, revenue, profit and ROI from yield and price.
// ROI is 0 when the total cost is not positive.
func ComputeEconomics(predictedYield, predictedPrice, costPerTon float64) Economics {
	totalCost := costPerTon * predictedYield
	revenue := predictedYield * predictedPrice
	profit := revenue - totalCost

	roi := 0.0
	if totalCost > 0 {
		roi = profit / totalCost * 100
	}

	return Economics{
		TotalCost:     totalCost,
		Revenue:       revenue,
		Profit:        profit,
		ROIPercentage: roi,
	}
}
