// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package recommend

import (
	"errors"
	"fmt"
)

// UnknownCropEncoding is the encoded id used for crops missing from the encoding table.
const UnknownCropEncoding = -1.0

// TemperatureRange is an inclusive temperature interval in degrees Celsius.
type TemperatureRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether t lies within the range, bounds included.
func (r TemperatureRange) Contains(t float64) bool {
	return r.Min <= t && t <= r.Max
}

// CropProfile is the static reference data for one crop.
type CropProfile struct {
	// FertilizerKg is the standard fertilizer rate when the farm gives none.
	FertilizerKg float64 `json:"fertilizer_kg"`

	// PesticideKg is the standard pesticide rate when the farm gives none.
	PesticideKg float64 `json:"pesticide_kg"`

	// CostPerTon is the estimated production cost per ton of yield.
	CostPerTon float64 `json:"cost_per_ton"`

	// BasePrice is the market price per ton before weather and yield factors.
	BasePrice float64 `json:"base_price"`

	// AvgYield, AvgPrice and AvgROI are the reference averages used by explanations.
	AvgYield float64 `json:"avg_yield"`
	AvgPrice float64 `json:"avg_price"`
	AvgROI   float64 `json:"avg_roi"`

	// OptimalTemp is the temperature range the crop grows best in.
	OptimalTemp TemperatureRange `json:"optimal_temp"`

	// Encoding is the Crop_Type_Encoded value the models were trained with.
	Encoding float64 `json:"encoding"`

	// FallbackYield replaces a failed yield prediction.
	FallbackYield float64 `json:"fallback_yield"`

	// FallbackPestRisk replaces a failed pest prediction.
	FallbackPestRisk float64 `json:"fallback_pest_risk"`
}

// ReferenceTables holds all static crop data.
// Treat a ReferenceTables value as immutable once handed to an engine.
type ReferenceTables struct {
	// Candidates lists the crops evaluated on every call, in tie-break order.
	Candidates []Crop `json:"candidates"`

	// Profiles maps each crop to its reference data.
	Profiles map[Crop]CropProfile `json:"profiles"`

	// Default is returned for crops that have no profile.
	Default CropProfile `json:"default"`
}

// DefaultReferenceTables returns the reference data the production models were fitted with.
func DefaultReferenceTables() *ReferenceTables {
	return &ReferenceTables{
		Candidates: []Crop{CropWheat, CropSoybean, CropCorn, CropRice},
		Profiles: map[Crop]CropProfile{
			CropWheat: {
				FertilizerKg: 150, PesticideKg: 12,
				CostPerTon: 150, BasePrice: 300,
				AvgYield: 3000, AvgPrice: 280, AvgROI: 90,
				OptimalTemp:   TemperatureRange{Min: 15, Max: 24},
				Encoding:      3.0,
				FallbackYield: 3735, FallbackPestRisk: 0.18,
			},
			CropSoybean: {
				FertilizerKg: 100, PesticideKg: 8,
				CostPerTon: 180, BasePrice: 350,
				AvgYield: 2800, AvgPrice: 320, AvgROI: 95,
				OptimalTemp:   TemperatureRange{Min: 20, Max: 30},
				Encoding:      2.0,
				FallbackYield: 3422, FallbackPestRisk: 0.18,
			},
			CropCorn: {
				FertilizerKg: 180, PesticideKg: 15,
				CostPerTon: 120, BasePrice: 250,
				AvgYield: 3500, AvgPrice: 240, AvgROI: 100,
				OptimalTemp:   TemperatureRange{Min: 18, Max: 32},
				Encoding:      0.0,
				FallbackYield: 3755, FallbackPestRisk: 0.12,
			},
			CropRice: {
				FertilizerKg: 200, PesticideKg: 10,
				CostPerTon: 200, BasePrice: 400,
				AvgYield: 3200, AvgPrice: 380, AvgROI: 85,
				OptimalTemp:   TemperatureRange{Min: 24, Max: 34},
				Encoding:      1.0,
				FallbackYield: 3744, FallbackPestRisk: 0.18,
			},
		},
		Default: CropProfile{
			FertilizerKg: 120, PesticideKg: 10,
			CostPerTon: 160, BasePrice: 325,
			AvgYield: 3000, AvgPrice: 300, AvgROI: 90,
			OptimalTemp:   TemperatureRange{Min: 15, Max: 30},
			Encoding:      UnknownCropEncoding,
			FallbackYield: 3500, FallbackPestRisk: 0.5,
		},
	}
}

// Profile returns the reference data for crop, or the default profile.
func (t *ReferenceTables) Profile(crop Crop) CropProfile {
	if p, ok := t.Profiles[crop]; ok {
		return p
	}
	return t.Default
}

// Encoding returns the shared Crop_Type_Encoded value for crop.
// Both the yield and pest rows use this value.
func (t *ReferenceTables) Encoding(crop Crop) float64 {
	if p, ok := t.Profiles[crop]; ok {
		return p.Encoding
	}
	return UnknownCropEncoding
}

// Validate checks the tables for values the pipeline cannot work with.
func (t *ReferenceTables) Validate() error {
	if len(t.Candidates) == 0 {
		return errors.New("reference tables: no candidate crops")
	}

	seen := make(map[Crop]struct{}, len(t.Candidates))
	for _, crop := range t.Candidates {
		if _, dup := seen[crop]; dup {
			return fmt.Errorf("reference tables: duplicate candidate %q", crop)
		}
		seen[crop] = struct{}{}

		p := t.Profile(crop)
		if p.OptimalTemp.Min > p.OptimalTemp.Max {
			return fmt.Errorf("reference tables: %s optimal temperature min %.1f > max %.1f",
				crop, p.OptimalTemp.Min, p.OptimalTemp.Max)
		}
		if p.FallbackPestRisk < 0 || p.FallbackPestRisk > 1 {
			return fmt.Errorf("reference tables: %s fallback pest risk %.2f outside [0, 1]", crop, p.FallbackPestRisk)
		}
	}

	return nil
}
