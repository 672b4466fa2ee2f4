// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package recommend

import (
	"errors"
	"fmt"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// TopN is the number of ranked recommendations returned and explained.
	TopN int `json:"top_n"`

	// IncludeSources attaches the model/fallback origin of each value to the result.
	IncludeSources bool `json:"include_sources"`

	// Advisory holds the ranges outside which inputs produce warnings.
	Advisory AdvisoryRanges `json:"advisory"`

	// Tables is the static crop reference data.
	// Defaults to DefaultReferenceTables if nil.
	Tables *ReferenceTables `json:"tables,omitempty"`
}

// AdvisoryRanges are the expected ranges for soil readings.
// Values outside them are logged as warnings and never rejected.
type AdvisoryRanges struct {
	SoilPH       ValueRange `json:"soil_ph"`
	SoilMoisture ValueRange `json:"soil_moisture"`
}

// ValueRange is an inclusive numeric interval.
type ValueRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies within the range, bounds included.
func (r ValueRange) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// DefaultConfig returns the production configuration.
func DefaultConfig() *Config {
	return &Config{
		TopN:           3,
		IncludeSources: false,
		Advisory: AdvisoryRanges{
			SoilPH:       ValueRange{Min: 5.0, Max: 9.0},
			SoilMoisture: ValueRange{Min: 10.0, Max: 50.0},
		},
		Tables: DefaultReferenceTables(),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.TopN < 1 {
		return fmt.Errorf("top_n must be at least 1, got %d", c.TopN)
	}
	if c.Advisory.SoilPH.Min > c.Advisory.SoilPH.Max {
		return errors.New("advisory soil_ph min exceeds max")
	}
	if c.Advisory.SoilMoisture.Min > c.Advisory.SoilMoisture.Max {
		return errors.New("advisory soil_moisture min exceeds max")
	}
	if c.Tables != nil {
		if err := c.Tables.Validate(); err != nil {
			return err
		}
	}
	return nil
}
