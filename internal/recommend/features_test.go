// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package recommend

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
)

func TestToFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
	}{
		{"float64", 6.5, 6.5, false},
		{"float32", float32(2.5), 2.5, false},
		{"int", 30, 30, false},
		{"int64", int64(-4), -4, false},
		{"uint8", uint8(7), 7, false},
		{"json.Number", json.Number("150.25"), 150.25, false},
		{"numeric string", "6.5", 6.5, false},
		{"padded string", "  42 ", 42, false},
		{"scientific string", "1e3", 1000, false},
		{"word", "wet", 0, true},
		{"empty string", "", 0, true},
		{"nil", nil, 0, true},
		{"bool", true, 0, true},
		{"map", map[string]any{"v": 1}, 0, true},
		{"bad json.Number", json.Number("x"), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ToFloat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrNotNumeric) {
					t.Errorf("expected ErrNotNumeric, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToFloat(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildFeatures(t *testing.T) {
	t.Parallel()

	tables := DefaultReferenceTables()
	merged := mergeInputs(
		FarmInputs{FieldSoilPH: 6.5, FieldSoilMoisture: 30, FieldFertilizer: 90},
		WeatherForecast{FieldTemperature: 22, FieldRainfall: 120},
	)

	f, err := BuildFeatures(tables, CropRice, merged)
	if err != nil {
		t.Fatalf("BuildFeatures: %v", err)
	}

	wantYield := []float64{6.5, 30, 22, 120, 90, 10, 1}
	if len(f.Yield) != len(YieldColumns) {
		t.Fatalf("yield row has %d columns, want %d", len(f.Yield), len(YieldColumns))
	}
	for i := range wantYield {
		if f.Yield[i] != wantYield[i] {
			t.Errorf("yield %s = %v, want %v", YieldColumns[i], f.Yield[i], wantYield[i])
		}
	}

	wantPest := []float64{22, 120, 1, 30}
	for i := range wantPest {
		if f.Pest[i] != wantPest[i] {
			t.Errorf("pest %s = %v, want %v", PestColumns[i], f.Pest[i], wantPest[i])
		}
	}

	if f.Temperature != 22 || f.Rainfall != 120 {
		t.Errorf("Temperature/Rainfall = %v/%v, want 22/120", f.Temperature, f.Rainfall)
	}
}

func TestBuildFeatures_SharedEncoding(t *testing.T) {
	t.Parallel()

	tables := DefaultReferenceTables()
	merged := mergeInputs(testFarm(), testWeather())

	for _, crop := range tables.Candidates {
		f, err := BuildFeatures(tables, crop, merged)
		if err != nil {
			t.Fatalf("%s: %v", crop, err)
		}
		yieldEnc := f.Yield[len(f.Yield)-1]
		pestEnc := f.Pest[2]
		if yieldEnc != pestEnc {
			t.Errorf("%s: yield encoding %v differs from pest encoding %v", crop, yieldEnc, pestEnc)
		}
	}
}

func TestMergeInputs_DoesNotMutate(t *testing.T) {
	t.Parallel()

	farm := FarmInputs{FieldSoilPH: 6.5, FieldTemperature: 10}
	weather := WeatherForecast{FieldTemperature: 25}

	merged := mergeInputs(farm, weather)
	if merged[FieldTemperature] != 25 {
		t.Errorf("merged temperature = %v, want 25", merged[FieldTemperature])
	}
	if farm[FieldTemperature] != 10 {
		t.Error("mergeInputs modified farm inputs")
	}
}
