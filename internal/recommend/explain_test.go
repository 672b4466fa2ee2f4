// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package recommend

import (
	"strings"
	"testing"
)

func TestRank(t *testing.T) {
	t.Parallel()

	recs := []Recommendation{
		{Crop: CropWheat, EstimatedROIPercentage: 50},
		{Crop: CropSoybean, EstimatedROIPercentage: 80},
		{Crop: CropCorn, EstimatedROIPercentage: 50},
		{Crop: CropRice, EstimatedROIPercentage: 80},
	}

	ranked := Rank(recs, 3)

	want := []Crop{CropSoybean, CropRice, CropWheat}
	if len(ranked) != len(want) {
		t.Fatalf("got %d results, want %d", len(ranked), len(want))
	}
	for i := range want {
		if ranked[i].Crop != want[i] {
			t.Errorf("rank %d = %s, want %s (ties keep input order)", i+1, ranked[i].Crop, want[i])
		}
	}

	if recs[0].Crop != CropWheat {
		t.Error("Rank modified its input")
	}
}

func TestRank_Bounds(t *testing.T) {
	t.Parallel()

	recs := []Recommendation{{Crop: CropWheat}, {Crop: CropCorn}}

	if got := Rank(recs, 5); len(got) != 2 {
		t.Errorf("n > len: got %d, want 2", len(got))
	}
	if got := Rank(recs, 0); len(got) != 0 {
		t.Errorf("n = 0: got %d, want 0", len(got))
	}
	if got := Rank(nil, 3); got == nil || len(got) != 0 {
		t.Errorf("nil input: got %v, want empty slice", got)
	}
}

func TestAssess(t *testing.T) {
	t.Parallel()

	profile := DefaultReferenceTables().Profile(CropSoybean)

	tests := []struct {
		name           string
		rec            Recommendation
		temperature    float64
		wantStrengths  []string
		wantWeaknesses []string
	}{
		{
			name: "all favorable",
			rec: Recommendation{
				Crop: CropSoybean, PredictedYield: 3422, PredictedPrice: 364.77,
				EstimatedROIPercentage: 102.65, PestRiskScore: 0.18,
			},
			temperature: 25,
			wantStrengths: []string{
				"Above average yield potential (3422 vs 2800 avg)",
				"Favorable market price ($364.77 vs $320 avg)",
				"Strong ROI (102.7%)",
				"Low pest risk (18.0%)",
				"Optimal temperature range for Soybean",
			},
			wantWeaknesses: []string{},
		},
		{
			name: "all unfavorable",
			rec: Recommendation{
				Crop: CropSoybean, PredictedYield: 2800, PredictedPrice: 300,
				EstimatedROIPercentage: 40, PestRiskScore: 0.75,
			},
			temperature:   35,
			wantStrengths: []string{},
			wantWeaknesses: []string{
				"Below average yield potential (2800 vs 2800 avg)",
				"Lower than average market price ($300.00 vs $320 avg)",
				"Moderate ROI (40.0%)",
				"High pest risk (75.0%)",
				"Suboptimal temperature for Soybean",
			},
		},
		{
			name: "moderate pest risk is a strength",
			rec: Recommendation{
				Crop: CropSoybean, PredictedYield: 2000, PredictedPrice: 100,
				EstimatedROIPercentage: 0, PestRiskScore: 0.45,
			},
			temperature:   20,
			wantStrengths: []string{"Moderate pest risk (45.0%)", "Optimal temperature range for Soybean"},
			wantWeaknesses: []string{
				"Below average yield potential (2000 vs 2800 avg)",
				"Lower than average market price ($100.00 vs $320 avg)",
				"Moderate ROI (0.0%)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := tt.rec
			strengths, weaknesses := Assess(profile, &rec, tt.temperature)

			if strings.Join(strengths, "|") != strings.Join(tt.wantStrengths, "|") {
				t.Errorf("strengths:\n got  %v\n want %v", strengths, tt.wantStrengths)
			}
			if strings.Join(weaknesses, "|") != strings.Join(tt.wantWeaknesses, "|") {
				t.Errorf("weaknesses:\n got  %v\n want %v", weaknesses, tt.wantWeaknesses)
			}
			if strengths == nil || weaknesses == nil {
				t.Error("expected non-nil slices")
			}
		})
	}
}

func TestComposeExplanation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		strengths  []string
		weaknesses []string
		want       string
	}{
		{
			name:       "strengths and weaknesses",
			strengths:  []string{"Above average yield potential (3735 vs 3000 avg)", "Favorable market price ($322.05 vs $280 avg)"},
			weaknesses: []string{"Suboptimal temperature for Wheat"},
			want: "Wheat is recommended primarily due to its above average yield potential (3735 vs 3000 avg) and " +
				"favorable market price ($322.05 vs $280 avg). However, consider that suboptimal temperature for wheat",
		},
		{
			name:       "no weaknesses",
			strengths:  []string{"Strong ROI (120.0%)", "Low pest risk (12.0%)"},
			weaknesses: []string{},
			want:       "Wheat is recommended primarily due to its strong roi (120.0%) and low pest risk (12.0%). ",
		},
		{
			name:       "single strength",
			strengths:  []string{"Low pest risk (12.0%)"},
			weaknesses: []string{"Moderate ROI (10.0%)"},
			want:       "Wheat is recommended primarily due to its low pest risk (12.0%) and . However, consider that moderate roi (10.0%)",
		},
		{
			name:       "no strengths",
			strengths:  []string{},
			weaknesses: []string{"High pest risk (90.0%)"},
			want:       "Wheat is recommended primarily due to balanced performance. However, consider that high pest risk (90.0%)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ComposeExplanation(CropWheat, tt.strengths, tt.weaknesses); got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}
