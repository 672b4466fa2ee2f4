// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package recommend

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Pest risk thresholds for explanations.
const (
	lowPestRisk  = 0.3
	highPestRisk = 0.6
)

// Rank stably sorts recs by ROI descending and keeps the first n.
// Equal ROI values keep their candidate order.
func Rank(recs []Recommendation, n int) []Recommendation {
	ranked := make([]Recommendation, len(recs))
	copy(ranked, recs)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EstimatedROIPercentage > ranked[j].EstimatedROIPercentage
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Assess compares a recommendation against the crop's reference averages
// and returns its strengths and weaknesses.
//
//nolint:gocritic // hugeParam: profile passed by value, read-only
func Assess(profile CropProfile, rec *Recommendation, temperature float64) (strengths, weaknesses []string) {
	strengths = []string{}
	weaknesses = []string{}

	if rec.PredictedYield > profile.AvgYield {
		strengths = append(strengths, fmt.Sprintf("Above average yield potential (%.0f vs %s avg)",
			rec.PredictedYield, formatReference(profile.AvgYield)))
	} else {
		weaknesses = append(weaknesses, fmt.Sprintf("Below average yield potential (%.0f vs %s avg)",
			rec.PredictedYield, formatReference(profile.AvgYield)))
	}

	if rec.PredictedPrice > profile.AvgPrice {
		strengths = append(strengths, fmt.Sprintf("Favorable market price ($%.2f vs $%s avg)",
			rec.PredictedPrice, formatReference(profile.AvgPrice)))
	} else {
		weaknesses = append(weaknesses, fmt.Sprintf("Lower than average market price ($%.2f vs $%s avg)",
			rec.PredictedPrice, formatReference(profile.AvgPrice)))
	}

	if rec.EstimatedROIPercentage > profile.AvgROI {
		strengths = append(strengths, fmt.Sprintf("Strong ROI (%.1f%%)", rec.EstimatedROIPercentage))
	} else {
		weaknesses = append(weaknesses, fmt.Sprintf("Moderate ROI (%.1f%%)", rec.EstimatedROIPercentage))
	}

	risk := rec.PestRiskScore * 100
	switch {
	case rec.PestRiskScore < lowPestRisk:
		strengths = append(strengths, fmt.Sprintf("Low pest risk (%.1f%%)", risk))
	case rec.PestRiskScore > highPestRisk:
		weaknesses = append(weaknesses, fmt.Sprintf("High pest risk (%.1f%%)", risk))
	default:
		strengths = append(strengths, fmt.Sprintf("Moderate pest risk (%.1f%%)", risk))
	}

	if profile.OptimalTemp.Contains(temperature) {
		strengths = append(strengths, fmt.Sprintf("Optimal temperature range for %s", rec.Crop))
	} else {
		weaknesses = append(weaknesses, fmt.Sprintf("Suboptimal temperature for %s", rec.Crop))
	}

	return strengths, weaknesses
}

// ComposeExplanation builds the summary sentence shown to the user.
// The caveat clause is omitted when there are no weaknesses.
func ComposeExplanation(crop Crop, strengths, weaknesses []string) string {
	var b strings.Builder
	b.WriteString(crop.String())
	b.WriteString(" is recommended primarily due to ")

	if len(strengths) > 0 {
		second := ""
		if len(strengths) > 1 {
			second = strings.ToLower(strengths[1])
		}
		b.WriteString("its ")
		b.WriteString(strings.ToLower(strengths[0]))
		b.WriteString(" and ")
		b.WriteString(second)
		b.WriteString(". ")
	} else {
		b.WriteString("balanced performance. ")
	}

	if len(weaknesses) > 0 {
		b.WriteString("However, consider that ")
		b.WriteString(strings.ToLower(weaknesses[0]))
	}

	return b.String()
}

// formatReference prints a reference average without a trailing fraction
// when it is whole (3000, not 3000.00).
func formatReference(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
