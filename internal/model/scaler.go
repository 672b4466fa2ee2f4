// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package model

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// StandardScaler centers each column on its training mean and divides by
// its training standard deviation.
type StandardScaler struct {
	features []string
	mean     []float64
	scale    []float64
}

// NewStandardScaler creates a scaler. A zero scale entry is treated as 1,
// so constant training columns pass through centered but unscaled.
func NewStandardScaler(features []string, mean, scale []float64) (*StandardScaler, error) {
	if len(features) == 0 {
		return nil, errors.New("standard scaler: no features")
	}
	if len(mean) != len(features) || len(scale) != len(features) {
		return nil, fmt.Errorf("standard scaler: %d means and %d scales for %d features",
			len(mean), len(scale), len(features))
	}
	if !allFinite(mean) || !allFinite(scale) {
		return nil, errors.New("standard scaler: non-finite parameters")
	}

	safeScale := make([]float64, len(scale))
	for i, s := range scale {
		if s == 0 {
			s = 1
		}
		safeScale[i] = s
	}

	return &StandardScaler{
		features: append([]string(nil), features...),
		mean:     append([]float64(nil), mean...),
		scale:    safeScale,
	}, nil
}

// Features returns the column order the scaler expects.
func (s *StandardScaler) Features() []string {
	return append([]string(nil), s.features...)
}

// Transform implements recommend.Scaler.
func (s *StandardScaler) Transform(_ context.Context, row []float64) ([]float64, error) {
	if len(row) != len(s.mean) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFeatureCount, len(row), len(s.mean))
	}
	out := make([]float64, len(row))
	floats.SubTo(out, row, s.mean)
	floats.Div(out, s.scale)
	return out, nil
}
