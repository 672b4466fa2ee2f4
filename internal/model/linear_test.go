// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package model

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestLinearRegressor_Predict(t *testing.T) {
	t.Parallel()

	m, err := NewLinearRegressor([]string{"a", "b", "c"}, []float64{2, -1, 0.5}, 10)
	if err != nil {
		t.Fatalf("NewLinearRegressor: %v", err)
	}

	got, err := m.Predict(context.Background(), []float64{1, 4, 2})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	// 2*1 - 1*4 + 0.5*2 + 10
	if got != 9 {
		t.Errorf("Predict = %v, want 9", got)
	}
}

func TestLinearRegressor_FeatureCount(t *testing.T) {
	t.Parallel()

	m, err := NewLinearRegressor([]string{"a", "b"}, []float64{1, 1}, 0)
	if err != nil {
		t.Fatalf("NewLinearRegressor: %v", err)
	}

	_, err = m.Predict(context.Background(), []float64{1})
	if !errors.Is(err, ErrFeatureCount) {
		t.Errorf("expected ErrFeatureCount, got %v", err)
	}
}

func TestNewLinearRegressor_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		features  []string
		coef      []float64
		intercept float64
	}{
		{"no features", nil, nil, 0},
		{"length mismatch", []string{"a", "b"}, []float64{1}, 0},
		{"NaN coefficient", []string{"a"}, []float64{math.NaN()}, 0},
		{"infinite intercept", []string{"a"}, []float64{1}, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewLinearRegressor(tt.features, tt.coef, tt.intercept); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLogisticClassifier_PredictProba(t *testing.T) {
	t.Parallel()

	m, err := NewLogisticClassifier([]string{"a", "b"}, []float64{1, -1}, 0)
	if err != nil {
		t.Fatalf("NewLogisticClassifier: %v", err)
	}

	tests := []struct {
		name string
		row  []float64
		want float64
	}{
		{"zero logit", []float64{3, 3}, 0.5},
		{"positive logit", []float64{2, 0}, 1 / (1 + math.Exp(-2))},
		{"large negative logit", []float64{-800, 0}, 0},
		{"large positive logit", []float64{800, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			proba, err := m.PredictProba(context.Background(), tt.row)
			if err != nil {
				t.Fatalf("PredictProba: %v", err)
			}
			if len(proba) != 2 {
				t.Fatalf("expected 2 probabilities, got %d", len(proba))
			}
			if math.Abs(proba[1]-tt.want) > 1e-12 {
				t.Errorf("P(1) = %v, want %v", proba[1], tt.want)
			}
			if math.Abs(proba[0]+proba[1]-1) > 1e-12 {
				t.Errorf("probabilities do not sum to 1: %v", proba)
			}
			if math.IsNaN(proba[1]) {
				t.Error("probability is NaN")
			}
		})
	}
}

func TestStandardScaler_Transform(t *testing.T) {
	t.Parallel()

	s, err := NewStandardScaler([]string{"a", "b", "c"}, []float64{10, 0, 5}, []float64{2, 0, 0.5})
	if err != nil {
		t.Fatalf("NewStandardScaler: %v", err)
	}

	row := []float64{14, 3, 4}
	got, err := s.Transform(context.Background(), row)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	want := []float64{2, 3, -2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d = %v, want %v", i, got[i], want[i])
		}
	}
	if row[0] != 14 {
		t.Error("Transform modified its input")
	}
}

func TestStandardScaler_FeatureCount(t *testing.T) {
	t.Parallel()

	s, err := NewStandardScaler([]string{"a"}, []float64{0}, []float64{1})
	if err != nil {
		t.Fatalf("NewStandardScaler: %v", err)
	}
	if _, err := s.Transform(context.Background(), []float64{1, 2}); !errors.Is(err, ErrFeatureCount) {
		t.Errorf("expected ErrFeatureCount, got %v", err)
	}
}
