// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package model

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrFeatureCount is returned when a row does not match the model's width.
var ErrFeatureCount = errors.New("feature count mismatch")

// LinearRegressor is an ordinary least squares model: y = w·x + b.
type LinearRegressor struct {
	features     []string
	coefficients []float64
	intercept    float64
}

// NewLinearRegressor creates a regressor over the named features.
func NewLinearRegressor(features []string, coefficients []float64, intercept float64) (*LinearRegressor, error) {
	if len(features) == 0 {
		return nil, errors.New("linear regressor: no features")
	}
	if len(coefficients) != len(features) {
		return nil, fmt.Errorf("linear regressor: %d coefficients for %d features", len(coefficients), len(features))
	}
	if !allFinite(coefficients) || !isFinite(intercept) {
		return nil, errors.New("linear regressor: non-finite parameters")
	}

	return &LinearRegressor{
		features:     append([]string(nil), features...),
		coefficients: append([]float64(nil), coefficients...),
		intercept:    intercept,
	}, nil
}

// Features returns the column order the model expects.
func (m *LinearRegressor) Features() []string {
	return append([]string(nil), m.features...)
}

// Predict implements recommend.Regressor.
func (m *LinearRegressor) Predict(_ context.Context, row []float64) (float64, error) {
	if len(row) != len(m.coefficients) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrFeatureCount, len(row), len(m.coefficients))
	}
	return floats.Dot(m.coefficients, row) + m.intercept, nil
}

// LogisticClassifier is a binary logistic regression model.
// PredictProba returns [P(class 0), P(class 1)].
type LogisticClassifier struct {
	features     []string
	coefficients []float64
	intercept    float64
}

// NewLogisticClassifier creates a classifier over the named features.
func NewLogisticClassifier(features []string, coefficients []float64, intercept float64) (*LogisticClassifier, error) {
	if len(features) == 0 {
		return nil, errors.New("logistic classifier: no features")
	}
	if len(coefficients) != len(features) {
		return nil, fmt.Errorf("logistic classifier: %d coefficients for %d features", len(coefficients), len(features))
	}
	if !allFinite(coefficients) || !isFinite(intercept) {
		return nil, errors.New("logistic classifier: non-finite parameters")
	}

	return &LogisticClassifier{
		features:     append([]string(nil), features...),
		coefficients: append([]float64(nil), coefficients...),
		intercept:    intercept,
	}, nil
}

// Features returns the column order the model expects.
func (m *LogisticClassifier) Features() []string {
	return append([]string(nil), m.features...)
}

// PredictProba implements recommend.Classifier.
func (m *LogisticClassifier) PredictProba(_ context.Context, row []float64) ([]float64, error) {
	if len(row) != len(m.coefficients) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFeatureCount, len(row), len(m.coefficients))
	}
	p := sigmoid(floats.Dot(m.coefficients, row) + m.intercept)
	return []float64{1 - p, p}, nil
}

// sigmoid is evaluated in the form that does not overflow for large |z|.
func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func allFinite(vs []float64) bool {
	for _, v := range vs {
		if !isFinite(v) {
			return false
		}
	}
	return true
}
