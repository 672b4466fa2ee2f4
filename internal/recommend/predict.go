// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package recommend

import (
	"context"
	"fmt"
	"math"
)

// Outcome is the result of one predictor call: a value or the reason there is none.
type Outcome struct {
	Value float64
	Err   error
}

// OK reports whether the call produced a usable value.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Resolve returns the outcome's value, or fallback when the call failed.
func (o Outcome) Resolve(fallback float64) (float64, Source) {
	if o.OK() {
		return o.Value, SourceModel
	}
	return fallback, SourceFallback
}

// attemptYield calls the regressor and captures any failure, including panics.
func attemptYield(ctx context.Context, r Regressor, features []float64) (out Outcome) {
	defer recoverOutcome(&out)

	v, err := r.Predict(ctx, features)
	if err != nil {
		return Outcome{Err: fmt.Errorf("yield predict: %w", err)}
	}
	if !finite(v) {
		return Outcome{Err: fmt.Errorf("yield predict: %w: %v", ErrMalformedOutput, v)}
	}
	return Outcome{Value: v}
}

// attemptPest scales the pest row, calls the classifier and returns the
// positive-class probability.
func attemptPest(ctx context.Context, s Scaler, c Classifier, features []float64) (out Outcome) {
	defer recoverOutcome(&out)

	scaled, err := s.Transform(ctx, features)
	if err != nil {
		return Outcome{Err: fmt.Errorf("pest scale: %w", err)}
	}
	if len(scaled) != len(features) {
		return Outcome{Err: fmt.Errorf("pest scale: %w: %d columns, want %d", ErrMalformedOutput, len(scaled), len(features))}
	}

	proba, err := c.PredictProba(ctx, scaled)
	if err != nil {
		return Outcome{Err: fmt.Errorf("pest predict: %w", err)}
	}
	if len(proba) < 2 {
		return Outcome{Err: fmt.Errorf("pest predict: %w: %d classes", ErrMalformedOutput, len(proba))}
	}
	p := proba[1]
	if !finite(p) || p < 0 || p > 1 {
		return Outcome{Err: fmt.Errorf("pest predict: %w: probability %v", ErrMalformedOutput, p)}
	}
	return Outcome{Value: p}
}

// recoverOutcome turns a predictor panic into a failed outcome.
func recoverOutcome(out *Outcome) {
	if r := recover(); r != nil {
		*out = Outcome{Err: fmt.Errorf("predictor panic: %v", r)}
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Unavailable is a predictor with no model behind it. Every call fails with
// ErrModelUnavailable, so the engine always takes the fallback path.
type Unavailable struct{}

// Predict implements Regressor.
func (Unavailable) Predict(context.Context, []float64) (float64, error) {
	return 0, ErrModelUnavailable
}

// Transform implements Scaler.
func (Unavailable) Transform(context.Context, []float64) ([]float64, error) {
	return nil, ErrModelUnavailable
}

// PredictProba implements Classifier.
func (Unavailable) PredictProba(context.Context, []float64) ([]float64, error) {
	return nil, ErrModelUnavailable
}

// withDefaults replaces nil predictors with Unavailable.
func (p Predictors) withDefaults() Predictors {
	if p.Yield == nil {
		p.Yield = Unavailable{}
	}
	if p.Scaler == nil {
		p.Scaler = Unavailable{}
	}
	if p.Pest == nil {
		p.Pest = Unavailable{}
	}
	return p
}
