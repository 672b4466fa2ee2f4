// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package recommend

import (
	"context"
	"errors"
	"math"
	"testing"
)

// shortScaler drops a column.
type shortScaler struct{}

func (shortScaler) Transform(_ context.Context, row []float64) ([]float64, error) {
	return row[:len(row)-1], nil
}

// panicClassifier panics on every call.
type panicClassifier struct{}

func (panicClassifier) PredictProba(context.Context, []float64) ([]float64, error) {
	panic("index out of range")
}

func TestOutcome_Resolve(t *testing.T) {
	t.Parallel()

	v, src := Outcome{Value: 4100}.Resolve(3735)
	if v != 4100 || src != SourceModel {
		t.Errorf("success: got %v/%s", v, src)
	}

	v, src = Outcome{Err: ErrModelUnavailable}.Resolve(3735)
	if v != 3735 || src != SourceFallback {
		t.Errorf("failure: got %v/%s", v, src)
	}
}

func TestAttemptYield(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	row := []float64{6.5, 30, 25, 150, 150, 12, 3}

	tests := []struct {
		name      string
		regressor Regressor
		wantOK    bool
		wantErr   error
	}{
		{"value", &stubRegressor{value: 3900}, true, nil},
		{"unavailable", Unavailable{}, false, ErrModelUnavailable},
		{"NaN", &stubRegressor{value: math.NaN()}, false, ErrMalformedOutput},
		{"infinite", &stubRegressor{value: math.Inf(-1)}, false, ErrMalformedOutput},
		{"panic", &stubRegressor{panics: true}, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := attemptYield(ctx, tt.regressor, row)
			if out.OK() != tt.wantOK {
				t.Fatalf("OK = %v, want %v (err %v)", out.OK(), tt.wantOK, out.Err)
			}
			if tt.wantErr != nil && !errors.Is(out.Err, tt.wantErr) {
				t.Errorf("err = %v, want %v", out.Err, tt.wantErr)
			}
		})
	}
}

func TestAttemptPest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	row := []float64{25, 150, 0, 30}

	tests := []struct {
		name       string
		scaler     Scaler
		classifier Classifier
		want       float64
		wantOK     bool
	}{
		{"positive class probability", identityScaler{}, stubClassifier{proba: []float64{0.7, 0.3}}, 0.3, true},
		{"unavailable scaler", Unavailable{}, stubClassifier{proba: []float64{0.7, 0.3}}, 0, false},
		{"scaler drops a column", shortScaler{}, stubClassifier{proba: []float64{0.7, 0.3}}, 0, false},
		{"classifier error", identityScaler{}, stubClassifier{err: errors.New("bad")}, 0, false},
		{"single class", identityScaler{}, stubClassifier{proba: []float64{1}}, 0, false},
		{"NaN probability", identityScaler{}, stubClassifier{proba: []float64{0, math.NaN()}}, 0, false},
		{"classifier panic", identityScaler{}, panicClassifier{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := attemptPest(ctx, tt.scaler, tt.classifier, row)
			if out.OK() != tt.wantOK {
				t.Fatalf("OK = %v, want %v (err %v)", out.OK(), tt.wantOK, out.Err)
			}
			if tt.wantOK && out.Value != tt.want {
				t.Errorf("Value = %v, want %v", out.Value, tt.want)
			}
		})
	}
}

func TestUnavailable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var u Unavailable

	if _, err := u.Predict(ctx, nil); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("Predict err = %v", err)
	}
	if _, err := u.Transform(ctx, nil); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("Transform err = %v", err)
	}
	if _, err := u.PredictProba(ctx, nil); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("PredictProba err = %v", err)
	}
}
