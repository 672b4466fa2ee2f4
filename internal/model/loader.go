// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/goccy/go-json"

	"github.com/tomtom215/harvestwise/internal/metrics"
	"github.com/tomtom215/harvestwise/internal/recommend"
)

// Artifact file names inside the model directory.
const (
	YieldModelFile = "yield_model.json"
	PestScalerFile = "pest_scaler.json"
	PestModelFile  = "pest_risk_model.json"
)

// ErrFeatureOrder is returned when an artifact was trained on different columns.
var ErrFeatureOrder = errors.New("artifact feature order mismatch")

type linearArtifact struct {
	Features     []string  `json:"features"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

type logisticArtifact struct {
	Features     []string  `json:"features"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Classes      []int     `json:"classes"`
}

type scalerArtifact struct {
	Features []string  `json:"features"`
	Mean     []float64 `json:"mean"`
	Scale    []float64 `json:"scale"`
}

// Provider holds the locally loaded predictors. A nil member means the
// artifact could not be loaded.
type Provider struct {
	Yield  *LinearRegressor
	Scaler *StandardScaler
	Pest   *LogisticClassifier
}

// Load reads all three artifacts from dir. Each artifact is loaded
// independently: the returned Provider carries every predictor that loaded,
// and the error joins the failures of the rest.
func Load(dir string) (*Provider, error) {
	p := &Provider{}
	var errs []error

	if m, err := loadYield(filepath.Join(dir, YieldModelFile)); err != nil {
		errs = append(errs, err)
	} else {
		p.Yield = m
	}

	if s, err := loadScaler(filepath.Join(dir, PestScalerFile)); err != nil {
		errs = append(errs, err)
	} else {
		p.Scaler = s
	}

	if c, err := loadPest(filepath.Join(dir, PestModelFile)); err != nil {
		errs = append(errs, err)
	} else {
		p.Pest = c
	}

	metrics.SetModelLoaded("yield", p.Yield != nil)
	metrics.SetModelLoaded("pest", p.Scaler != nil && p.Pest != nil)

	return p, errors.Join(errs...)
}

// Predictors returns the engine view of the provider. Missing members are
// left nil so the engine substitutes recommend.Unavailable.
func (p *Provider) Predictors() recommend.Predictors {
	var out recommend.Predictors
	if p == nil {
		return out
	}
	if p.Yield != nil {
		out.Yield = p.Yield
	}
	if p.Scaler != nil {
		out.Scaler = p.Scaler
	}
	if p.Pest != nil {
		out.Pest = p.Pest
	}
	return out
}

// Status reports which predictors are model-backed.
func (p *Provider) Status() map[string]bool {
	if p == nil {
		return map[string]bool{"yield": false, "pest": false}
	}
	return map[string]bool{
		"yield": p.Yield != nil,
		"pest":  p.Scaler != nil && p.Pest != nil,
	}
}

func loadYield(path string) (*LinearRegressor, error) {
	var a linearArtifact
	if err := readArtifact(path, &a); err != nil {
		return nil, err
	}
	if err := checkFeatures(path, a.Features, recommend.YieldColumns); err != nil {
		return nil, err
	}
	m, err := NewLinearRegressor(a.Features, a.Coefficients, a.Intercept)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func loadScaler(path string) (*StandardScaler, error) {
	var a scalerArtifact
	if err := readArtifact(path, &a); err != nil {
		return nil, err
	}
	if err := checkFeatures(path, a.Features, recommend.PestColumns); err != nil {
		return nil, err
	}
	s, err := NewStandardScaler(a.Features, a.Mean, a.Scale)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func loadPest(path string) (*LogisticClassifier, error) {
	var a logisticArtifact
	if err := readArtifact(path, &a); err != nil {
		return nil, err
	}
	if err := checkFeatures(path, a.Features, recommend.PestColumns); err != nil {
		return nil, err
	}
	if len(a.Classes) != 0 && !slices.Equal(a.Classes, []int{0, 1}) {
		return nil, fmt.Errorf("%s: expected binary classes [0 1], got %v", path, a.Classes)
	}
	c, err := NewLogisticClassifier(a.Features, a.Coefficients, a.Intercept)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func readArtifact(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the configured model directory
	if err != nil {
		return fmt.Errorf("read artifact: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode artifact %s: %w", path, err)
	}
	return nil
}

func checkFeatures(path string, got, want []string) error {
	if !slices.Equal(got, want) {
		return fmt.Errorf("%s: %w: got %v, want %v", path, ErrFeatureOrder, got, want)
	}
	return nil
}
