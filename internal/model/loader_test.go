// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package model

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/harvestwise/internal/recommend"
)

const (
	yieldArtifactJSON = `{
  "features": ["Soil_pH", "Soil_Moisture", "Temperature_C", "Rainfall_mm", "Fertilizer_Usage_kg", "Pesticide_Usage_kg", "Crop_Type_Encoded"],
  "coefficients": [10, 5, 20, 1, 2, 3, 100],
  "intercept": 1000
}`
	scalerArtifactJSON = `{
  "features": ["Temperature_C", "Rainfall_mm", "Crop_Type_Encoded", "Soil_Moisture"],
  "mean": [25, 150, 1.5, 30],
  "scale": [5, 50, 1, 10]
}`
	pestArtifactJSON = `{
  "features": ["Temperature_C", "Rainfall_mm", "Crop_Type_Encoded", "Soil_Moisture"],
  "coefficients": [0.5, 0.2, -0.1, 0.3],
  "intercept": -1.5,
  "classes": [0, 1]
}`
)

func writeArtifacts(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoad_AllArtifacts(t *testing.T) {
	dir := writeArtifacts(t, map[string]string{
		YieldModelFile: yieldArtifactJSON,
		PestScalerFile: scalerArtifactJSON,
		PestModelFile:  pestArtifactJSON,
	})

	p, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Yield == nil || p.Scaler == nil || p.Pest == nil {
		t.Fatal("expected all predictors to load")
	}

	status := p.Status()
	if !status["yield"] || !status["pest"] {
		t.Errorf("status = %v, want all true", status)
	}

	// 10*6.5 + 5*30 + 20*25 + 1*150 + 2*180 + 3*15 + 100*0 + 1000
	got, err := p.Yield.Predict(context.Background(), []float64{6.5, 30, 25, 150, 180, 15, 0})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if got != 2270 {
		t.Errorf("Predict = %v, want 2270", got)
	}
}

func TestLoad_MissingArtifact(t *testing.T) {
	dir := writeArtifacts(t, map[string]string{
		YieldModelFile: yieldArtifactJSON,
	})

	p, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for missing pest artifacts")
	}
	if p.Yield == nil {
		t.Error("expected yield model to load independently")
	}
	if p.Scaler != nil || p.Pest != nil {
		t.Error("expected pest predictors to be nil")
	}

	preds := p.Predictors()
	if preds.Scaler != nil || preds.Pest != nil {
		t.Error("expected nil interface values for missing predictors")
	}
	if preds.Yield == nil {
		t.Error("expected yield predictor")
	}
}

func TestLoad_FeatureOrderMismatch(t *testing.T) {
	dir := writeArtifacts(t, map[string]string{
		YieldModelFile: `{"features": ["Soil_Moisture", "Soil_pH"], "coefficients": [1, 2], "intercept": 0}`,
		PestScalerFile: scalerArtifactJSON,
		PestModelFile:  pestArtifactJSON,
	})

	p, err := Load(dir)
	if !errors.Is(err, ErrFeatureOrder) {
		t.Fatalf("expected ErrFeatureOrder, got %v", err)
	}
	if p.Yield != nil {
		t.Error("expected mismatched yield model to be rejected")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := writeArtifacts(t, map[string]string{
		YieldModelFile: `{"features": [`,
		PestScalerFile: scalerArtifactJSON,
		PestModelFile:  `{"features": ["Temperature_C", "Rainfall_mm", "Crop_Type_Encoded", "Soil_Moisture"], "coefficients": [1, 1, 1, 1], "intercept": 0, "classes": [0, 1, 2]}`,
	})

	p, err := Load(dir)
	if err == nil {
		t.Fatal("expected error")
	}
	if p.Yield != nil || p.Pest != nil {
		t.Error("expected invalid artifacts to be rejected")
	}
	if p.Scaler == nil {
		t.Error("expected scaler to load")
	}
	if p.Status()["pest"] {
		t.Error("pest should not be reported as backed without the classifier")
	}
}

func TestLoadedPredictors_DriveEngine(t *testing.T) {
	dir := writeArtifacts(t, map[string]string{
		YieldModelFile: yieldArtifactJSON,
		PestScalerFile: scalerArtifactJSON,
		PestModelFile:  pestArtifactJSON,
	})

	p, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg := recommend.DefaultConfig()
	cfg.IncludeSources = true
	engine, err := recommend.NewEngine(cfg, p.Predictors(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	recs, err := engine.Recommend(context.Background(),
		recommend.FarmInputs{"Soil_pH": 6.5, "Soil_Moisture": 30},
		recommend.WeatherForecast{"Temperature_C": 25, "Rainfall_mm": 150},
	)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
	for _, rec := range recs {
		if rec.Sources == nil || rec.Sources.Yield != recommend.SourceModel || rec.Sources.Pest != recommend.SourceModel {
			t.Errorf("%s: expected model-sourced values, got %+v", rec.Crop, rec.Sources)
		}
	}
}

func TestOpen_Backends(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		set, err := Open(Options{Backend: BackendNone}, zerolog.Nop())
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if set.Status()["yield"] || set.Status()["pest"] {
			t.Error("expected no model-backed predictors")
		}
		if set.BreakerState() != "" {
			t.Error("expected no breaker for none backend")
		}
	})

	t.Run("local with missing dir keeps running", func(t *testing.T) {
		set, err := Open(Options{Backend: BackendLocal, Dir: filepath.Join(t.TempDir(), "absent")}, zerolog.Nop())
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if set.Status()["yield"] {
			t.Error("expected yield to be unavailable")
		}
		if set.Predictors().Yield != nil {
			t.Error("expected nil yield predictor")
		}
	})

	t.Run("remote without URL", func(t *testing.T) {
		if _, err := Open(Options{Backend: BackendRemote}, zerolog.Nop()); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := Open(Options{Backend: "onnx"}, zerolog.Nop()); err == nil {
			t.Error("expected error")
		}
	})
}
