// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package model

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/harvestwise/internal/metrics"
)

// Remote inference endpoints, relative to the configured base URL.
const (
	yieldPath     = "/v1/yield"
	pestScalePath = "/v1/pest/scale"
	pestProbaPath = "/v1/pest/proba"
)

// maxResponseBytes caps the body read from the model server.
const maxResponseBytes = 1 << 20

// ErrRemoteStatus wraps non-2xx answers from the model server.
var ErrRemoteStatus = errors.New("model server returned error status")

// RemoteConfig configures the model server client.
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
	Breaker BreakerConfig
}

// RemoteClient calls an HTTP inference server that hosts the yield
// regressor, the pest scaler and the pest classifier. It implements
// recommend.Regressor, recommend.Scaler and recommend.Classifier.
//
// All calls share one circuit breaker: once it opens, predictions fail
// immediately with gobreaker.ErrOpenState and the engine falls back.
type RemoteClient struct {
	baseURL string
	client  *http.Client
	breaker *breaker
}

type inferenceRequest struct {
	Features []float64 `json:"features"`
}

type inferenceResponse struct {
	Value  *float64  `json:"value,omitempty"`
	Values []float64 `json:"values,omitempty"`
}

// NewRemoteClient creates a client for the model server at cfg.BaseURL.
func NewRemoteClient(cfg RemoteConfig) (*RemoteClient, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, errors.New("remote model client: base URL is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}

	return &RemoteClient{
		baseURL: base,
		client:  &http.Client{Timeout: cfg.Timeout},
		breaker: newBreaker("model-server", cfg.Breaker),
	}, nil
}

// Predict implements recommend.Regressor.
func (c *RemoteClient) Predict(ctx context.Context, row []float64) (float64, error) {
	out, err := c.call(ctx, "yield", yieldPath, row)
	if err != nil {
		return 0, err
	}
	if len(out) != 1 {
		return 0, fmt.Errorf("yield: expected one value, got %d", len(out))
	}
	return out[0], nil
}

// Transform implements recommend.Scaler.
func (c *RemoteClient) Transform(ctx context.Context, row []float64) ([]float64, error) {
	return c.call(ctx, "pest_scale", pestScalePath, row)
}

// PredictProba implements recommend.Classifier.
func (c *RemoteClient) PredictProba(ctx context.Context, row []float64) ([]float64, error) {
	return c.call(ctx, "pest_proba", pestProbaPath, row)
}

// BreakerState returns the circuit state: closed, half-open or open.
func (c *RemoteClient) BreakerState() string {
	return c.breaker.state()
}

func (c *RemoteClient) call(ctx context.Context, operation, path string, row []float64) ([]float64, error) {
	start := time.Now()
	defer func() { metrics.RecordRemoteModelCall(operation, time.Since(start)) }()

	return c.breaker.execute(func() ([]float64, error) {
		return c.post(ctx, path, row)
	})
}

func (c *RemoteClient) post(ctx context.Context, path string, row []float64) ([]float64, error) {
	body, err := json.Marshal(inferenceRequest{Features: row})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("POST %s: %w: %d", path, ErrRemoteStatus, resp.StatusCode)
	}

	var out inferenceResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out.Value != nil {
		return []float64{*out.Value}, nil
	}
	if out.Values == nil {
		return nil, fmt.Errorf("POST %s: empty response", path)
	}
	return out.Values, nil
}
