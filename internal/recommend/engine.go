// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/harvestwise/internal/logging"
	"github.com/tomtom215/harvestwise/internal/metrics"
)

// Engine evaluates the candidate crops and produces ranked recommendations.
// It is safe for concurrent use: all per-request data is local to a call.
type Engine struct {
	config     *Config
	tables     *ReferenceTables
	predictors Predictors
	logger     zerolog.Logger

	requestCount   atomic.Int64
	inputErrors    atomic.Int64
	internalErrors atomic.Int64
	yieldFallbacks atomic.Int64
	pestFallbacks  atomic.Int64
}

// Result is the full output of one evaluation.
type Result struct {
	// Recommendations holds at most Config.TopN ranked entries.
	Recommendations []Recommendation `json:"recommendations"`

	// Warnings lists advisory input warnings.
	Warnings []string `json:"warnings"`

	// LatencyMS is the evaluation time in milliseconds.
	LatencyMS int64 `json:"latency_ms"`
}

// NewEngine creates a recommendation engine.
// Nil predictors are replaced by Unavailable.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, predictors Predictors, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	tables := cfg.Tables
	if tables == nil {
		tables = DefaultReferenceTables()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config:     cfg,
		tables:     tables,
		predictors: predictors.withDefaults(),
		logger:     logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Tables returns the reference data the engine evaluates against.
func (e *Engine) Tables() *ReferenceTables {
	return e.tables
}

// Recommend returns the ranked recommendations for one farm.
// The slice is empty, never nil, when the inputs are rejected or evaluation fails.
func (e *Engine) Recommend(ctx context.Context, farm FarmInputs, weather WeatherForecast) ([]Recommendation, error) {
	res, err := e.Generate(ctx, farm, weather)
	return res.Recommendations, err
}

// Generate evaluates every candidate crop, ranks them by ROI and explains the top N.
//
// Missing or non-numeric inputs return an *InputError. Model failures are
// recovered per crop from the fallback tables. Any other failure is logged
// and yields an empty result with a nil error.
func (e *Engine) Generate(ctx context.Context, farm FarmInputs, weather WeatherForecast) (res *Result, err error) {
	start := time.Now()
	e.requestCount.Add(1)
	logger := e.requestLogger(ctx)

	res = &Result{Recommendations: []Recommendation{}, Warnings: []string{}}

	defer func() {
		if r := recover(); r != nil {
			e.internalErrors.Add(1)
			logger.Error().Interface("panic", r).Msg("recommendation generation failed")
			res = &Result{Recommendations: []Recommendation{}, Warnings: []string{}}
			err = nil
			metrics.RecordRecommendation(metrics.OutcomeInternalError, time.Since(start))
		}
	}()

	warnings, err := Validate(e.config.Advisory, farm, weather)
	if err != nil {
		return e.reject(logger, res, err, start)
	}
	for _, w := range warnings {
		logger.Warn().Msg(w)
	}
	res.Warnings = append(res.Warnings, warnings...)

	merged := mergeInputs(farm, weather)
	evaluated := make([]Recommendation, 0, len(e.tables.Candidates))
	for _, crop := range e.tables.Candidates {
		rec, evalErr := e.evaluate(ctx, logger, crop, merged)
		if evalErr != nil {
			return e.reject(logger, res, evalErr, start)
		}
		evaluated = append(evaluated, rec)
	}

	temperature, err := coerceField(weather, FieldTemperature)
	if err != nil {
		return e.reject(logger, res, err, start)
	}

	ranked := Rank(evaluated, e.config.TopN)
	for i := range ranked {
		e.explain(&ranked[i], temperature)
	}

	res.Recommendations = ranked
	res.LatencyMS = time.Since(start).Milliseconds()
	metrics.RecordRecommendation(metrics.OutcomeSuccess, time.Since(start))

	logger.Debug().
		Int("candidates", len(evaluated)).
		Int("returned", len(ranked)).
		Int64("latency_ms", res.LatencyMS).
		Msg("recommendation complete")

	return res, nil
}

// reject ends a call whose inputs could not be evaluated.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func (e *Engine) reject(logger zerolog.Logger, res *Result, err error, start time.Time) (*Result, error) {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		e.inputErrors.Add(1)
		logger.Warn().Err(err).Msg("recommendation request rejected")
		metrics.RecordRecommendation(metrics.OutcomeInputError, time.Since(start))
		return res, err
	}

	e.internalErrors.Add(1)
	logger.Error().Err(err).Msg("recommendation generation failed")
	metrics.RecordRecommendation(metrics.OutcomeInternalError, time.Since(start))
	return res, nil
}

// evaluate computes the unexplained recommendation for one crop.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func (e *Engine) evaluate(ctx context.Context, logger zerolog.Logger, crop Crop, merged map[string]any) (Recommendation, error) {
	profile := e.tables.Profile(crop)

	features, err := BuildFeatures(e.tables, crop, merged)
	if err != nil {
		return Recommendation{}, err
	}

	yieldOut := attemptYield(ctx, e.predictors.Yield, features.Yield)
	predictedYield, yieldSource := yieldOut.Resolve(profile.FallbackYield)
	e.observe(logger, "yield", crop, yieldOut, &e.yieldFallbacks)

	predictedPrice := EstimatePrice(profile.BasePrice, features.Temperature, features.Rainfall, predictedYield)

	pestOut := attemptPest(ctx, e.predictors.Scaler, e.predictors.Pest, features.Pest)
	pestRisk, pestSource := pestOut.Resolve(profile.FallbackPestRisk)
	e.observe(logger, "pest", crop, pestOut, &e.pestFallbacks)

	econ := ComputeEconomics(predictedYield, predictedPrice, profile.CostPerTon)

	logger.Debug().
		Str("crop", crop.String()).
		Float64("predicted_yield", predictedYield).
		Float64("predicted_price", predictedPrice).
		Float64("roi_percentage", econ.ROIPercentage).
		Str("yield_source", string(yieldSource)).
		Str("pest_source", string(pestSource)).
		Msg("crop evaluated")

	rec := Recommendation{
		Crop:                   crop,
		PredictedYield:         predictedYield,
		PredictedPrice:         predictedPrice,
		EstimatedProfit:        econ.Profit,
		EstimatedROIPercentage: econ.ROIPercentage,
		PestRiskScore:          pestRisk,
		Strengths:              []string{},
		Weaknesses:             []string{},
	}
	if e.config.IncludeSources {
		rec.Sources = &PredictionSources{Yield: yieldSource, Pest: pestSource}
	}
	return rec, nil
}

// observe records a predictor outcome in logs, counters and metrics.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func (e *Engine) observe(logger zerolog.Logger, model string, crop Crop, out Outcome, fallbacks *atomic.Int64) {
	if out.OK() {
		metrics.RecordModelPrediction(model, metrics.OutcomeSuccess)
		return
	}

	fallbacks.Add(1)
	metrics.RecordModelPrediction(model, metrics.OutcomeFallback)

	event := logger.Warn()
	if errors.Is(out.Err, ErrModelUnavailable) {
		event = logger.Debug()
	}
	event.Err(out.Err).
		Str("model", model).
		Str("crop", crop.String()).
		Msg("prediction failed, using fallback")
}

// explain attaches strengths, weaknesses and the explanation to rec.
func (e *Engine) explain(rec *Recommendation, temperature float64) {
	strengths, weaknesses := Assess(e.tables.Profile(rec.Crop), rec, temperature)
	rec.Strengths = strengths
	rec.Weaknesses = weaknesses
	rec.Explanation = ComposeExplanation(rec.Crop, strengths, weaknesses)
}

// requestLogger returns the engine logger enriched with the request's tracing IDs.
func (e *Engine) requestLogger(ctx context.Context) zerolog.Logger {
	logCtx := e.logger.With()
	if id := logging.RequestIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("request_id", id)
	}
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("correlation_id", id)
	}
	return logCtx.Logger()
}

// GetMetrics returns the current engine counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		Requests:       e.requestCount.Load(),
		InputErrors:    e.inputErrors.Load(),
		InternalErrors: e.internalErrors.Load(),
		YieldFallbacks: e.yieldFallbacks.Load(),
		PestFallbacks:  e.pestFallbacks.Load(),
	}
}
