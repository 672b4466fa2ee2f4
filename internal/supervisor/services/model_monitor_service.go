// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package services

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/harvestwise/internal/logging"
	"github.com/tomtom215/harvestwise/internal/metrics"
)

// ModelStatusSource reports predictor availability. Satisfied by *model.Set.
type ModelStatusSource interface {
	Backend() string
	Status() map[string]bool
	BreakerState() string
}

// ModelMonitorConfig configures the monitor.
type ModelMonitorConfig struct {
	// Interval between status checks. Default: 30s
	Interval time.Duration
}

// ModelMonitorService periodically publishes model availability to the
// model_loaded gauge and logs every change.
type ModelMonitorService struct {
	source  ModelStatusSource
	config  ModelMonitorConfig
	logger  zerolog.Logger
	name    string
	last    map[string]bool
	breaker string
}

// NewModelMonitorService creates a monitor for source.
func NewModelMonitorService(source ModelStatusSource, cfg ModelMonitorConfig) *ModelMonitorService {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	return &ModelMonitorService{
		source: source,
		config: cfg,
		logger: logging.WithComponent("model-monitor").With().Str("backend", source.Backend()).Logger(),
		name:   "model-monitor",
	}
}

// Serve implements suture.Service.
func (s *ModelMonitorService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.config.Interval).Msg("model monitor starting")

	s.check()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("model monitor shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.check()
		}
	}
}

// check records the current status and logs transitions since the last check.
func (s *ModelMonitorService) check() {
	status := s.source.Status()
	breaker := s.source.BreakerState()

	names := make([]string, 0, len(status))
	for name := range status {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		available := status[name]
		metrics.SetModelLoaded(name, available)

		prev, seen := s.last[name]
		switch {
		case !seen:
			s.logger.Debug().Str("model", name).Bool("available", available).Msg("model status")
		case prev && !available:
			s.logger.Warn().Str("model", name).Msg("model unavailable, predictions use fallback values")
		case !prev && available:
			s.logger.Info().Str("model", name).Msg("model available again")
		}
	}

	if breaker != s.breaker && s.last != nil {
		s.logger.Info().Str("from", s.breaker).Str("to", breaker).Msg("model server circuit changed")
	}

	s.last = status
	s.breaker = breaker
}

// String names the service in supervisor events.
func (s *ModelMonitorService) String() string {
	return s.name
}
