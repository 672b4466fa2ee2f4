// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/tomtom215/harvestwise/internal/api"
	"github.com/tomtom215/harvestwise/internal/config"
	"github.com/tomtom215/harvestwise/internal/logging"
	"github.com/tomtom215/harvestwise/internal/model"
	"github.com/tomtom215/harvestwise/internal/recommend"
	"github.com/tomtom215/harvestwise/internal/supervisor"
	"github.com/tomtom215/harvestwise/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.LoggingOptions())

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Str("model_backend", cfg.Models.Backend).
		Int("top_n", cfg.Recommend.TopN).
		Msg("Starting Harvestwise")

	set, err := model.Open(cfg.ModelOptions(), logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open model backend")
	}

	engine, err := recommend.NewEngine(cfg.EngineConfig(), set.Predictors(), logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           newRouter(cfg, engine, set),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddModelService(services.NewModelMonitorService(set, services.ModelMonitorConfig{
		Interval: cfg.Models.StatusInterval,
	}))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Harvestwise stopped gracefully")
}

// newRouter builds the HTTP handler from configuration.
func newRouter(cfg *config.Config, engine *recommend.Engine, set *model.Set) http.Handler {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled

	handler := api.NewHandler(engine, set, version)
	return api.NewRouter(handler, mw).SetupChi()
}
