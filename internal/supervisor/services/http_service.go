// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/harvestwise/internal/logging"
)

// HTTPServer is the lifecycle subset of *http.Server, so tests can
// substitute a fake listener.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs an HTTP server under supervision.
//
// ListenAndServe blocks, so it runs in its own goroutine while Serve waits
// for either a listener error (returned so suture restarts the service) or
// cancellation of the Serve context, which triggers Shutdown bounded by
// shutdownTimeout. Every start, restart and drain is logged with the bound
// address.
type HTTPServerService struct {
	server          HTTPServer
	addr            string
	shutdownTimeout time.Duration
	name            string
	logger          zerolog.Logger
	starts          atomic.Int64
}

// NewHTTPServerService wraps server. A non-positive shutdownTimeout becomes 10s.
// The listen address is taken from server when it is an *http.Server.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	addr := "unknown"
	if s, ok := server.(*http.Server); ok && s.Addr != "" {
		addr = s.Addr
	}

	return &HTTPServerService{
		server:          server,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		name:            "http-server",
		logger:          logging.WithComponent("http-server").With().Str("addr", addr).Logger(),
	}
}

// Serve implements suture.Service.
//
// Returns ctx.Err() after a graceful drain, or an error if the listener
// fails or the drain exceeds shutdownTimeout. http.ErrServerClosed is the
// normal result of Shutdown and is not reported.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	if n := h.starts.Add(1); n > 1 {
		h.logger.Warn().Int64("attempt", n).Msg("restarting HTTP listener")
	} else {
		h.logger.Info().Msg("HTTP listener starting")
	}

	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			h.logger.Error().Err(err).Msg("HTTP listener failed")
			return fmt.Errorf("http server %s failed: %w", h.addr, err)
		}
		// Closed by someone other than this service.
		return nil

	case <-ctx.Done():
		start := time.Now()
		h.logger.Info().Dur("timeout", h.shutdownTimeout).Msg("draining HTTP connections")

		// The Serve context is already canceled.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			h.logger.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("HTTP drain did not complete")
			return fmt.Errorf("http server %s shutdown failed: %w", h.addr, err)
		}

		<-errCh
		h.logger.Info().Dur("elapsed", time.Since(start)).Msg("HTTP listener stopped")
		return ctx.Err()
	}
}

// Starts returns how many times Serve has been entered.
func (h *HTTPServerService) Starts() int64 {
	return h.starts.Load()
}

// String names the service in supervisor events.
func (h *HTTPServerService) String() string {
	return h.name
}
