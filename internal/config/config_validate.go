// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/harvestwise/internal/logging"
	"github.com/tomtom215/harvestwise/internal/model"
)

// Validate checks that configuration values are present and within bounds
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateModels(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.IdleTimeout < 0 {
		return fmt.Errorf("HTTP timeouts must not be negative")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateSecurity validates CORS and rate limiting configuration
func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	return c.validateRateLimits()
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateModels validates the prediction backend configuration
func (c *Config) validateModels() error {
	if c.Models.StatusInterval < time.Second {
		return fmt.Errorf("MODEL_STATUS_INTERVAL must be at least 1s")
	}

	switch c.Models.Backend {
	case model.BackendLocal:
		if c.Models.Dir == "" {
			return fmt.Errorf("MODEL_DIR is required when MODEL_BACKEND=local")
		}
	case model.BackendRemote:
		if err := c.validateRemoteModels(); err != nil {
			return err
		}
	case model.BackendNone:
	default:
		return fmt.Errorf("MODEL_BACKEND must be one of: local, remote, none")
	}
	return nil
}

// validateRemoteModels validates the remote inference server settings
func (c *Config) validateRemoteModels() error {
	if c.Models.RemoteURL == "" {
		return fmt.Errorf("MODEL_REMOTE_URL is required when MODEL_BACKEND=remote")
	}
	if err := validateHTTPURL(c.Models.RemoteURL, "MODEL_REMOTE_URL"); err != nil {
		return fmt.Errorf("MODEL_REMOTE_URL is invalid: %w", err)
	}
	if c.Models.Timeout <= 0 {
		return fmt.Errorf("MODEL_TIMEOUT must be positive")
	}

	b := c.Models.Breaker
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("MODEL_BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	if b.OpenTimeout <= 0 {
		return fmt.Errorf("MODEL_BREAKER_OPEN_TIMEOUT must be positive")
	}
	return nil
}

// validateRecommend validates engine settings
func (c *Config) validateRecommend() error {
	if c.Recommend.TopN < 1 {
		return fmt.Errorf("RECOMMEND_TOP_N must be at least 1")
	}
	return nil
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
