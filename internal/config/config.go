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
	"github.com/tomtom215/harvestwise/internal/recommend"
)

// Config holds all application configuration loaded from defaults, an optional
// config file, and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in values for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//   - Server: HTTP listener and timeouts
//   - Logging: Log level and output format
//   - Security: CORS origins and rate limiting
//   - Models: Where yield and pest predictions come from
//   - Recommend: Ranking and response shaping
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Security  SecurityConfig  `koanf:"security"`
	Models    ModelsConfig    `koanf:"models"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// ModelsConfig selects and tunes the prediction backend.
//
// Backend is one of:
//   - local: load JSON artifacts from Dir
//   - remote: call the inference server at RemoteURL through a circuit breaker
//   - none: always use the fallback tables
type ModelsConfig struct {
	Backend   string        `koanf:"backend"`
	Dir       string        `koanf:"dir"`
	RemoteURL string        `koanf:"remote_url"`
	Timeout   time.Duration `koanf:"timeout"`
	Breaker   BreakerConfig `koanf:"breaker"`

	// StatusInterval is how often the model monitor refreshes availability.
	StatusInterval time.Duration `koanf:"status_interval"`
}

// BreakerConfig holds circuit breaker thresholds for the remote backend
type BreakerConfig struct {
	MinRequests      uint32        `koanf:"min_requests"`
	FailureRatio     float64       `koanf:"failure_ratio"`
	Interval         time.Duration `koanf:"interval"`
	OpenTimeout      time.Duration `koanf:"open_timeout"`
	HalfOpenRequests uint32        `koanf:"half_open_requests"`
}

// RecommendConfig holds engine settings
type RecommendConfig struct {
	TopN           int  `koanf:"top_n"`
	IncludeSources bool `koanf:"include_sources"`
}

// LoggingOptions converts the logging section for logging.Init.
func (c *Config) LoggingOptions() logging.Config {
	return logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		Caller: c.Logging.Caller,
	}
}

// ModelOptions converts the models section for model.Open.
func (c *Config) ModelOptions() model.Options {
	return model.Options{
		Backend: c.Models.Backend,
		Dir:     c.Models.Dir,
		Remote: model.RemoteConfig{
			BaseURL: c.Models.RemoteURL,
			Timeout: c.Models.Timeout,
			Breaker: model.BreakerConfig{
				MinRequests:      c.Models.Breaker.MinRequests,
				FailureRatio:     c.Models.Breaker.FailureRatio,
				Interval:         c.Models.Breaker.Interval,
				OpenTimeout:      c.Models.Breaker.OpenTimeout,
				HalfOpenRequests: c.Models.Breaker.HalfOpenRequests,
			},
		},
	}
}

// EngineConfig builds the engine configuration, starting from
// recommend.DefaultConfig and applying the recommend section.
func (c *Config) EngineConfig() *recommend.Config {
	cfg := recommend.DefaultConfig()
	cfg.TopN = c.Recommend.TopN
	cfg.IncludeSources = c.Recommend.IncludeSources
	return cfg
}

// Load reads configuration using Koanf v2 with layered sources.
// See LoadWithKoanf for details.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
