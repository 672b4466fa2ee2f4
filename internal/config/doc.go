// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

/*
Package config provides centralized configuration management for Harvestwise.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. The result is validated before use.

# Config File

The first existing file wins:
  - $CONFIG_PATH
  - config.yaml, config.yml
  - /etc/harvestwise/config.yaml, /etc/harvestwise/config.yml

Example:

	server:
	  port: 5000
	models:
	  backend: remote
	  remote_url: http://inference:8080
	recommend:
	  top_n: 3

# Environment Variables

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 5000)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller file and line

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Window length (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off

Models:
  - MODEL_BACKEND: local, remote, or none (default: local)
  - MODEL_DIR: Artifact directory for the local backend (default: models)
  - MODEL_REMOTE_URL: Inference server base URL for the remote backend
  - MODEL_TIMEOUT: Per-call timeout for the remote backend (default: 2s)
  - MODEL_BREAKER_*: Circuit breaker thresholds
  - MODEL_STATUS_INTERVAL: Model availability refresh interval (default: 30s)

Recommendations:
  - RECOMMEND_TOP_N: Number of ranked crops returned (default: 3)
  - RECOMMEND_INCLUDE_SOURCES: Report model or fallback origin per value

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.LoggingOptions())
*/
package config
