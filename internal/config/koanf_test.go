// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points CONFIG_PATH at a missing file and moves into an empty
// directory so no stray config.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	return dir
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Models.Backend != "local" || cfg.Models.Dir != "models" {
		t.Errorf("Models = %+v", cfg.Models)
	}
	if cfg.Recommend.TopN != 3 {
		t.Errorf("Recommend.TopN = %d, want 3", cfg.Recommend.TopN)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Security.RateLimitWindow != time.Minute {
		t.Errorf("RateLimitWindow = %v, want 1m", cfg.Security.RateLimitWindow)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	isolate(t)

	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://farm.example.com, https://ops.example.com")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("MODEL_BACKEND", "remote")
	t.Setenv("MODEL_REMOTE_URL", "http://inference:8080")
	t.Setenv("MODEL_TIMEOUT", "500ms")
	t.Setenv("RECOMMEND_TOP_N", "2")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8081 {
		t.Errorf("Server.Port = %d, want 8081", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	want := []string{"https://farm.example.com", "https://ops.example.com"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}
	if cfg.Security.RateLimitWindow != 30*time.Second {
		t.Errorf("RateLimitWindow = %v, want 30s", cfg.Security.RateLimitWindow)
	}
	if cfg.Models.Backend != "remote" || cfg.Models.RemoteURL != "http://inference:8080" {
		t.Errorf("Models = %+v", cfg.Models)
	}
	if cfg.Models.Timeout != 500*time.Millisecond {
		t.Errorf("Models.Timeout = %v, want 500ms", cfg.Models.Timeout)
	}
	if cfg.Recommend.TopN != 2 {
		t.Errorf("Recommend.TopN = %d, want 2", cfg.Recommend.TopN)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "harvestwise.yaml")
	content := `
server:
  port: 9000
security:
  cors_origins:
    - https://a.example.com
models:
  backend: none
recommend:
  top_n: 4
  include_sources: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	// Environment still wins over the file.
	t.Setenv("RECOMMEND_TOP_N", "1")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://a.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Models.Backend != "none" {
		t.Errorf("Models.Backend = %q, want none", cfg.Models.Backend)
	}
	if cfg.Recommend.TopN != 1 {
		t.Errorf("Recommend.TopN = %d, want 1 from env", cfg.Recommend.TopN)
	}
	if !cfg.Recommend.IncludeSources {
		t.Error("Recommend.IncludeSources should be true from file")
	}
}

func TestLoadWithKoanf_InvalidFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("server: [unterminated"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	if _, err := LoadWithKoanf(); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadWithKoanf_ValidationFailure(t *testing.T) {
	isolate(t)
	t.Setenv("MODEL_BACKEND", "gpu")

	if _, err := Load(); err == nil {
		t.Error("expected validation error for unknown backend")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"LOG_FORMAT", "logging.format"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"MODEL_BREAKER_OPEN_TIMEOUT", "models.breaker.open_timeout"},
		{"RECOMMEND_TOP_N", "recommend.top_n"},
		{"MODEL_STATUS_INTERVAL", "models.status_interval"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := envTransformFunc(tt.key); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
