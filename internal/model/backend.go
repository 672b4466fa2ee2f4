// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package model

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/harvestwise/internal/recommend"
)

// Backend names.
const (
	BackendLocal  = "local"
	BackendRemote = "remote"
	BackendNone   = "none"
)

// Options selects and configures a backend.
type Options struct {
	Backend string
	Dir     string
	Remote  RemoteConfig
}

// Set is the opened backend: the predictors to hand to the engine plus
// what the readiness probe reports about them.
type Set struct {
	backend    string
	predictors recommend.Predictors
	status     map[string]bool
	remote     *RemoteClient
}

// Open builds the predictors for opts.Backend.
//
// A local backend whose artifacts fail to load is not an error: the
// failure is logged and the affected predictors fall back. Only
// misconfiguration (unknown backend, missing remote URL) is returned.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(opts Options, logger zerolog.Logger) (*Set, error) {
	logger = logger.With().Str("component", "model").Str("backend", opts.Backend).Logger()

	switch opts.Backend {
	case BackendLocal:
		p, err := Load(opts.Dir)
		if err != nil {
			logger.Warn().Err(err).Str("dir", opts.Dir).Msg("error loading models, using fallback values")
		}
		status := p.Status()
		logger.Info().Bool("yield", status["yield"]).Bool("pest", status["pest"]).Msg("models loaded")
		return &Set{backend: opts.Backend, predictors: p.Predictors(), status: status}, nil

	case BackendRemote:
		client, err := NewRemoteClient(opts.Remote)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("url", client.baseURL).Msg("using remote model server")
		return &Set{
			backend:    opts.Backend,
			predictors: recommend.Predictors{Yield: client, Scaler: client, Pest: client},
			status:     map[string]bool{"yield": true, "pest": true},
			remote:     client,
		}, nil

	case BackendNone:
		logger.Info().Msg("no model backend configured, all predictions use fallback values")
		return &Set{backend: opts.Backend, status: map[string]bool{"yield": false, "pest": false}}, nil

	default:
		return nil, fmt.Errorf("unknown model backend %q", opts.Backend)
	}
}

// Backend returns the backend name.
func (s *Set) Backend() string {
	return s.backend
}

// Predictors returns the engine predictors. Nil members become recommend.Unavailable.
func (s *Set) Predictors() recommend.Predictors {
	return s.predictors
}

// Status reports which predictors are model-backed. For the remote backend a
// predictor counts as backed only while the circuit is not open.
func (s *Set) Status() map[string]bool {
	out := make(map[string]bool, len(s.status))
	for k, v := range s.status {
		out[k] = v
	}
	if s.remote != nil && s.remote.BreakerState() == "open" {
		for k := range out {
			out[k] = false
		}
	}
	return out
}

// BreakerState returns the remote circuit state, or "" for non-remote backends.
func (s *Set) BreakerState() string {
	if s.remote == nil {
		return ""
	}
	return s.remote.BreakerState()
}
