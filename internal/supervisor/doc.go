// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

/*
Package supervisor provides process supervision for Harvestwise using suture v4.

Long-running components are organized into two layers:

	RootSupervisor ("harvestwise")
	├── ModelSupervisor ("model-layer")
	│   └── ModelMonitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's decaying failure counter. Supervisor
events are logged through sutureslog, which writes to the zerolog logger via
logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddModelService(services.NewModelMonitorService(set, services.ModelMonitorConfig{}))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    log.Error().Err(err).Msg("Supervisor stopped")
	}

If services do not stop within ShutdownTimeout, UnstoppedServiceReport
names them.
*/
package supervisor
