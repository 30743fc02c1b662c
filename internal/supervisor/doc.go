// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

/*
Package supervisor runs the server's long-lived components under a suture v4
supervisor tree.

The tree has three layers, each its own child supervisor so a crash in one
does not restart the others:

	quakescope (root)
	├── data-layer      seed import into the badger repository
	├── playback-layer  websocket hub, timeline sessions
	└── api-layer       HTTP server

Supervisor events (service panics, restarts, backoff) are logged through
sutureslog using the slog adapter from internal/logging.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewSeedImportService(repo, cfg.Store.SeedFile))
	tree.AddPlaybackService(services.NewWebSocketHubService(hub))
	tree.AddPlaybackService(services.NewTimelineSessionsService(sessions))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx) // returns when ctx is canceled

See internal/supervisor/services for the wrappers.
*/
package supervisor
