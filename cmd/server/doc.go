// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

/*
Package main is the entry point for the Quakescope server.

Quakescope replays the time series of a userquake (felt report) estimate:
every record of one event is placed on a seconds axis and a scheduler steps
through it, rendering the regional confidence bands and the image of the
record in effect at each position. The server exposes the raw record series
and server-side timeline sessions whose frames stream over websockets.

# Application Architecture

	RootSupervisor ("quakescope")
	├── DataSupervisor ("data-layer")
	│   └── Seed import (optional, SEED_FILE)
	├── PlaybackSupervisor ("playback-layer")
	│   ├── WebSocket Hub (frame fan-out per timeline)
	│   └── Timeline sessions (closed on shutdown)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Initialization order:

 1. .env file (godotenv, optional)
 2. Configuration: Koanf v2 with defaults, config.yaml and environment
 3. Logging: zerolog
 4. Record repository: badger (on disk or in memory)
 5. Record source: the local repository or a remote /api/timeseries server,
    optionally behind a TTL cache
 6. Asset loader, session manager, websocket hub, chi router
 7. Supervisor tree, run until SIGINT or SIGTERM

# Configuration

Common environment variables:

	SOURCE_KIND=local|http   where timelines load records from
	SOURCE_URL               remote server base URL (SOURCE_KIND=http)
	CDN_BASE                 image endpoint
	BADGER_PATH              badger directory
	SEED_FILE          JSON array of records imported at startup
	HTTP_PORT                listen port (default 8611)
	LOG_LEVEL                trace..error

The log level is reloaded when the config file changes.

# Example Usage

	export SEED_FILE=./testdata/records.json
	./quakescope
	curl -X POST localhost:8611/api/v1/timelines -d '{"object_id":"65a1"}'
*/
package main
