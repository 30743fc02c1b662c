// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

/*
Package services provides suture.Service wrappers for Quakescope components.

Each wrapper translates a component lifecycle into suture's
Serve(ctx) error pattern and names itself through fmt.Stringer so suture
log lines identify it.

# Available Services

HTTP Server (HTTPServerService):
  - Binds the listen address inside Serve, serves *http.Server until ctx is
    canceled, then Shutdown with its own deadline
  - Addr reports the bound address (useful with port 0)

WebSocket Hub (WebSocketHubService):
  - Delegates to websocket.Hub.RunWithContext

Timeline Sessions (TimelineSessionsService):
  - Closes every open timeline when the tree shuts down so schedulers stop
    ticking before the hub goes away

Seed Import (SeedImportService):
  - Imports the configured seed file into the record repository once
  - A missing seed file is permanent (suture.ErrDoNotRestart); other
    failures are retried with suture's backoff. Imports are idempotent.

# Return Values

  - ctx.Err() on graceful shutdown
  - a wrapped error to request a restart
  - suture.ErrDoNotRestart when retrying cannot help
*/
package services
