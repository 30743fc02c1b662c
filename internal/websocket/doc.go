// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

/*
Package websocket pushes rendered playback frames to browser clients.

The hub keeps one set of clients per topic. A topic is a timeline session
id: every frame the session's scheduler renders is published to its topic
and delivered to the clients watching that timeline only.

	┌──────────┐
	│   Hub    │ ← Publish(topic, type, data)
	└────┬─────┘
	     │ topic = timeline id
	┌────┴─────┬─────────┐
	│ Client1  │ Client2 │   (timeline A)
	└──────────┴─────────┘
	┌──────────┐
	│ Client3  │             (timeline B)
	└──────────┘

Each client has two goroutines:
  - readPump: reads client messages, answers "ping" with "pong"
  - writePump: writes queued messages and keeps the connection alive

Message types:

  - frame: a playback.Frame ({"type":"frame","topic":"…","data":{…}})
  - closed: the timeline was closed; the connection is closed after it
  - ping / pong: application-level keepalive

Slow clients whose queue is full are dropped rather than blocking the hub.
The hub runs under suture via RunWithContext; canceling the context closes
every client.
*/
package websocket
