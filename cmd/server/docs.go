// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

// General API information for swag. Regenerate docs/ with:
//
//	swag init -g cmd/server/docs.go -o docs --parseInternal
//
// @title Quakescope API
// @version 1.0
// @description Userquake timeline playback: record timeseries, single records with
// @description relative confidence bands, and server-side timelines whose frames are
// @description pushed over websockets.
// @description
// @description Every JSON response except /api/timeseries/{id} uses the envelope
// @description {"status", "data", "metadata", "error"}.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/quakescope/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
// @schemes http https
//
// @tag.name records
// @tag.description Raw timeseries and single userquake records
//
// @tag.name timelines
// @tag.description Timeline sessions
//
// @tag.name playback
// @tag.description Playback controls and the frame stream
//
// @tag.name health
// @tag.description Health probes
package main
