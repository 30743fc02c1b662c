// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

/*
Package config loads and validates Quakescope configuration with Koanf v2.

Sources, lowest to highest priority:

 1. Built-in defaults
 2. YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml, /etc/quakescope/config.yaml
 3. Environment variables

Example config.yaml:

	source:
	  kind: http
	  url: https://quakescope.example
	  timeout: 10s
	assets:
	  cdn_base: https://cdn.p2pquake.net/app/web/userquake
	  suffix: _trim
	  preload: true
	playback:
	  base_interval: 1s
	  speeds: [1, 2, 5, 10, 20]
	  default_speed: 1
	store:
	  path: /data/quakescope
	  seed_file: /data/seed.json
	server:
	  port: 8611
	logging:
	  level: info
	  format: json

Environment Variables:

	SOURCE_KIND, SOURCE_URL, SOURCE_TIMEOUT, SOURCE_CACHE_TTL
	CDN_BASE, ASSET_SUFFIX, ASSET_PRELOAD, ASSET_TIMEOUT, ASSET_RPS, ASSET_RPS_BURST
	PLAYBACK_BASE_INTERVAL, PLAYBACK_SPEEDS (comma separated), PLAYBACK_DEFAULT_SPEED, MAX_TIMELINES
	BADGER_PATH, BADGER_IN_MEMORY, SEED_FILE
	HTTP_HOST, HTTP_PORT, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
	CORS_ORIGINS (comma separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Validation runs after loading; the first invalid setting is reported with the
name of its environment variable.
*/
package config
