// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

/*
Package assets resolves and preloads the estimate image of every record in a
timeline.

Each record identity maps to one image locator:

	<cdn-base>?id=<identity>&suffix=<suffix>

A Cache issues one Loader.Load per distinct identity during a single preload
pass and signals completion only after every request has settled, successful
or not. Lookups never block and never fail for a record with an identity:
a record whose asset was not loaded falls back to its synthesized locator.

Loaders:
  - HTTPLoader: GET against the CDN, rate limited and behind a circuit breaker
  - StaticLoader: resolves locators without network access
*/
package assets
