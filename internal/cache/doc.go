// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

/*
Package cache provides a small generic, thread-safe key/value cache.

Two modes are supported:

  - Append-only (New): entries are never evicted. Timeline asset caches use
    this mode; one cache lives exactly as long as its timeline.
  - Expiring (NewWithTTL): entries expire a fixed duration after Set and are
    dropped on Get or Sweep. source.Cached uses this mode to short-circuit
    repeated timeseries lookups.

Usage Example:

	c := cache.New[string]()
	c.Set("5f1", "https://cdn.example/app?id=5f1&suffix=_trim")
	if locator, ok := c.Get("5f1"); ok {
	    fmt.Println(locator)
	}

	responses := cache.NewWithTTL[[]models.Record](30 * time.Second)
	responses.Set(id, records)

Statistics:

GetStats and HitRate expose hit, miss and eviction counters for logging and
metrics.

Thread Safety:

All methods are safe for concurrent use.
*/
package cache
