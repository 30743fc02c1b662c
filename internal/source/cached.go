// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package source

import (
	"context"
	"time"

	"github.com/tomtom215/quakescope/internal/cache"
	"github.com/tomtom215/quakescope/internal/models"
)

// sweepThreshold is the entry count above which Fetch drops expired entries.
const sweepThreshold = 256

// Cached memoizes successful fetches of another Source for a fixed TTL.
// Errors are never cached.
type Cached struct {
	next  Source
	cache *cache.Cache[[]models.Record]
}

// NewCached wraps next. A non-positive ttl returns next unchanged.
func NewCached(next Source, ttl time.Duration) Source {
	if ttl <= 0 {
		return next
	}
	return &Cached{next: next, cache: cache.NewWithTTL[[]models.Record](ttl)}
}

// Fetch implements Source. Callers receive their own copy of the slice.
func (c *Cached) Fetch(ctx context.Context, objectID string) ([]models.Record, error) {
	if records, ok := c.cache.Get(objectID); ok {
		return copyRecords(records), nil
	}
	records, err := c.next.Fetch(ctx, objectID)
	if err != nil {
		return nil, err
	}
	c.cache.Set(objectID, copyRecords(records))
	if c.cache.Len() > sweepThreshold {
		c.cache.Sweep()
	}
	return records, nil
}

// Stats exposes the cache statistics.
func (c *Cached) Stats() cache.Stats {
	return c.cache.GetStats()
}

func copyRecords(records []models.Record) []models.Record {
	out := make([]models.Record, len(records))
	copy(out, records)
	return out
}
