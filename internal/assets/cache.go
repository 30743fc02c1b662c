// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package assets

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/quakescope/internal/cache"
	"github.com/tomtom215/quakescope/internal/logging"
	"github.com/tomtom215/quakescope/internal/metrics"
	"github.com/tomtom215/quakescope/internal/models"
)

// Asset is a loaded image handle.
type Asset struct {
	Locator     string `json:"locator"`
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size,omitempty"`
}

// Loader fetches the asset at locator.
type Loader interface {
	Load(ctx context.Context, locator string) (Asset, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, locator string) (Asset, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, locator string) (Asset, error) {
	return f(ctx, locator)
}

// Cache holds the assets of one timeline. Entries are only ever added, by
// the single preload pass the cache allows.
type Cache struct {
	loader  Loader
	locator Locator

	entries *cache.Cache[Asset]

	mu       sync.Mutex
	done     chan struct{} // nil until the first Preload
	finished bool
}

// NewCache creates an empty cache.
func NewCache(loader Loader, locator Locator) *Cache {
	return &Cache{
		loader:  loader,
		locator: locator,
		entries: cache.New[Asset](),
	}
}

// Preload loads the asset of every record with an identity. The returned
// channel is closed once every load has settled.
//
// Calling Preload again while a pass is in flight returns the same channel;
// calling it after completion returns the already-closed channel and issues
// no requests.
func (c *Cache) Preload(ctx context.Context, records []models.Record) <-chan struct{} {
	c.mu.Lock()
	if c.done != nil {
		done := c.done
		c.mu.Unlock()
		return done
	}
	c.done = make(chan struct{})
	done := c.done
	c.mu.Unlock()

	ids := distinctIdentities(records)
	go c.run(ctx, ids, done)
	return done
}

func (c *Cache) run(ctx context.Context, ids []string, done chan struct{}) {
	start := time.Now()
	logger := logging.Ctx(ctx)

	var (
		wg     sync.WaitGroup
		failed int
		failMu sync.Mutex
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			locator := c.locator.For(id)
			asset, err := c.loader.Load(ctx, locator)
			metrics.RecordAssetLoad(err)
			if err != nil {
				failMu.Lock()
				failed++
				failMu.Unlock()
				logger.Warn().Err(err).Str("identity", id).Msg("Failed to preload asset")
				return
			}
			if asset.Locator == "" {
				asset.Locator = locator
			}
			c.entries.Set(id, asset)
		}(id)
	}
	wg.Wait()

	c.mu.Lock()
	c.finished = true
	c.mu.Unlock()

	elapsed := time.Since(start)
	metrics.AssetPreloadDuration.Observe(elapsed.Seconds())
	logger.Debug().
		Int("assets", len(ids)).
		Int("failed", failed).
		Dur("duration", elapsed).
		Msg("Asset preload complete")
	close(done)
}

func distinctIdentities(records []models.Record) []string {
	seen := make(map[string]struct{}, len(records))
	ids := make([]string, 0, len(records))
	for i := range records {
		id := records[i].Identity()
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Lookup returns the locator to display for record. A preloaded asset wins;
// otherwise the synthesized locator is returned and the cache is left as is.
// ok is false only when the record has no identity.
func (c *Cache) Lookup(record *models.Record) (locator string, ok bool) {
	if record == nil || record.Identity() == "" {
		metrics.AssetLookups.WithLabelValues("missing").Inc()
		return "", false
	}
	id := record.Identity()

	asset, hit := c.entries.Get(id)

	if hit {
		metrics.AssetLookups.WithLabelValues("hit").Inc()
		return asset.Locator, true
	}
	metrics.AssetLookups.WithLabelValues("fallback").Inc()
	return c.locator.For(id), true
}

// Busy reports whether a preload pass is in flight.
func (c *Cache) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done != nil && !c.finished
}

// Preloaded reports whether the preload pass has completed.
func (c *Cache) Preloaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.finished
}

// Len returns the number of loaded assets.
func (c *Cache) Len() int {
	return c.entries.Len()
}
