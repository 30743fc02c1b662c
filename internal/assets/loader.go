// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/quakescope/internal/breaker"
	"github.com/tomtom215/quakescope/internal/config"
)

// maxAssetBytes bounds how much of an image body is read while warming.
const maxAssetBytes = 8 << 20

// HTTPLoader fetches assets from the CDN.
type HTTPLoader struct {
	client  *http.Client
	limiter *rate.Limiter
	cb      *breaker.Breaker[Asset]
}

// NewHTTPLoader creates a loader from the assets configuration.
// A non-positive RequestsPerSecond disables rate limiting.
func NewHTTPLoader(cfg *config.AssetsConfig) *HTTPLoader {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &HTTPLoader{
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, burst),
		cb:      breaker.New[Asset](breaker.DefaultSettings("asset-cdn")),
	}
}

// Load implements Loader. The body is drained so the response is cached by
// any intermediate proxy, then discarded.
func (l *HTTPLoader) Load(ctx context.Context, locator string) (Asset, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return Asset{}, fmt.Errorf("wait for rate limiter: %w", err)
	}
	return l.cb.Execute(func() (Asset, error) {
		return l.fetch(ctx, locator)
	})
}

func (l *HTTPLoader) fetch(ctx context.Context, locator string) (Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, http.NoBody)
	if err != nil {
		return Asset{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return Asset{}, fmt.Errorf("fetch asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Asset{}, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	n, err := io.Copy(io.Discard, io.LimitReader(resp.Body, maxAssetBytes))
	if err != nil {
		return Asset{}, fmt.Errorf("read asset: %w", err)
	}

	return Asset{
		Locator:     locator,
		ContentType: resp.Header.Get("Content-Type"),
		Size:        n,
	}, nil
}

// StaticLoader resolves every locator without network access.
type StaticLoader struct{}

// Load implements Loader.
func (StaticLoader) Load(_ context.Context, locator string) (Asset, error) {
	return Asset{Locator: locator}, nil
}

// NewLoader picks the loader for cfg.
func NewLoader(cfg *config.AssetsConfig) Loader {
	if !cfg.Preload {
		return StaticLoader{}
	}
	return NewHTTPLoader(cfg)
}
