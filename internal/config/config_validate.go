// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/quakescope/internal/logging"
)

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateAssets(); err != nil {
		return err
	}
	if err := c.validatePlayback(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSource() error {
	switch c.Source.Kind {
	case SourceLocal:
	case SourceHTTP:
		if c.Source.URL == "" {
			return fmt.Errorf("SOURCE_URL is required when SOURCE_KIND=%s", SourceHTTP)
		}
		if err := validateHTTPURL(c.Source.URL, "SOURCE_URL"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("SOURCE_KIND must be %q or %q, got: %q", SourceLocal, SourceHTTP, c.Source.Kind)
	}

	if c.Source.Timeout <= 0 {
		return fmt.Errorf("SOURCE_TIMEOUT must be positive, got: %v", c.Source.Timeout)
	}
	if c.Source.CacheTTL < 0 {
		return fmt.Errorf("SOURCE_CACHE_TTL must not be negative, got: %v", c.Source.CacheTTL)
	}
	return nil
}

func (c *Config) validateAssets() error {
	if err := validateEndpointURL(c.Assets.CDNBase, "CDN_BASE"); err != nil {
		return err
	}
	if c.Assets.Timeout <= 0 {
		return fmt.Errorf("ASSET_TIMEOUT must be positive, got: %v", c.Assets.Timeout)
	}
	if c.Assets.RequestsPerSecond < 0 {
		return fmt.Errorf("ASSET_RPS must not be negative, got: %v", c.Assets.RequestsPerSecond)
	}
	if c.Assets.RequestsPerSecond > 0 && c.Assets.Burst < 1 {
		return fmt.Errorf("ASSET_RPS_BURST must be at least 1 when ASSET_RPS is set, got: %d", c.Assets.Burst)
	}
	return nil
}

func (c *Config) validatePlayback() error {
	if c.Playback.BaseInterval <= 0 {
		return fmt.Errorf("PLAYBACK_BASE_INTERVAL must be positive, got: %v", c.Playback.BaseInterval)
	}
	if len(c.Playback.Speeds) == 0 {
		return fmt.Errorf("PLAYBACK_SPEEDS must list at least one speed")
	}
	for _, s := range c.Playback.Speeds {
		if s <= 0 {
			return fmt.Errorf("PLAYBACK_SPEEDS must be positive, got: %v", s)
		}
	}
	if !c.Playback.AllowsSpeed(c.Playback.DefaultSpeed) {
		return fmt.Errorf("PLAYBACK_DEFAULT_SPEED %v is not one of PLAYBACK_SPEEDS %v", c.Playback.DefaultSpeed, c.Playback.Speeds)
	}
	if c.Playback.MaxTimelines < 0 {
		return fmt.Errorf("MAX_TIMELINES must not be negative, got: %d", c.Playback.MaxTimelines)
	}
	return nil
}

func (c *Config) validateStore() error {
	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("BADGER_PATH is required unless BADGER_IN_MEMORY=true")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got: %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT and HTTP_WRITE_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got: %v", c.Server.ShutdownTimeout)
	}
	if !c.Server.RateLimitDisabled {
		if c.Server.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got: %d", c.Server.RateLimitReqs)
		}
		if c.Server.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got: %v", c.Server.RateLimitWindow)
		}
	}
	return nil
}

// HasWildcardCORS reports whether any allowed origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, o := range c.Server.CORSOrigins {
		if strings.TrimSpace(o) == "*" {
			return true
		}
	}
	return false
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, panic, disabled; got: %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got: %q", c.Logging.Format)
	}
}
