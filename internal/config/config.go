// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package config

import (
	"fmt"
	"time"
)

// Source kinds.
const (
	SourceLocal = "local" // records served from the badger repository
	SourceHTTP  = "http"  // records fetched from a remote /api/timeseries endpoint
)

// Config holds all application configuration.
//
// Loading order (LoadWithKoanf):
//  1. Defaults (defaultConfig)
//  2. Optional YAML file (CONFIG_PATH, config.yaml, /etc/quakescope/config.yaml)
//  3. Environment variables (see envTransformFunc)
//
// Example:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	srv := &http.Server{Addr: cfg.Server.Addr()}
type Config struct {
	Source   SourceConfig   `koanf:"source"`
	Assets   AssetsConfig   `koanf:"assets"`
	Playback PlaybackConfig `koanf:"playback"`
	Store    StoreConfig    `koanf:"store"`
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// SourceConfig selects where timeline records come from.
type SourceConfig struct {
	// Kind is "local" (badger repository) or "http" (remote server).
	Kind string `koanf:"kind"`

	// URL is the base URL of the remote server; required when Kind is "http".
	// Records are fetched from <URL>/api/timeseries/<object id>.
	URL string `koanf:"url"`

	Timeout time.Duration `koanf:"timeout"`

	// CacheTTL caches /api/timeseries responses. Zero disables the cache.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// AssetsConfig controls image locators and preloading.
type AssetsConfig struct {
	// CDNBase is the image endpoint; locators are <CDNBase>?id=<id>&suffix=<Suffix>.
	CDNBase string `koanf:"cdn_base"`
	Suffix  string `koanf:"suffix"`

	// Preload issues a real GET per record when a timeline starts playing.
	// When false, preloading resolves locators without network access.
	Preload bool `koanf:"preload"`

	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
}

// PlaybackConfig controls the scheduler.
type PlaybackConfig struct {
	// BaseInterval is the tick period at speed 1.
	BaseInterval time.Duration `koanf:"base_interval"`

	// Speeds lists the accepted speed multipliers.
	Speeds       []float64 `koanf:"speeds"`
	DefaultSpeed float64   `koanf:"default_speed"`

	// MaxTimelines caps concurrently open timeline sessions (0 = unlimited).
	MaxTimelines int `koanf:"max_timelines"`
}

// AllowsSpeed reports whether multiplier is one of the configured speeds.
func (p PlaybackConfig) AllowsSpeed(multiplier float64) bool {
	for _, s := range p.Speeds {
		if s == multiplier {
			return true
		}
	}
	return false
}

// StoreConfig configures the badger record repository.
type StoreConfig struct {
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`

	// SeedFile is an optional JSON array of records imported at startup.
	SeedFile string `koanf:"seed_file"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig configures internal/logging.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}
