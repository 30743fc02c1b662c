// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/quakescope/config.yaml",
	"/etc/quakescope/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Defaults shared with the terminal player.
const (
	DefaultCDNBase     = "https://cdn.p2pquake.net/app/web/userquake"
	DefaultAssetSuffix = "_trim"
)

func defaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Kind:     SourceLocal,
			URL:      "",
			Timeout:  10 * time.Second,
			CacheTTL: 30 * time.Second,
		},
		Assets: AssetsConfig{
			CDNBase:           DefaultCDNBase,
			Suffix:            DefaultAssetSuffix,
			Preload:           true,
			Timeout:           15 * time.Second,
			RequestsPerSecond: 50,
			Burst:             20,
		},
		Playback: PlaybackConfig{
			BaseInterval: time.Second,
			Speeds:       []float64{1, 2, 5, 10, 20},
			DefaultSpeed: 1,
			MaxTimelines: 100,
		},
		Store: StoreConfig{
			Path:     "/data/quakescope",
			InMemory: false,
			SeedFile: "",
		},
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8611,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     120,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration from defaults, an optional YAML file and
// the environment (ENV > file > defaults), then validates it.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// ConfigFile returns the config file LoadWithKoanf would read, or "".
func ConfigFile() string {
	return findConfigFile()
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"server.cors_origins",
	"playback.speeds",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to config paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	"source_kind":      "source.kind",
	"source_url":       "source.url",
	"source_timeout":   "source.timeout",
	"source_cache_ttl": "source.cache_ttl",

	"cdn_base":        "assets.cdn_base",
	"asset_suffix":    "assets.suffix",
	"asset_preload":   "assets.preload",
	"asset_timeout":   "assets.timeout",
	"asset_rps":       "assets.requests_per_second",
	"asset_rps_burst": "assets.burst",

	"playback_base_interval": "playback.base_interval",
	"playback_speeds":        "playback.speeds",
	"playback_default_speed": "playback.default_speed",
	"max_timelines":          "playback.max_timelines",

	"badger_path":      "store.path",
	"badger_in_memory": "store.in_memory",
	"seed_file":        "store.seed_file",

	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"cors_origins":          "server.cors_origins",
	"rate_limit_requests":   "server.rate_limit_reqs",
	"rate_limit_window":     "server.rate_limit_window",
	"disable_rate_limit":    "server.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to a koanf path.
//
//   - SOURCE_URL -> source.url
//   - CDN_BASE -> assets.cdn_base
//   - HTTP_PORT -> server.port
//   - PLAYBACK_SPEEDS -> playback.speeds
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// WatchConfigFile calls callback whenever path changes.
// The caller owns synchronization of any state the callback touches.
func WatchConfigFile(path string, callback func()) error {
	return file.Provider(path).Watch(func(_ interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
