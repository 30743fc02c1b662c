// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateConfig points CONFIG_PATH at a file that does not exist and moves
// the working directory to an empty temp dir, so no real config is picked up.
func isolateConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	t.Chdir(dir)
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Source.Kind != SourceLocal {
		t.Errorf("Source.Kind = %q, want local", cfg.Source.Kind)
	}
	if cfg.Assets.CDNBase != DefaultCDNBase || cfg.Assets.Suffix != DefaultAssetSuffix {
		t.Errorf("Assets = %+v", cfg.Assets)
	}
	if cfg.Playback.BaseInterval != time.Second {
		t.Errorf("Playback.BaseInterval = %v, want 1s", cfg.Playback.BaseInterval)
	}
	if !cfg.Playback.AllowsSpeed(1) || !cfg.Playback.AllowsSpeed(20) || cfg.Playback.AllowsSpeed(3) {
		t.Errorf("unexpected default speeds %v", cfg.Playback.Speeds)
	}
	if cfg.Server.Port != 8611 {
		t.Errorf("Server.Port = %d, want 8611", cfg.Server.Port)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := map[string]string{
		"SOURCE_URL":      "source.url",
		"CDN_BASE":        "assets.cdn_base",
		"PLAYBACK_SPEEDS": "playback.speeds",
		"HTTP_PORT":       "server.port",
		"log_level":       "logging.level",
		"HOME":            "",
		"PATH":            "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolateConfig(t)

	t.Setenv("SOURCE_KIND", "http")
	t.Setenv("SOURCE_URL", "https://quake.example")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PLAYBACK_SPEEDS", "1, 4, 8")
	t.Setenv("PLAYBACK_DEFAULT_SPEED", "4")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("ASSET_TIMEOUT", "3s")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Source.Kind != SourceHTTP || cfg.Source.URL != "https://quake.example" {
		t.Errorf("Source = %+v", cfg.Source)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.Playback.Speeds) != 3 || cfg.Playback.Speeds[1] != 4 || cfg.Playback.DefaultSpeed != 4 {
		t.Errorf("Playback = %+v", cfg.Playback)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v", cfg.Server.CORSOrigins)
	}
	if cfg.Assets.Timeout != 3*time.Second {
		t.Errorf("Assets.Timeout = %v, want 3s", cfg.Assets.Timeout)
	}
	// Defaults still apply for unset values.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want default", cfg.Server.Host)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	isolateConfig(t)

	content := `
source:
  kind: local
store:
  in_memory: true
  path: ""
  seed_file: /tmp/seed.json
server:
  port: 8888
  host: 127.0.0.1
logging:
  level: warn
playback:
  speeds: [1, 2]
  default_speed: 2
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if !cfg.Store.InMemory || cfg.Store.SeedFile != "/tmp/seed.json" {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if cfg.Server.Port != 8888 || cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if len(cfg.Playback.Speeds) != 2 || cfg.Playback.DefaultSpeed != 2 {
		t.Errorf("Playback = %+v", cfg.Playback)
	}
	if ConfigFile() != path {
		t.Errorf("ConfigFile() = %q, want %q", ConfigFile(), path)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7000\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7001")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7001 {
		t.Errorf("Server.Port = %d, want env override 7001", cfg.Server.Port)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"http source without url", map[string]string{"SOURCE_KIND": "http"}, "SOURCE_URL is required"},
		{"unknown source kind", map[string]string{"SOURCE_KIND": "mongo"}, "SOURCE_KIND"},
		{"source url with path", map[string]string{"SOURCE_KIND": "http", "SOURCE_URL": "https://x.example/api"}, "base URL only"},
		{"bad cdn scheme", map[string]string{"CDN_BASE": "ftp://cdn.example/x"}, "CDN_BASE scheme"},
		{"default speed not allowed", map[string]string{"PLAYBACK_DEFAULT_SPEED": "3"}, "PLAYBACK_DEFAULT_SPEED"},
		{"negative speed", map[string]string{"PLAYBACK_SPEEDS": "1,-2", "PLAYBACK_DEFAULT_SPEED": "1"}, "PLAYBACK_SPEEDS"},
		{"bad port", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfig(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestHasWildcardCORS(t *testing.T) {
	cfg := defaultConfig()
	if !cfg.HasWildcardCORS() {
		t.Error("default CORS should be wildcard")
	}
	cfg.Server.CORSOrigins = []string{"https://a.example"}
	if cfg.HasWildcardCORS() {
		t.Error("explicit origin list should not be wildcard")
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8611}
	if got := s.Addr(); got != "127.0.0.1:8611" {
		t.Errorf("Addr() = %q", got)
	}
}
