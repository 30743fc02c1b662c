// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	_ "github.com/tomtom215/quakescope/docs" // swagger spec served at /swagger/
	"github.com/tomtom215/quakescope/internal/api"
	"github.com/tomtom215/quakescope/internal/assets"
	"github.com/tomtom215/quakescope/internal/config"
	"github.com/tomtom215/quakescope/internal/logging"
	"github.com/tomtom215/quakescope/internal/session"
	"github.com/tomtom215/quakescope/internal/source"
	"github.com/tomtom215/quakescope/internal/store"
	"github.com/tomtom215/quakescope/internal/supervisor"
	"github.com/tomtom215/quakescope/internal/supervisor/services"
	ws "github.com/tomtom215/quakescope/internal/websocket"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("source_kind", cfg.Source.Kind).
		Str("store_path", cfg.Store.Path).
		Bool("store_in_memory", cfg.Store.InMemory).
		Str("version", api.Version).
		Msg("Starting Quakescope")

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS is configured with wildcard origin (CORS_ORIGINS=*)")
	}
	if cfg.Server.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	repo, err := store.Open(&cfg.Store)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open record repository")
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing record repository")
		}
	}()

	src, err := newSource(cfg, repo)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create record source")
	}

	wsHub := ws.NewHub()
	sessions := session.NewManager(src, session.Options{
		Loader:    assets.NewLoader(&cfg.Assets),
		Locator:   assets.Locator{CDNBase: cfg.Assets.CDNBase, Suffix: cfg.Assets.Suffix},
		Playback:  cfg.Playback,
		Publisher: wsHub,
	})

	handler := api.NewHandler(src, sessions, wsHub, cfg)
	handler.SetRecordReader(repo)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Server))

	server := &http.Server{
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Store.SeedFile != "" {
		tree.AddDataService(services.NewSeedImportService(repo, cfg.Store.SeedFile))
		logging.Info().Str("file", cfg.Store.SeedFile).Msg("Seed import added to supervisor tree")
	}
	tree.AddPlaybackService(services.NewWebSocketHubService(wsHub))
	tree.AddPlaybackService(services.NewTimelineSessionsService(sessions))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout))

	watchConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}
	stop()

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// newSource picks the record source for cfg.Source.Kind.
func newSource(cfg *config.Config, repo *store.Repository) (source.Source, error) {
	var src source.Source = repo
	if cfg.Source.Kind == config.SourceHTTP {
		remote, err := source.NewHTTPSource(&cfg.Source)
		if err != nil {
			return nil, err
		}
		src = remote
		logging.Info().Str("url", cfg.Source.URL).Msg("Using remote record source")
	}

	if cfg.Source.CacheTTL > 0 {
		src = source.NewCached(src, cfg.Source.CacheTTL)
		logging.Info().Dur("ttl", cfg.Source.CacheTTL).Msg("Record source cache enabled")
	}
	return src, nil
}

// watchConfig reloads the log level when the config file changes.
func watchConfig() {
	path := config.ConfigFile()
	if path == "" {
		return
	}
	err := config.WatchConfigFile(path, func() {
		cfg, err := config.LoadWithKoanf()
		if err != nil {
			logging.Warn().Err(err).Msg("Ignoring invalid config change")
			return
		}
		logging.SetLevelString(cfg.Logging.Level)
		logging.Info().Str("level", cfg.Logging.Level).Msg("Log level reloaded")
	})
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Config file watch disabled")
	}
}
