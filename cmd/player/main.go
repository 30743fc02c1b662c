// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

// Package main is the Quakescope terminal player.
//
// It loads the records of one userquake event from a Quakescope server and
// plays them back locally:
//
//	quakescope-player --source-url http://localhost:8611 --object-id 65a1 --speed 5
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/tomtom215/quakescope/internal/assets"
	"github.com/tomtom215/quakescope/internal/config"
	"github.com/tomtom215/quakescope/internal/logging"
	"github.com/tomtom215/quakescope/internal/playback"
	"github.com/tomtom215/quakescope/internal/source"
	"github.com/tomtom215/quakescope/internal/tui"
)

// Build-time variables (set via ldflags)
var version = "dev"

func main() {
	_ = godotenv.Load()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("quakescope-player"),
		kong.Description("Play back a userquake timeline in the terminal."),
		kong.UsageOnError(),
		kongVars(),
	)

	if err := run(context.Background(), &cli); err != nil {
		kctx.FatalIfErrorf(err)
	}
}

func run(ctx context.Context, cli *CLI) error {
	logOut, closeLog, err := logOutput(cli.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logging.Init(logging.Config{Level: cli.LogLevel, Format: "json", Timestamp: true, Output: logOut})

	src, err := source.NewHTTPSource(&config.SourceConfig{
		Kind:    config.SourceHTTP,
		URL:     cli.SourceURL,
		Timeout: cli.Timeout,
	})
	if err != nil {
		return err
	}

	records, err := src.Fetch(ctx, cli.ObjectID)
	if err != nil {
		return fmt.Errorf("load %s: %w", cli.ObjectID, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("load %s: no records", cli.ObjectID)
	}
	logging.Info().Str("object_id", cli.ObjectID).Int("records", len(records)).Msg("Records loaded")

	assetsCfg := config.AssetsConfig{
		CDNBase: cli.CDNBase,
		Suffix:  cli.Suffix,
		Preload: cli.Preload,
		Timeout: cli.Timeout,
	}
	cache := assets.NewCache(assets.NewLoader(&assetsCfg), assets.Locator{CDNBase: cli.CDNBase, Suffix: cli.Suffix})

	feed := tui.NewFrameFeed()
	sched := playback.NewScheduler(cache, feed, playback.Options{Speed: cli.Speed})
	defer sched.Close()
	sched.Load(records)

	model := tui.NewModel(cli.ObjectID, sched, feed, cli.Speeds)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("terminal player: %w", err)
	}
	return nil
}

// logOutput keeps logs off the terminal the player draws on.
func logOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
