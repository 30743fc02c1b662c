// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/alecthomas/kong"

	"github.com/tomtom215/quakescope/internal/config"
	"github.com/tomtom215/quakescope/internal/logging"
)

// CLI defines the command-line interface of the terminal player.
type CLI struct {
	SourceURL string        `name:"source-url" env:"SOURCE_URL" required:"" help:"Base URL of a Quakescope server (records come from <url>/api/timeseries/<id>)"`
	ObjectID  string        `name:"object-id" short:"o" required:"" help:"Record id of the userquake event to play"`
	Speed     float64       `short:"s" default:"1" help:"Initial speed multiplier"`
	Speeds    []float64     `default:"1,2,5,10,20" help:"Speed ladder for the +/- keys"`
	CDNBase   string        `name:"cdn-base" env:"CDN_BASE" default:"${cdn_base}" help:"Image endpoint"`
	Suffix    string        `default:"${asset_suffix}" help:"Image suffix parameter"`
	Preload   bool          `negatable:"" default:"true" help:"Fetch every image before playback starts"`
	Timeout   time.Duration `default:"10s" help:"Record source and image request timeout"`
	LogFile   string        `name:"log-file" help:"Write logs to this file (logs are discarded otherwise)"`
	LogLevel  string        `name:"log-level" default:"info" help:"Log level"`

	Version kong.VersionFlag `help:"Show version information"`
}

// Validate is called by kong after parsing.
func (c *CLI) Validate() error {
	if c.Speed <= 0 {
		return fmt.Errorf("--speed must be positive, got %v", c.Speed)
	}
	for _, s := range c.Speeds {
		if s <= 0 {
			return fmt.Errorf("--speeds entries must be positive, got %v", s)
		}
	}
	if !logging.ValidLevel(c.LogLevel) {
		return errors.New("--log-level must be one of trace, debug, info, warn, error")
	}
	return nil
}

func kongVars() kong.Vars {
	return kong.Vars{
		"version":      version,
		"cdn_base":     config.DefaultCDNBase,
		"asset_suffix": config.DefaultAssetSuffix,
	}
}
