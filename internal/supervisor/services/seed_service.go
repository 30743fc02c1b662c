// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/quakescope/internal/logging"
)

// SeedImporter matches *store.Repository.
type SeedImporter interface {
	ImportFile(ctx context.Context, path string) (int, error)
}

// SeedImportService imports a JSON array of records into the repository
// once, then idles until shutdown.
type SeedImportService struct {
	importer SeedImporter
	path     string
	name     string
	done     chan struct{}
}

// NewSeedImportService creates the service for the seed file at path.
func NewSeedImportService(importer SeedImporter, path string) *SeedImportService {
	return &SeedImportService{
		importer: importer,
		path:     path,
		name:     "seed-import",
		done:     make(chan struct{}),
	}
}

// Done is closed after the first successful import.
func (s *SeedImportService) Done() <-chan struct{} {
	return s.done
}

// Serve implements suture.Service.
func (s *SeedImportService) Serve(ctx context.Context) error {
	select {
	case <-s.done:
		// already imported before a restart
	default:
		if err := s.importOnce(ctx); err != nil {
			return err
		}
	}

	<-ctx.Done()
	return ctx.Err()
}

func (s *SeedImportService) importOnce(ctx context.Context) error {
	logger := logging.WithComponent("seed")
	start := time.Now()

	n, err := s.importer.ImportFile(ctx, s.path)
	if err != nil {
		if ctx.Err() != nil {
			logger.Info().Msg("Seed import canceled due to shutdown")
			return ctx.Err()
		}
		if errors.Is(err, fs.ErrNotExist) {
			logger.Error().Err(err).Str("path", s.path).Msg("Seed file not found")
			return fmt.Errorf("%w: seed file %s: %w", suture.ErrDoNotRestart, s.path, err)
		}
		return fmt.Errorf("seed import failed: %w", err)
	}

	logger.Info().
		Str("path", s.path).
		Int("records", n).
		Dur("duration", time.Since(start)).
		Msg("Seed import completed")
	close(s.done)
	return nil
}

// String implements fmt.Stringer for logging.
func (s *SeedImportService) String() string {
	return s.name
}
