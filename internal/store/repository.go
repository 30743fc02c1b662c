// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

// Package store persists records in BadgerDB and serves the timeseries of a
// userquake event.
//
// Layout:
//
//	rec:<id>                               -> JSON record
//	evt:<started_at>|<updated_at>|<id>     -> <id>   (code 9611 only)
//
// Timestamps in index keys are fixed-width UTC, so a prefix scan over
// evt:<started_at>| yields the event ordered by updated_at.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/quakescope/internal/config"
	"github.com/tomtom215/quakescope/internal/logging"
	"github.com/tomtom215/quakescope/internal/metrics"
	"github.com/tomtom215/quakescope/internal/models"
	"github.com/tomtom215/quakescope/internal/source"
	"github.com/tomtom215/quakescope/internal/validation"
)

const (
	recordKeyPrefix = "rec:"
	eventKeyPrefix  = "evt:"

	indexTimeLayout = "2006-01-02T15:04:05.000000000"

	// importBatchSize keeps a single import transaction well below badger's
	// transaction size limit.
	importBatchSize = 256
)

// Errors returned by the repository. They are the source package sentinels
// so callers can treat every Source alike.
var (
	ErrNotFound     = source.ErrNotFound
	ErrNotUserquake = source.ErrNotUserquake
	ErrInvalidID    = source.ErrInvalidID
)

// Repository stores records and answers timeseries queries.
type Repository struct {
	db     *badger.DB
	ownsDB bool
}

// Open opens the database described by cfg.
func Open(cfg *config.StoreConfig) (*Repository, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.Logger = newBadgerLogger()

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Repository{db: db, ownsDB: true}, nil
}

// New wraps an already open database. Close leaves db open.
func New(db *badger.DB) *Repository {
	return &Repository{db: db}
}

// Close closes the database if the repository opened it.
func (r *Repository) Close() error {
	if !r.ownsDB {
		return nil
	}
	return r.db.Close()
}

func recordKey(id string) []byte {
	return []byte(recordKeyPrefix + id)
}

func indexTime(ts models.Timestamp) string {
	return ts.UTC().Format(indexTimeLayout)
}

func eventPrefix(startedAt models.Timestamp) []byte {
	return []byte(eventKeyPrefix + indexTime(startedAt) + "|")
}

func eventKey(rec *models.Record) []byte {
	return []byte(eventKeyPrefix + indexTime(rec.FirstSeenAt) + "|" + indexTime(rec.ObservedAt) + "|" + rec.Identity())
}

// Put stores records, replacing any previous version with the same id.
func (r *Repository) Put(ctx context.Context, records ...models.Record) (err error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOperation("put", time.Since(start), err) }()

	for i := range records {
		if records[i].Identity() == "" || strings.Contains(records[i].Identity(), "|") {
			return fmt.Errorf("record %d: %w", i, ErrInvalidID)
		}
	}

	return r.db.Update(func(txn *badger.Txn) error {
		for i := range records {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := putRecord(txn, &records[i]); err != nil {
				return fmt.Errorf("put %s: %w", records[i].Identity(), err)
			}
		}
		return nil
	})
}

func putRecord(txn *badger.Txn, rec *models.Record) error {
	prev, err := getRecord(txn, rec.Identity())
	switch {
	case err == nil:
		if prev.Code == models.CodeUserquake {
			if err := txn.Delete(eventKey(prev)); err != nil {
				return fmt.Errorf("delete stale index: %w", err)
			}
		}
	case !errors.Is(err, ErrNotFound):
		return err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := txn.Set(recordKey(rec.Identity()), data); err != nil {
		return fmt.Errorf("set record: %w", err)
	}
	if rec.Code == models.CodeUserquake {
		if err := txn.Set(eventKey(rec), []byte(rec.Identity())); err != nil {
			return fmt.Errorf("set index: %w", err)
		}
	}
	return nil
}

func getRecord(txn *badger.Txn, id string) (*models.Record, error) {
	item, err := txn.Get(recordKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	var rec models.Record
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	}); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return &rec, nil
}

// Get returns the record with id.
func (r *Repository) Get(_ context.Context, id string) (*models.Record, error) {
	var rec *models.Record
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		rec, err = getRecord(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Timeseries returns every userquake record sharing the started_at of the
// record id, ordered by updated_at. The record itself must be a userquake
// record.
func (r *Repository) Timeseries(ctx context.Context, id string) (records []models.Record, err error) {
	start := time.Now()
	defer func() {
		if !source.IsLookupError(err) {
			metrics.RecordStoreOperation("timeseries", time.Since(start), err)
		}
	}()

	if validation.ValidateVar(id, "required,objectid") != nil {
		return nil, ErrInvalidID
	}

	err = r.db.View(func(txn *badger.Txn) error {
		head, err := getRecord(txn, id)
		if err != nil {
			return err
		}
		if head.Code != models.CodeUserquake {
			return ErrNotUserquake
		}

		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := eventPrefix(head.FirstSeenAt)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var memberID string
			if err := it.Item().Value(func(val []byte) error {
				memberID = string(val)
				return nil
			}); err != nil {
				return fmt.Errorf("read index: %w", err)
			}
			rec, err := getRecord(txn, memberID)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", memberID, err)
			}
			records = append(records, *rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Fetch implements source.Source.
func (r *Repository) Fetch(ctx context.Context, objectID string) ([]models.Record, error) {
	start := time.Now()
	records, err := r.Timeseries(ctx, objectID)
	metrics.RecordSourceFetch("local", time.Since(start), len(records), err)
	if err != nil {
		if !source.IsLookupError(err) {
			logging.Ctx(ctx).Error().Err(err).Str("object_id", objectID).Msg("Timeseries query failed")
		}
		return nil, err
	}
	return records, nil
}

// Import reads a JSON array of records and stores them. It returns the
// number of records stored.
func (r *Repository) Import(ctx context.Context, rd io.Reader) (int, error) {
	var records []models.Record
	if err := json.NewDecoder(rd).Decode(&records); err != nil {
		return 0, fmt.Errorf("decode records: %w", err)
	}

	stored := 0
	for len(records) > 0 {
		n := min(importBatchSize, len(records))
		if err := r.Put(ctx, records[:n]...); err != nil {
			return stored, err
		}
		stored += n
		records = records[n:]
	}
	return stored, nil
}

// ImportFile imports the JSON array in path.
func (r *Repository) ImportFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return 0, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	n, err := r.Import(ctx, f)
	if err != nil {
		return n, fmt.Errorf("import %s: %w", path, err)
	}
	logging.Info().Str("path", path).Int("records", n).Msg("Imported seed records")
	return n, nil
}

// Count returns the number of stored records.
func (r *Repository) Count() (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(recordKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
