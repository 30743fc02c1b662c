// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

// Package session manages the open timelines of the server. Each timeline
// owns its scheduler and asset cache; frames it renders are published to the
// websocket topic named after the timeline id.
package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/quakescope/internal/assets"
	"github.com/tomtom215/quakescope/internal/config"
	"github.com/tomtom215/quakescope/internal/logging"
	"github.com/tomtom215/quakescope/internal/metrics"
	"github.com/tomtom215/quakescope/internal/playback"
	"github.com/tomtom215/quakescope/internal/source"
	"github.com/tomtom215/quakescope/internal/websocket"
)

var (
	// ErrNotFound is returned for unknown timeline ids.
	ErrNotFound = errors.New("timeline not found")

	// ErrLimitReached is returned when MaxTimelines are already open.
	ErrLimitReached = errors.New("too many open timelines")

	// ErrNoRecords is returned when the source has no records for the id.
	ErrNoRecords = errors.New("no records for timeline")

	// ErrInvalidSpeed is returned for a speed outside the configured set.
	ErrInvalidSpeed = errors.New("unsupported speed")
)

// Publisher delivers frames to the watchers of a timeline.
type Publisher interface {
	Publish(topic, messageType string, data interface{}) bool
	CloseTopic(topic string)
}

// Options configures a Manager.
type Options struct {
	Loader    assets.Loader
	Locator   assets.Locator
	Playback  config.PlaybackConfig
	Publisher Publisher

	// Clock overrides the playback clock; nil uses real time.
	Clock playback.Clock
}

// Timeline is one open playback session.
type Timeline struct {
	ID        string
	ObjectID  string
	CreatedAt time.Time

	scheduler *playback.Scheduler
}

// Scheduler returns the timeline's scheduler.
func (t *Timeline) Scheduler() *playback.Scheduler {
	return t.scheduler
}

// Snapshot describes a timeline for API responses.
type Snapshot struct {
	ID        string    `json:"id"`
	ObjectID  string    `json:"object_id"`
	CreatedAt time.Time `json:"created_at"`
	playback.Snapshot
}

// Snapshot returns the current state of the timeline.
func (t *Timeline) Snapshot() Snapshot {
	return Snapshot{
		ID:        t.ID,
		ObjectID:  t.ObjectID,
		CreatedAt: t.CreatedAt,
		Snapshot:  t.scheduler.Snapshot(),
	}
}

// Manager tracks open timelines.
type Manager struct {
	source source.Source
	opts   Options

	mu        sync.RWMutex
	timelines map[string]*Timeline
}

// NewManager creates a manager that loads records from src.
func NewManager(src source.Source, opts Options) *Manager {
	if opts.Loader == nil {
		opts.Loader = assets.StaticLoader{}
	}
	return &Manager{
		source:    src,
		opts:      opts,
		timelines: make(map[string]*Timeline),
	}
}

// ValidSpeed reports whether multiplier may be used for playback.
// With no configured speed set any positive multiplier is accepted.
func (m *Manager) ValidSpeed(multiplier float64) bool {
	if multiplier <= 0 {
		return false
	}
	if len(m.opts.Playback.Speeds) == 0 {
		return true
	}
	return m.opts.Playback.AllowsSpeed(multiplier)
}

// Create fetches the records of objectID and opens a timeline over them.
// A speed of 0 selects the configured default. If the source fails no
// timeline is created.
func (m *Manager) Create(ctx context.Context, objectID string, speed float64) (*Timeline, error) {
	if speed == 0 {
		speed = m.opts.Playback.DefaultSpeed
	}
	if speed != 0 && !m.ValidSpeed(speed) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpeed, speed)
	}
	if m.full() {
		return nil, ErrLimitReached
	}

	records, err := m.source.Fetch(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	tl := &Timeline{
		ID:        uuid.New().String(),
		ObjectID:  objectID,
		CreatedAt: time.Now().UTC(),
	}
	logger := logging.WithComponent("timeline").With().Str("timeline_id", tl.ID).Str("object_id", objectID).Logger()

	cache := assets.NewCache(m.opts.Loader, m.opts.Locator)
	tl.scheduler = playback.NewScheduler(cache, m.sinkFor(tl.ID), playback.Options{
		BaseInterval: m.opts.Playback.BaseInterval,
		Speed:        speed,
		Clock:        m.opts.Clock,
		Logger:       &logger,
	})

	m.mu.Lock()
	if limit := m.opts.Playback.MaxTimelines; limit > 0 && len(m.timelines) >= limit {
		m.mu.Unlock()
		tl.scheduler.Close()
		return nil, ErrLimitReached
	}
	m.timelines[tl.ID] = tl
	count := len(m.timelines)
	m.mu.Unlock()

	tl.scheduler.Load(records)
	metrics.ActiveTimelines.Set(float64(count))

	logging.Ctx(logging.ContextWithTimelineID(ctx, tl.ID)).Info().
		Str("object_id", objectID).
		Int("records", len(records)).
		Msg("Timeline created")
	return tl, nil
}

func (m *Manager) full() bool {
	limit := m.opts.Playback.MaxTimelines
	if limit <= 0 {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.timelines) >= limit
}

func (m *Manager) sinkFor(id string) playback.Sink {
	if m.opts.Publisher == nil {
		return nil
	}
	pub := m.opts.Publisher
	return playback.SinkFunc(func(frame playback.Frame) {
		pub.Publish(id, websocket.MessageTypeFrame, frame)
	})
}

// Get returns the timeline with id.
func (m *Manager) Get(id string) (*Timeline, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tl, ok := m.timelines[id]
	if !ok {
		return nil, ErrNotFound
	}
	return tl, nil
}

// Close stops and removes the timeline with id and disconnects its watchers.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	tl, ok := m.timelines[id]
	if ok {
		delete(m.timelines, id)
	}
	count := len(m.timelines)
	m.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	tl.scheduler.Close()
	if m.opts.Publisher != nil {
		m.opts.Publisher.CloseTopic(id)
	}
	metrics.ActiveTimelines.Set(float64(count))
	logging.Info().Str("timeline_id", id).Msg("Timeline closed")
	return nil
}

// CloseAll closes every timeline. Used on shutdown.
func (m *Manager) CloseAll() {
	for _, snap := range m.List() {
		_ = m.Close(snap.ID)
	}
}

// Count returns the number of open timelines.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.timelines)
}

// List returns snapshots of every open timeline, oldest first.
func (m *Manager) List() []Snapshot {
	m.mu.RLock()
	timelines := make([]*Timeline, 0, len(m.timelines))
	for _, tl := range m.timelines {
		timelines = append(timelines, tl)
	}
	m.mu.RUnlock()

	sort.Slice(timelines, func(i, j int) bool {
		if timelines[i].CreatedAt.Equal(timelines[j].CreatedAt) {
			return timelines[i].ID < timelines[j].ID
		}
		return timelines[i].CreatedAt.Before(timelines[j].CreatedAt)
	})
	out := make([]Snapshot, len(timelines))
	for i, tl := range timelines {
		out[i] = tl.Snapshot()
	}
	return out
}
