// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package playback

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/quakescope/internal/assets"
	"github.com/tomtom215/quakescope/internal/confidence"
	"github.com/tomtom215/quakescope/internal/logging"
	"github.com/tomtom215/quakescope/internal/metrics"
	"github.com/tomtom215/quakescope/internal/models"
	"github.com/tomtom215/quakescope/internal/timeline"
)

// DefaultBaseInterval is the tick period at speed 1: one record-second per
// wall-clock second.
const DefaultBaseInterval = time.Second

// Options configures a Scheduler. Zero values select defaults.
type Options struct {
	BaseInterval time.Duration
	Speed        float64
	Clock        Clock
	Names        confidence.Namer
	Logger       *zerolog.Logger
}

// Scheduler owns the playback state of one timeline.
type Scheduler struct {
	cache *assets.Cache
	sink  Sink
	clock Clock
	names confidence.Namer
	base  time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	logger zerolog.Logger

	mu        sync.Mutex
	store     *timeline.Store
	state     State
	position  int
	speed     float64
	gen       uint64
	ticker    Ticker
	stopTick  chan struct{}
	lastFrame *Frame
	closed    bool
}

// NewScheduler creates an Idle scheduler.
func NewScheduler(cache *assets.Cache, sink Sink, opts Options) *Scheduler {
	if opts.BaseInterval <= 0 {
		opts.BaseInterval = DefaultBaseInterval
	}
	if opts.Speed <= 0 {
		opts.Speed = 1
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Names == nil {
		opts.Names = confidence.Regions
	}
	if sink == nil {
		sink = SinkFunc(func(Frame) {})
	}
	logger := logging.WithComponent("playback")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	ctx, cancel := context.WithCancel(logging.ContextWithLogger(context.Background(), logger))
	return &Scheduler{
		cache:  cache,
		sink:   sink,
		clock:  opts.Clock,
		names:  opts.Names,
		base:   opts.BaseInterval,
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
		state:  Idle,
		speed:  opts.Speed,
	}
}

// Load populates the record store and renders the last position. It returns
// false, leaving the scheduler Idle, when records is empty or a store was
// already loaded.
func (s *Scheduler) Load(records []models.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.store != nil || len(records) == 0 {
		return false
	}
	s.store = timeline.NewStore(records)
	s.position = s.store.Window().DurationSeconds
	s.setStateLocked(Paused)
	s.renderLocked()

	s.logger.Debug().
		Int("records", s.store.Len()).
		Int("duration_seconds", s.position).
		Time("anchor", s.store.Window().Anchor).
		Msg("Timeline loaded")
	return true
}

// Play starts or resumes playback. It is ignored while assets are being
// preloaded, when nothing is loaded, when the store holds at most one
// record, and while already playing.
func (s *Scheduler) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playLocked()
}

func (s *Scheduler) playLocked() {
	if s.closed || s.store == nil || s.state == Playing || s.state == Preloading {
		return
	}
	if s.cache.Busy() {
		return
	}
	if s.store.Len() <= 1 {
		return
	}

	if s.cache.Preloaded() {
		s.startLocked()
		return
	}

	s.setStateLocked(Preloading)
	s.renderLocked()

	gen := s.gen
	done := s.cache.Preload(s.ctx, s.store.Records())
	go func() {
		select {
		case <-done:
			s.preloadComplete(gen)
		case <-s.ctx.Done():
		}
	}()
}

// preloadComplete starts playback unless the preload was superseded by a
// pause or seek in the meantime.
func (s *Scheduler) preloadComplete(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.gen != gen || s.state != Preloading {
		return
	}
	s.startLocked()
}

// startLocked rewinds when at the end and starts the timer.
func (s *Scheduler) startLocked() {
	if s.position >= s.store.Window().DurationSeconds {
		s.position = 0
	}
	s.startTimerLocked()
	s.setStateLocked(Playing)
	s.renderLocked()
}

// Pause stops playback and keeps the position. Pausing while preloading
// cancels the pending start; the preload itself runs to completion.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Playing && s.state != Preloading {
		return
	}
	s.stopTimerLocked()
	s.setStateLocked(Paused)
	s.renderLocked()
}

// Toggle pauses when playing or preloading and plays otherwise.
func (s *Scheduler) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Playing || s.state == Preloading {
		s.stopTimerLocked()
		s.setStateLocked(Paused)
		s.renderLocked()
		return
	}
	s.playLocked()
}

// Seek stops any playback, moves to seconds (clamped to the window) and
// renders. It never resumes playback.
func (s *Scheduler) Seek(seconds int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.store == nil {
		return
	}
	s.stopTimerLocked()
	s.position = s.store.Window().Clamp(seconds)
	s.setStateLocked(Paused)
	s.renderLocked()
}

// SetSpeed changes the speed multiplier. While playing the timer is
// replaced with one of the new period; otherwise the speed applies to the
// next play. Non-positive multipliers are ignored.
func (s *Scheduler) SetSpeed(multiplier float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if multiplier <= 0 || s.closed {
		return
	}
	s.speed = multiplier
	if s.state == Playing {
		s.stopTimerLocked()
		s.startTimerLocked()
	}
	if s.store != nil {
		s.renderLocked()
	}
}

// Snapshot returns the current state without rendering.
func (s *Scheduler) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:    s.state,
		Position: s.position,
		Speed:    s.speed,
	}
	if s.store != nil {
		w := s.store.Window()
		snap.Duration = w.DurationSeconds
		snap.Anchor = w.Anchor
		snap.Records = s.store.Len()
	}
	if s.lastFrame != nil {
		f := *s.lastFrame
		snap.Frame = &f
	}
	return snap
}

// State returns the current playback state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Position returns the current position in seconds from the window anchor.
func (s *Scheduler) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// Close stops the timer and abandons any pending preload start.
// The scheduler ignores every command afterwards.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.stopTimerLocked()
	s.closed = true
	s.cancel()
}

func (s *Scheduler) period() time.Duration {
	p := time.Duration(float64(s.base) / s.speed)
	if p <= 0 {
		p = time.Millisecond
	}
	return p
}

func (s *Scheduler) startTimerLocked() {
	s.gen++
	t := s.clock.NewTicker(s.period())
	stop := make(chan struct{})
	s.ticker = t
	s.stopTick = stop
	go s.loop(s.gen, t, stop)
}

// stopTimerLocked stops the current timer, if any, and invalidates every
// tick and preload completion issued under the previous generation.
func (s *Scheduler) stopTimerLocked() {
	if s.ticker != nil {
		s.ticker.Stop()
		close(s.stopTick)
		s.ticker = nil
		s.stopTick = nil
	}
	s.gen++
}

func (s *Scheduler) loop(gen uint64, t Ticker, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			if !s.tick(gen) {
				return
			}
		}
	}
}

// tick advances playback by one second. It returns false once the timer
// that produced it is no longer current.
func (s *Scheduler) tick(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.state != Playing {
		return false
	}
	metrics.PlaybackTicks.Inc()

	if s.position >= s.store.Window().DurationSeconds {
		s.stopTimerLocked()
		s.setStateLocked(Finished)
		s.renderLocked()
		return false
	}
	s.position++
	s.renderLocked()
	return true
}

func (s *Scheduler) setStateLocked(to State) {
	if s.state == to {
		return
	}
	metrics.PlaybackTransitions.WithLabelValues(s.state.String(), to.String()).Inc()
	s.logger.Debug().Str("from", s.state.String()).Str("to", to.String()).Int("position", s.position).Msg("Playback state change")
	s.state = to
}

// renderLocked resolves the record at the current position and hands the
// frame to the sink. Nothing is rendered for an empty store.
func (s *Scheduler) renderLocked() {
	if s.store == nil {
		return
	}
	idx, ok := s.store.FindIndex(s.position)
	if !ok {
		return
	}
	rec := s.store.Record(idx)
	image, _ := s.cache.Lookup(rec)

	frame := Frame{
		Position:   s.position,
		Duration:   s.store.Window().DurationSeconds,
		State:      s.state,
		Speed:      s.speed,
		Index:      idx,
		Total:      s.store.Len(),
		RecordID:   rec.Identity(),
		ObservedAt: rec.ObservedAt.Time,
		Group:      confidence.Normalize(rec.AreaConfidences, s.names),
		Image:      image,
	}
	s.lastFrame = &frame
	s.sink.Render(frame)
}
