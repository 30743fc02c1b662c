// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package services

import (
	"context"

	"github.com/tomtom215/quakescope/internal/logging"
)

// FrameHub is implemented by *websocket.Hub.
type FrameHub interface {
	RunWithContext(ctx context.Context) error
}

// WebSocketHubService runs the frame hub. The hub closes its clients and
// returns ctx.Err() once ctx ends.
type WebSocketHubService struct {
	hub FrameHub
}

// NewWebSocketHubService wraps hub.
func NewWebSocketHubService(hub FrameHub) *WebSocketHubService {
	return &WebSocketHubService{hub: hub}
}

// Serve implements suture.Service.
func (w *WebSocketHubService) Serve(ctx context.Context) error {
	return w.hub.RunWithContext(ctx)
}

func (w *WebSocketHubService) String() string { return "websocket-hub" }

// TimelineCloser is implemented by *session.Manager.
type TimelineCloser interface {
	Count() int
	CloseAll()
}

// TimelineSessionsService owns no goroutine of its own; it exists so that
// open timelines stop ticking when the playback layer shuts down.
type TimelineSessionsService struct {
	sessions TimelineCloser
}

// NewTimelineSessionsService wraps the session manager.
func NewTimelineSessionsService(sessions TimelineCloser) *TimelineSessionsService {
	return &TimelineSessionsService{sessions: sessions}
}

// Serve implements suture.Service.
func (s *TimelineSessionsService) Serve(ctx context.Context) error {
	<-ctx.Done()

	if open := s.sessions.Count(); open > 0 {
		logging.Info().Int("timelines", open).Msg("Closing open timelines")
	}
	s.sessions.CloseAll()
	return ctx.Err()
}

func (s *TimelineSessionsService) String() string { return "timeline-sessions" }
