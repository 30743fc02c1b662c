// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/tomtom215/quakescope/internal/config"
	ws "github.com/tomtom215/quakescope/internal/websocket"
)

type wsMessage struct {
	Type  string    `json:"type"`
	Topic string    `json:"topic"`
	Data  frameBody `json:"data"`
}

func (e *testEnv) dial(t *testing.T, sid string, header http.Header) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(e.server.URL, "http") + "/api/v1/timelines/" + sid + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if conn != nil {
		t.Cleanup(func() { _ = conn.Close() })
	}
	return conn, resp, err
}

func readWS(t *testing.T, conn *websocket.Conn) wsMessage {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	var msg wsMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return msg
}

// readFrameAt skips frames until one at position arrives.
func readFrameAt(t *testing.T, conn *websocket.Conn, position int) wsMessage {
	t.Helper()
	for i := 0; i < 5; i++ {
		msg := readWS(t, conn)
		if msg.Type == ws.MessageTypeFrame && msg.Data.Position == position {
			return msg
		}
	}
	t.Fatalf("no frame at position %d", position)
	return wsMessage{}
}

func waitForWatchers(t *testing.T, hub *ws.Hub, topic string, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.TopicClientCount(topic) != n {
		if time.Now().After(deadline) {
			t.Fatalf("watchers of %s = %d, want %d", topic, hub.TopicClientCount(topic), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestTimelineWebSocket_StreamsFrames(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)
	snap := env.create(t, `{"object_id":"65a1"}`)

	conn, _, err := env.dial(t, snap.ID, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}

	first := readWS(t, conn)
	if first.Type != ws.MessageTypeFrame || first.Data.RecordID != "r3" || first.Data.State != "paused" {
		t.Fatalf("first message = %+v, want the current frame", first)
	}
	waitForWatchers(t, env.hub, snap.ID, 1)

	env.do(t, http.MethodPost, "/api/v1/timelines/"+snap.ID+"/seek", `{"position":0}`)
	seeked := readFrameAt(t, conn, 0)
	if seeked.Topic != snap.ID || seeked.Data.RecordID != "r0" {
		t.Errorf("frame after seek = %+v", seeked)
	}

	env.do(t, http.MethodDelete, "/api/v1/timelines/"+snap.ID, "")
	if closed := readWS(t, conn); closed.Type != ws.MessageTypeClosed {
		t.Errorf("message after delete = %+v, want closed", closed)
	}
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	if _, _, err := conn.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("ReadMessage() after closed = %v, want normal closure", err)
	}
}

func TestTimelineWebSocket_UnknownTimeline(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	_, resp, err := env.dial(t, "nope", nil)
	if err == nil {
		t.Fatal("Dial() to unknown timeline succeeded")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("response = %+v, want 404", resp)
	}
}

func TestTimelineWebSocket_OriginCheck(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)
	snap := env.create(t, `{"object_id":"65a1"}`)

	_, resp, err := env.dial(t, snap.ID, http.Header{"Origin": {"https://evil.example"}})
	if err == nil {
		t.Fatal("Dial() from unlisted origin succeeded")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("response = %+v, want 403", resp)
	}

	conn, _, err := env.dial(t, snap.ID, http.Header{"Origin": {"https://app.example"}})
	if err != nil {
		t.Fatalf("Dial() from listed origin error = %v", err)
	}
	if msg := readWS(t, conn); msg.Type != ws.MessageTypeFrame {
		t.Errorf("first message = %+v", msg)
	}
}

func TestCheckWebSocketOrigin(t *testing.T) {
	t.Parallel()

	withOrigins := func(origins ...string) *Handler {
		return &Handler{config: &config.Config{Server: config.ServerConfig{CORSOrigins: origins}}}
	}

	tests := []struct {
		name    string
		handler *Handler
		origin  string
		want    bool
	}{
		{"no origin header", withOrigins("https://app.example"), "", true},
		{"listed", withOrigins("https://app.example"), "https://app.example", true},
		{"unlisted", withOrigins("https://app.example"), "https://evil.example", false},
		{"wildcard", withOrigins("*"), "https://anything.example", true},
		{"no config", &Handler{}, "https://anything.example", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/timelines/x/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if got := tt.handler.checkWebSocketOrigin(req); got != tt.want {
				t.Errorf("checkWebSocketOrigin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimelineWebSocket_NoHub(t *testing.T) {
	t.Parallel()

	router := NewRouter(NewHandler(testSource(), nil, nil, nil), nil).SetupChi()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/timelines/x/ws", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
