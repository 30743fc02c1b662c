// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package websocket

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestClient(hub *Hub, topic string, queue int) *Client {
	return &Client{
		id:    clientIDCounter.Add(1),
		topic: topic,
		hub:   hub,
		send:  make(chan Message, queue),
	}
}

func startHub(t *testing.T) (*Hub, context.CancelFunc, <-chan error) {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- hub.RunWithContext(ctx) }()
	t.Cleanup(cancel)
	return hub, cancel, errCh
}

func receive(t *testing.T, c *Client) (Message, bool) {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		return msg, ok
	case <-time.After(2 * time.Second):
		t.Fatalf("client %d received nothing", c.id)
		return Message{}, false
	}
}

func expectNothing(t *testing.T, c *Client) {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		t.Fatalf("client %d unexpectedly received %+v (open=%v)", c.id, msg, ok)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_PublishRoutesByTopic(t *testing.T) {
	t.Parallel()

	hub, _, _ := startHub(t)
	a1 := newTestClient(hub, "a", 8)
	a2 := newTestClient(hub, "a", 8)
	b := newTestClient(hub, "b", 8)
	for _, c := range []*Client{a1, a2, b} {
		hub.Register <- c
	}

	if !hub.Publish("a", MessageTypeFrame, map[string]int{"position": 3}) {
		t.Fatal("Publish() = false")
	}

	for _, c := range []*Client{a1, a2} {
		msg, ok := receive(t, c)
		if !ok || msg.Type != MessageTypeFrame || msg.Topic != "a" {
			t.Errorf("client %d got %+v", c.id, msg)
		}
	}
	expectNothing(t, b)

	if hub.GetClientCount() != 3 || hub.TopicClientCount("a") != 2 {
		t.Errorf("counts = %d / %d", hub.GetClientCount(), hub.TopicClientCount("a"))
	}
}

func TestHub_CloseTopicDisconnects(t *testing.T) {
	t.Parallel()

	hub, _, _ := startHub(t)
	a := newTestClient(hub, "a", 8)
	b := newTestClient(hub, "b", 8)
	hub.Register <- a
	hub.Register <- b

	hub.CloseTopic("a")

	msg, ok := receive(t, a)
	if !ok || msg.Type != MessageTypeClosed {
		t.Fatalf("got %+v (open=%v), want closed message", msg, ok)
	}
	if _, ok := receive(t, a); ok {
		t.Error("send channel still open after closed message")
	}
	expectNothing(t, b)

	if hub.TopicClientCount("a") != 0 || hub.TopicClientCount("b") != 1 {
		t.Errorf("topic counts = %d / %d", hub.TopicClientCount("a"), hub.TopicClientCount("b"))
	}

	// Late unregister from the read pump is harmless.
	hub.Unregister <- a
}

func TestHub_DropsSlowClient(t *testing.T) {
	t.Parallel()

	hub, _, _ := startHub(t)
	slow := newTestClient(hub, "a", 1)
	hub.Register <- slow

	hub.Publish("a", MessageTypeFrame, 1)
	hub.Publish("a", MessageTypeFrame, 2)

	deadline := time.Now().Add(2 * time.Second)
	for hub.GetClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("slow client not dropped")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if msg, ok := <-slow.send; !ok || msg.Data != 1 {
		t.Errorf("first message = %+v, %v", msg, ok)
	}
	if _, ok := <-slow.send; ok {
		t.Error("channel open after drop")
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	t.Parallel()

	hub, _, _ := startHub(t)
	c := newTestClient(hub, "a", 1)
	hub.Register <- c
	hub.Unregister <- c

	if _, ok := receive(t, c); ok {
		t.Error("send channel open after unregister")
	}
	if hub.GetClientCount() != 0 {
		t.Errorf("GetClientCount() = %d", hub.GetClientCount())
	}
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	t.Parallel()

	hub, cancel, errCh := startHub(t)
	c := newTestClient(hub, "a", 1)
	hub.Register <- c

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("RunWithContext() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop")
	}
	if _, ok := <-c.send; ok {
		t.Error("client channel open after shutdown")
	}
}

func TestGetShutdownReason(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if got := getShutdownReason(ctx); got != ShutdownReasonContextCanceled {
		t.Errorf("canceled reason = %s", got)
	}

	ctx, cancel = context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	if got := getShutdownReason(ctx); got != ShutdownReasonContextDeadline {
		t.Errorf("deadline reason = %s", got)
	}
}

func TestPublish_FullQueue(t *testing.T) {
	t.Parallel()

	hub := NewHub() // not running
	for i := 0; i < cap(hub.broadcast); i++ {
		if !hub.Publish("a", MessageTypeFrame, i) {
			t.Fatalf("Publish %d dropped", i)
		}
	}
	if hub.Publish("a", MessageTypeFrame, "overflow") {
		t.Error("Publish() = true with a full queue")
	}
}

func TestMarshalMessage(t *testing.T) {
	t.Parallel()

	data, err := MarshalMessage(Message{Type: MessageTypeFrame, Topic: "t", Data: map[string]int{"position": 4}})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"frame","topic":"t","data":{"position":4}}`
	if string(data) != want {
		t.Errorf("MarshalMessage() = %s, want %s", data, want)
	}
}
