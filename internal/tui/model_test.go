// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomtom215/quakescope/internal/confidence"
	"github.com/tomtom215/quakescope/internal/playback"
)

type fakeController struct {
	snap    playback.Snapshot
	toggles int
	seeks   []int
	speeds  []float64
}

func (c *fakeController) Toggle()                     { c.toggles++ }
func (c *fakeController) Seek(seconds int)            { c.seeks = append(c.seeks, seconds) }
func (c *fakeController) SetSpeed(multiplier float64) { c.speeds = append(c.speeds, multiplier) }
func (c *fakeController) Snapshot() playback.Snapshot { return c.snap }

func testFrame() playback.Frame {
	return playback.Frame{
		Position:   40,
		Duration:   120,
		State:      playback.Paused,
		Speed:      2,
		Index:      3,
		Total:      9,
		RecordID:   "r3",
		ObservedAt: time.Date(2026, 3, 1, 3, 4, 5, 0, time.UTC),
		Group: confidence.Group{
			{Label: confidence.LabelA, Areas: []confidence.Area{{Code: "10", Name: "北海道 石狩", Normalized: 1}}},
			{Label: confidence.LabelD, Areas: []confidence.Area{{Code: "15", Name: "北海道 渡島", Normalized: 0.3}}},
		},
		Image: "https://cdn.example/r3.png",
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Keys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		key        tea.KeyMsg
		wantSeek   []int
		wantSpeed  []float64
		wantToggle int
		wantQuit   bool
	}{
		{name: "space toggles", key: tea.KeyMsg{Type: tea.KeySpace}, wantToggle: 1},
		{name: "left seeks back", key: tea.KeyMsg{Type: tea.KeyLeft}, wantSeek: []int{30}},
		{name: "right seeks forward", key: tea.KeyMsg{Type: tea.KeyRight}, wantSeek: []int{50}},
		{name: "home", key: tea.KeyMsg{Type: tea.KeyHome}, wantSeek: []int{0}},
		{name: "end", key: tea.KeyMsg{Type: tea.KeyEnd}, wantSeek: []int{120}},
		{name: "plus speeds up", key: runes("+"), wantSpeed: []float64{5}},
		{name: "minus slows down", key: runes("-"), wantSpeed: []float64{1}},
		{name: "q quits", key: runes("q"), wantQuit: true},
		{name: "ctrl+c quits", key: tea.KeyMsg{Type: tea.KeyCtrlC}, wantQuit: true},
		{name: "unbound key", key: runes("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := &fakeController{}
			m := NewModel("evt", ctrl, NewFrameFeed(), []float64{10, 1, 2, 5})
			f := testFrame()
			next, _ := m.Update(frameMsg(f))

			next, cmd := next.Update(tt.key)

			if ctrl.toggles != tt.wantToggle {
				t.Errorf("toggles = %d, want %d", ctrl.toggles, tt.wantToggle)
			}
			if !equalInts(ctrl.seeks, tt.wantSeek) {
				t.Errorf("seeks = %v, want %v", ctrl.seeks, tt.wantSeek)
			}
			if !equalFloats(ctrl.speeds, tt.wantSpeed) {
				t.Errorf("speeds = %v, want %v", ctrl.speeds, tt.wantSpeed)
			}
			if tt.wantQuit {
				if cmd == nil {
					t.Fatal("expected quit command")
				}
				if _, ok := cmd().(tea.QuitMsg); !ok {
					t.Error("expected tea.QuitMsg")
				}
				if next.View() != "" {
					t.Error("view should be empty after quit")
				}
			}
		})
	}
}

func TestModel_SpeedLadderEnds(t *testing.T) {
	t.Parallel()

	ctrl := &fakeController{}
	m := NewModel("evt", ctrl, NewFrameFeed(), []float64{1, 2})

	top := testFrame()
	top.Speed = 2
	next, _ := m.Update(frameMsg(top))
	next, _ = next.Update(runes("+"))

	bottom := testFrame()
	bottom.Speed = 1
	next, _ = next.Update(frameMsg(bottom))
	_, _ = next.Update(runes("-"))

	if len(ctrl.speeds) != 0 {
		t.Errorf("speeds = %v, want none at the ladder ends", ctrl.speeds)
	}
}

func TestModel_UsesSnapshotBeforeFirstFrame(t *testing.T) {
	t.Parallel()

	ctrl := &fakeController{snap: playback.Snapshot{Position: 5, Duration: 60, Speed: 1}}
	m := NewModel("evt", ctrl, NewFrameFeed(), []float64{1, 2})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	next, _ = next.Update(runes("+"))

	if !equalInts(ctrl.seeks, []int{15}) {
		t.Errorf("seeks = %v, want [15]", ctrl.seeks)
	}
	if !equalFloats(ctrl.speeds, []float64{2}) {
		t.Errorf("speeds = %v, want [2]", ctrl.speeds)
	}
	if !strings.Contains(next.View(), "waiting for records") {
		t.Error("view should show the waiting message")
	}
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	m := NewModel("evt-1", &fakeController{}, NewFrameFeed(), []float64{1})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	next, _ = next.Update(frameMsg(testFrame()))
	view := next.View()

	for _, want := range []string{
		"evt-1",
		"PAUSED",
		"2026/03/01 12:04:05",
		"x2",
		"40/120s",
		"record 4 of 9",
		"北海道 石狩",
		"北海道 渡島",
		"https://cdn.example/r3.png",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Index(view, "北海道 石狩") > strings.Index(view, "北海道 渡島") {
		t.Error("band A should render before band D")
	}
}

func TestModel_ViewWithoutImageOrBands(t *testing.T) {
	t.Parallel()

	f := testFrame()
	f.Image = ""
	f.Group = confidence.Group{}

	next, _ := NewModel("evt", &fakeController{}, NewFrameFeed(), nil).Update(frameMsg(f))
	view := next.View()
	if !strings.Contains(view, "no image for this record") {
		t.Error("missing no-image notice")
	}
	if !strings.Contains(view, "no regional estimates") {
		t.Error("missing empty band notice")
	}
}

func TestModel_InitReadsFeed(t *testing.T) {
	t.Parallel()

	feed := NewFrameFeed()
	m := NewModel("evt", &fakeController{}, feed, nil)
	feed.Render(testFrame())

	msg := m.Init()()
	f, ok := msg.(frameMsg)
	if !ok {
		t.Fatalf("Init command returned %T, want frameMsg", msg)
	}
	if f.RecordID != "r3" {
		t.Errorf("RecordID = %q, want r3", f.RecordID)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
