// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomtom215/quakescope/internal/models"
	"github.com/tomtom215/quakescope/internal/playback"
)

// SeekStep is the seek distance of the arrow keys, in seconds.
const SeekStep = 10

const timeLayout = "2006/01/02 15:04:05"

// Controller is the subset of *playback.Scheduler the model drives.
type Controller interface {
	Toggle()
	Seek(seconds int)
	SetSpeed(multiplier float64)
	Snapshot() playback.Snapshot
}

// frameMsg carries one frame from the feed into Update.
type frameMsg playback.Frame

// Model is the Bubble Tea model of the terminal player.
type Model struct {
	title    string
	ctrl     Controller
	feed     *FrameFeed
	speeds   []float64
	bar      progress.Model
	frame    *playback.Frame
	width    int
	quitting bool
}

// NewModel builds a model for ctrl, reading frames from feed. speeds is the
// selectable speed ladder; it is sorted ascending.
func NewModel(title string, ctrl Controller, feed *FrameFeed, speeds []float64) Model {
	ladder := append([]float64(nil), speeds...)
	sort.Float64s(ladder)

	m := Model{
		title:  title,
		ctrl:   ctrl,
		feed:   feed,
		speeds: ladder,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	if snap := ctrl.Snapshot(); snap.Frame != nil {
		m.frame = snap.Frame
	}
	return m
}

// Init starts listening for frames.
func (m Model) Init() tea.Cmd {
	return m.waitForFrame()
}

func (m Model) waitForFrame() tea.Cmd {
	ch := m.feed.Frames()
	return func() tea.Msg {
		frame, ok := <-ch
		if !ok {
			return nil
		}
		return frameMsg(frame)
	}
}

// Update handles frames, keys and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		f := playback.Frame(msg)
		m.frame = &f
		return m, m.waitForFrame()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = max(msg.Width-16, 10)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case " ", "space", "p":
		m.ctrl.Toggle()
	case "left", "h":
		m.ctrl.Seek(m.position() - SeekStep)
	case "right", "l":
		m.ctrl.Seek(m.position() + SeekStep)
	case "home", "g":
		m.ctrl.Seek(0)
	case "end", "G":
		m.ctrl.Seek(m.duration())
	case "+", "=":
		if s, ok := m.nextSpeed(1); ok {
			m.ctrl.SetSpeed(s)
		}
	case "-", "_":
		if s, ok := m.nextSpeed(-1); ok {
			m.ctrl.SetSpeed(s)
		}
	}
	return m, nil
}

func (m Model) position() int {
	if m.frame != nil {
		return m.frame.Position
	}
	return m.ctrl.Snapshot().Position
}

func (m Model) duration() int {
	if m.frame != nil {
		return m.frame.Duration
	}
	return m.ctrl.Snapshot().Duration
}

func (m Model) speed() float64 {
	if m.frame != nil {
		return m.frame.Speed
	}
	return m.ctrl.Snapshot().Speed
}

// nextSpeed returns the neighbouring ladder entry in direction dir (+1 or -1).
func (m Model) nextSpeed(dir int) (float64, bool) {
	current := m.speed()
	if dir > 0 {
		for _, s := range m.speeds {
			if s > current {
				return s, true
			}
		}
		return 0, false
	}
	for i := len(m.speeds) - 1; i >= 0; i-- {
		if m.speeds[i] < current {
			return m.speeds[i], true
		}
	}
	return 0, false
}

// View renders the player.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("quakescope " + m.title))
	b.WriteString("\n\n")

	if m.frame == nil {
		b.WriteString(infoStyle.Render("waiting for records…"))
		b.WriteString("\n")
		b.WriteString(helpLine())
		return b.String()
	}
	f := m.frame

	fmt.Fprintf(&b, "%s  %s  x%s\n",
		stateStyle.Render(strings.ToUpper(f.State.String())),
		f.ObservedAt.In(models.JST).Format(timeLayout),
		formatSpeed(f.Speed))

	ratio := 0.0
	if f.Duration > 0 {
		ratio = float64(f.Position) / float64(f.Duration)
	}
	fmt.Fprintf(&b, "%s %s\n", m.bar.ViewAs(ratio), infoStyle.Render(fmt.Sprintf("%d/%ds", f.Position, f.Duration)))
	fmt.Fprintf(&b, "%s\n\n", infoStyle.Render(fmt.Sprintf("record %d of %d", f.Index+1, f.Total)))

	if len(f.Group) == 0 {
		b.WriteString(infoStyle.Render("no regional estimates"))
		b.WriteString("\n")
	}
	for _, band := range f.Group {
		fmt.Fprintf(&b, "%s %s\n", bandStyle(band.Label).Render(string(band.Label)), strings.Join(band.Names(), " "))
	}

	if f.Image != "" {
		fmt.Fprintf(&b, "\n%s\n", linkStyle.Render(f.Image))
	} else {
		fmt.Fprintf(&b, "\n%s\n", errorStyle.Render("no image for this record"))
	}

	b.WriteString("\n")
	b.WriteString(helpLine())
	return b.String()
}

func helpLine() string {
	return infoStyle.Render("space play/pause · ←/→ seek 10s · home/end · +/- speed · q quit")
}

func formatSpeed(s float64) string {
	if s == float64(int(s)) {
		return fmt.Sprintf("%d", int(s))
	}
	return fmt.Sprintf("%.1f", s)
}
