// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tomtom215/quakescope/internal/confidence"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	stateStyle = lipgloss.NewStyle().Bold(true)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	linkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	// Band colours run from red (A, strongest) to blue (E).
	bandColors = map[confidence.Label]lipgloss.Color{
		confidence.LabelA: lipgloss.Color("196"),
		confidence.LabelB: lipgloss.Color("208"),
		confidence.LabelC: lipgloss.Color("220"),
		confidence.LabelD: lipgloss.Color("42"),
		confidence.LabelE: lipgloss.Color("33"),
	}
)

func bandStyle(label confidence.Label) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(bandColors[label]).
		Padding(0, 1)
}
