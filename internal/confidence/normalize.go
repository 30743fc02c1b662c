// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

// Package confidence turns per-region userquake confidences into relative
// A..E bands for display.
package confidence

import (
	"math"
	"sort"

	"github.com/tomtom215/quakescope/internal/models"
)

// MinScale floors the normalization divisor so that a record made only of
// very weak estimates is not inflated to band A.
const MinScale = 0.125

// Label is a relative confidence band.
type Label string

// Bands in display order. LabelF marks values that are never displayed.
const (
	LabelA Label = "A"
	LabelB Label = "B"
	LabelC Label = "C"
	LabelD Label = "D"
	LabelE Label = "E"
	LabelF Label = "F"
)

// Labels lists the displayable labels in order.
var Labels = []Label{LabelA, LabelB, LabelC, LabelD, LabelE}

// Area is one region inside a band.
type Area struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Normalized float64 `json:"normalized"`
}

// Band groups the regions that share a label.
type Band struct {
	Label Label  `json:"label"`
	Areas []Area `json:"areas"`
}

// Names returns the display names of the band's regions, in band order.
func (b Band) Names() []string {
	names := make([]string, len(b.Areas))
	for i, a := range b.Areas {
		names[i] = a.Name
	}
	return names
}

// Group is the ordered band list rendered for one record.
// Bands are always in A..E order and empty bands are omitted.
type Group []Band

// ByCode returns a copy of g with the regions of every band ordered by region
// code, the order used when a single record is shown on its own.
func (g Group) ByCode() Group {
	out := make(Group, len(g))
	for i, band := range g {
		areas := append([]Area(nil), band.Areas...)
		sort.SliceStable(areas, func(a, b int) bool { return areas[a].Code < areas[b].Code })
		out[i] = Band{Label: band.Label, Areas: areas}
	}
	return out
}

// LabelFor maps a normalized confidence to its band.
// Negative values, NaN and anything unclassifiable map to LabelF.
func LabelFor(normalized float64) Label {
	switch {
	case normalized >= 0.8:
		return LabelA
	case normalized >= 0.6:
		return LabelB
	case normalized >= 0.4:
		return LabelC
	case normalized >= 0.2:
		return LabelD
	case normalized >= 0:
		return LabelE
	default:
		return LabelF
	}
}

// Scale returns the normalization factor for a set of region estimates:
// 1 / max(MinScale, largest confidence).
func Scale(areas map[string]models.AreaConfidence) float64 {
	largest := MinScale
	for _, ac := range areas {
		if ac.Confidence == nil || math.IsNaN(*ac.Confidence) {
			continue
		}
		if *ac.Confidence > largest {
			largest = *ac.Confidence
		}
	}
	return 1 / largest
}

// Normalize scales every region relative to the strongest one, labels it,
// and groups the result into bands.
//
// Regions without a value, or with a value that normalizes to a negative or
// NaN number, are dropped. Within a band, regions are ordered by descending
// normalized confidence with ties broken by region code. Unknown region codes
// keep the code as their display name. A nil names uses the code for every
// region. Normalize never fails; an empty input gives an empty Group.
func Normalize(areas map[string]models.AreaConfidence, names Namer) Group {
	if len(areas) == 0 {
		return Group{}
	}

	factor := Scale(areas)

	type scored struct {
		code       string
		normalized float64
		label      Label
	}
	items := make([]scored, 0, len(areas))
	for code, ac := range areas {
		if ac.Confidence == nil {
			continue
		}
		n := *ac.Confidence * factor
		label := LabelFor(n)
		if label == LabelF {
			continue
		}
		items = append(items, scored{code: code, normalized: n, label: label})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].normalized != items[j].normalized {
			return items[i].normalized > items[j].normalized
		}
		return items[i].code < items[j].code
	})

	group := Group{}
	for _, it := range items {
		if len(group) == 0 || group[len(group)-1].Label != it.label {
			group = append(group, Band{Label: it.label})
		}
		band := &group[len(group)-1]
		band.Areas = append(band.Areas, Area{
			Code:       it.code,
			Name:       displayName(names, it.code),
			Normalized: it.normalized,
		})
	}
	return group
}

func displayName(names Namer, code string) string {
	if names == nil {
		return code
	}
	if name, ok := names.Name(code); ok {
		return name
	}
	return code
}
