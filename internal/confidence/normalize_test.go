// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package confidence

import (
	"math"
	"testing"

	"github.com/tomtom215/quakescope/internal/models"
)

func areas(values map[string]*float64) map[string]models.AreaConfidence {
	out := make(map[string]models.AreaConfidence, len(values))
	for code, v := range values {
		out[code] = models.AreaConfidence{Confidence: v}
	}
	return out
}

func TestLabelFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want Label
	}{
		{1.0, LabelA},
		{0.8, LabelA},
		{0.7999, LabelB},
		{0.6, LabelB},
		{0.4, LabelC},
		{0.2, LabelD},
		{0.1999, LabelE},
		{0.0, LabelE},
		{-0.0001, LabelF},
		{math.NaN(), LabelF},
	}

	for _, tt := range tests {
		if got := LabelFor(tt.in); got != tt.want {
			t.Errorf("LabelFor(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestScale_Floor(t *testing.T) {
	t.Parallel()

	got := Scale(areas(map[string]*float64{"100": models.Float(0.05)}))
	if got != 8 {
		t.Errorf("Scale with max 0.05 = %v, want 8", got)
	}

	got = Scale(areas(map[string]*float64{"100": models.Float(0.5), "200": nil}))
	if got != 2 {
		t.Errorf("Scale with max 0.5 = %v, want 2", got)
	}
}

func TestNormalize_FloorAppliesToAllRegions(t *testing.T) {
	t.Parallel()

	// Max 0.05 is floored to 0.125: 0.05*8 = 0.4 (C), 0.02*8 = 0.16 (E).
	g := Normalize(areas(map[string]*float64{
		"100": models.Float(0.05),
		"200": models.Float(0.02),
	}), nil)

	if len(g) != 2 {
		t.Fatalf("expected 2 bands, got %d: %+v", len(g), g)
	}
	if g[0].Label != LabelC || g[0].Areas[0].Code != "100" {
		t.Errorf("first band = %+v, want C with 100", g[0])
	}
	if g[1].Label != LabelE || g[1].Areas[0].Code != "200" {
		t.Errorf("second band = %+v, want E with 200", g[1])
	}
}

func TestNormalize_GroupsAndOrder(t *testing.T) {
	t.Parallel()

	// Max is 0.5, factor 2.
	g := Normalize(areas(map[string]*float64{
		"301": models.Float(0.5),  // 1.0 A
		"300": models.Float(0.45), // 0.9 A
		"250": models.Float(0.35), // 0.7 B
		"251": models.Float(0.35), // 0.7 B, tie broken by code
		"400": models.Float(0.05), // 0.1 E
		"500": models.Float(-0.2), // F, dropped
		"600": nil,                // undefined, dropped
	}), RegionTable{"300": "東京都23区"})

	wantLabels := []Label{LabelA, LabelB, LabelE}
	if len(g) != len(wantLabels) {
		t.Fatalf("expected %d bands, got %d: %+v", len(wantLabels), len(g), g)
	}
	for i, l := range wantLabels {
		if g[i].Label != l {
			t.Errorf("band %d label = %s, want %s", i, g[i].Label, l)
		}
	}

	a := g[0].Names()
	if len(a) != 2 || a[0] != "301" || a[1] != "東京都23区" {
		t.Errorf("band A names = %v, want [301 東京都23区]", a)
	}
	b := g[1].Names()
	if len(b) != 2 || b[0] != "250" || b[1] != "251" {
		t.Errorf("band B names = %v, want [250 251]", b)
	}

	for _, band := range g {
		for _, area := range band.Areas {
			if area.Code == "500" || area.Code == "600" {
				t.Errorf("region %s should have been dropped", area.Code)
			}
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	t.Parallel()

	if g := Normalize(nil, Regions); len(g) != 0 {
		t.Errorf("Normalize(nil) = %+v, want empty", g)
	}
	if g := Normalize(areas(map[string]*float64{"100": nil}), Regions); len(g) != 0 {
		t.Errorf("Normalize(all nil) = %+v, want empty", g)
	}
}

func TestGroup_ByCode(t *testing.T) {
	t.Parallel()

	group := Normalize(areas(map[string]*float64{
		"561": models.Float(0.9),
		"250": models.Float(1.0),
		"400": models.Float(0.85),
		"100": models.Float(0.3),
	}), nil)

	sorted := group.ByCode()
	if len(sorted) != 2 {
		t.Fatalf("bands = %d, want 2", len(sorted))
	}
	if got := sorted[0].Names(); len(got) != 3 || got[0] != "250" || got[1] != "400" || got[2] != "561" {
		t.Errorf("band A = %v, want [250 400 561]", got)
	}
	if sorted[1].Label != LabelD || sorted[1].Areas[0].Code != "100" {
		t.Errorf("band 2 = %+v, want D with 100", sorted[1])
	}
	// The receiver keeps confidence order.
	if group[0].Areas[0].Code != "250" || group[0].Areas[1].Code != "561" {
		t.Errorf("ByCode mutated the receiver: %+v", group[0].Areas)
	}
}

func TestRegions(t *testing.T) {
	t.Parallel()

	if name, ok := Regions.Name("900"); !ok || name != "地域未設定" {
		t.Errorf("Regions.Name(900) = %q, %v", name, ok)
	}
	if _, ok := Regions.Name("999"); ok {
		t.Error("unknown code should not resolve")
	}

	g := Normalize(areas(map[string]*float64{"999": models.Float(1)}), Regions)
	if got := g[0].Areas[0].Name; got != "999" {
		t.Errorf("unknown code display name = %q, want passthrough", got)
	}
}

func TestNamerFunc(t *testing.T) {
	t.Parallel()

	upper := NamerFunc(func(code string) (string, bool) { return "R" + code, true })
	g := Normalize(areas(map[string]*float64{"1": models.Float(1)}), upper)
	if got := g[0].Areas[0].Name; got != "R1" {
		t.Errorf("NamerFunc name = %q, want R1", got)
	}
}
