package world

import (
	"testing"

	"github.com/vovakirdan/tui-wayfarer/internal/core"
)

const sampleWorld = `
id: testland
title: Testland
origin: {x: 0, y: 0}
heading: E
blocked_cells:
  - {x: 3, y: 0}
  - {x: 3, y: 1, terrain: water, blocks_light: false}
blocked_edges:
  - {from: {x: 0, y: 0}, to: {x: 0, y: 1}}
  - {from: {x: 1, y: 0}, to: {x: 1, y: 1}, bidirectional: false}
conditional_edges:
  - {from: {x: 2, y: 0}, to: {x: 2, y: 1}}
  - {from: {x: 4, y: 0}, to: {x: 4, y: 1}, locked: false, bidirectional: false}
rail:
  path:
    - {x: 0, y: 0}
    - {x: 1, y: 0}
    - {x: 1, y: 1}
sites:
  - {x: 1, y: 0, label: Waystation}
`

func TestParseYAML(t *testing.T) {
	w, err := ParseYAML([]byte(sampleWorld))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}

	if w.ID != "testland" || w.Title != "Testland" {
		t.Errorf("id/title = %q/%q", w.ID, w.Title)
	}
	if w.Heading != core.HeadingE {
		t.Errorf("heading = %v, expected E", w.Heading)
	}
	if !w.Ruleset.PathingLocked {
		t.Error("pathing_locked should default to true")
	}

	// Terrain and light hints get defaults.
	if len(w.Ruleset.BlockedCells) != 2 {
		t.Fatalf("blocked cells = %d, expected 2", len(w.Ruleset.BlockedCells))
	}
	if c := w.Ruleset.BlockedCells[0]; c.Terrain != "mountain" || !c.BlocksLight {
		t.Errorf("default cell = %+v, expected mountain blocking light", c)
	}
	if c := w.Ruleset.BlockedCells[1]; c.Terrain != "water" || c.BlocksLight {
		t.Errorf("water cell = %+v", c)
	}

	// Edge defaults: bidirectional true unless specified.
	if !w.Ruleset.BlockedEdges[0].Bidirectional {
		t.Error("blocked edge should default to bidirectional")
	}
	if w.Ruleset.BlockedEdges[1].Bidirectional {
		t.Error("explicit bidirectional: false ignored")
	}

	// Conditional defaults: locked and bidirectional true.
	ce := w.Ruleset.ConditionalEdges[0]
	if !ce.Locked || !ce.Bidirectional {
		t.Errorf("conditional defaults = %+v, expected locked bidirectional", ce)
	}
	ce = w.Ruleset.ConditionalEdges[1]
	if ce.Locked || ce.Bidirectional {
		t.Errorf("explicit conditional flags ignored: %+v", ce)
	}

	// Rail defaults to lock_until_complete.
	if !w.Ruleset.Rail.LockUntilComplete || len(w.Ruleset.Rail.Path) != 3 {
		t.Errorf("rail = %+v", w.Ruleset.Rail)
	}

	if s, ok := w.SiteAt(core.P(1, 0)); !ok || s.Label != "Waystation" {
		t.Errorf("site at (1,0) = %+v, %v", s, ok)
	}
}

func TestParseYAMLRejectsBadHeading(t *testing.T) {
	bad := "id: x\ntitle: X\norigin: {x: 0, y: 0}\nheading: UP\n"
	if _, err := ParseYAML([]byte(bad)); err == nil {
		t.Error("expected error for unknown heading")
	}
}

func TestValidateRejectsBlockedOrigin(t *testing.T) {
	bad := `
id: x
title: X
origin: {x: 1, y: 1}
blocked_cells:
  - {x: 1, y: 1}
`
	if _, err := ParseYAML([]byte(bad)); err == nil {
		t.Error("expected error for blocked origin")
	}
}

func TestValidateRejectsDiscontinuousRail(t *testing.T) {
	bad := `
id: x
title: X
origin: {x: 0, y: 0}
rail:
  path:
    - {x: 0, y: 0}
    - {x: 5, y: 0}
`
	if _, err := ParseYAML([]byte(bad)); err == nil {
		t.Error("expected error for rail jump")
	}
}
