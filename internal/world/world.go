// Package world defines authored world maps: the static terrain ruleset
// plus per-location site descriptors, supplied at session start and
// immutable for the session's lifetime.
package world

import (
	"fmt"

	"github.com/vovakirdan/tui-wayfarer/internal/core"
	"github.com/vovakirdan/tui-wayfarer/internal/explore"
)

// Site is an opaque per-location content descriptor. The exploration
// core never inspects it; the platform surfaces the label and decides
// when the site counts as resolved.
type Site struct {
	Label string
}

// World is a complete authored map definition.
type World struct {
	ID    string
	Title string

	Origin  core.Point   // Starting coordinate
	Heading core.Heading // Starting facing

	Ruleset explore.Ruleset
	Sites   map[core.Point]Site
}

// Validate checks a world definition for authoring mistakes.
func (w *World) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("world: missing id")
	}
	if w.Title == "" {
		return fmt.Errorf("world %s: missing title", w.ID)
	}

	blocked := make(map[core.Point]bool, len(w.Ruleset.BlockedCells))
	for _, c := range w.Ruleset.BlockedCells {
		blocked[c.Coord()] = true
	}

	if blocked[w.Origin] {
		return fmt.Errorf("world %s: origin %s is a blocked cell", w.ID, w.Origin)
	}
	for p := range w.Sites {
		if blocked[p] {
			return fmt.Errorf("world %s: site at blocked cell %s", w.ID, p)
		}
	}
	for i, p := range w.Ruleset.Rail.Path {
		if blocked[p] {
			return fmt.Errorf("world %s: rail coordinate %s is a blocked cell", w.ID, p)
		}
		if i > 0 {
			prev := w.Ruleset.Rail.Path[i-1]
			if _, ok := core.HeadingFromDelta(p.X-prev.X, p.Y-prev.Y); !ok {
				return fmt.Errorf("world %s: rail jumps from %s to %s", w.ID, prev, p)
			}
		}
	}
	return nil
}

// NewSession starts an expedition in this world. pathingLocked overrides
// the authored default when rules should be advisory only (free roam).
func (w *World) NewSession(pathingLocked bool, depthTierCap int) *explore.Session {
	rs := w.Ruleset
	rs.PathingLocked = pathingLocked
	return explore.NewSession(w.Origin, w.Heading, rs, depthTierCap)
}

// SiteCount returns the number of authored sites.
func (w *World) SiteCount() int {
	return len(w.Sites)
}

// SiteAt returns the site at a coordinate, if any.
func (w *World) SiteAt(p core.Point) (Site, bool) {
	s, ok := w.Sites[p]
	return s, ok
}
