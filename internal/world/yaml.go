package world

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-wayfarer/internal/core"
	"github.com/vovakirdan/tui-wayfarer/internal/explore"
)

// yamlWorld is the on-disk schema for a world file.
//
// Authoring defaults follow the original map format: `bidirectional`
// defaults to true for blocked and conditional edges, `locked` defaults
// to true for conditional edges, and `lock_until_complete` defaults to
// true for rails. Optional booleans are pointers so absence is
// distinguishable from an explicit false.
type yamlWorld struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Origin  yamlPoint `yaml:"origin"`
	Heading string    `yaml:"heading"`

	PathingLocked *bool `yaml:"pathing_locked,omitempty"`

	BlockedCells     []yamlBlockedCell     `yaml:"blocked_cells,omitempty"`
	BlockedEdges     []yamlEdge            `yaml:"blocked_edges,omitempty"`
	ConditionalEdges []yamlConditionalEdge `yaml:"conditional_edges,omitempty"`
	Rail             *yamlRail             `yaml:"rail,omitempty"`

	Sites []yamlSite `yaml:"sites,omitempty"`
}

type yamlPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (p yamlPoint) point() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

type yamlBlockedCell struct {
	X           int    `yaml:"x"`
	Y           int    `yaml:"y"`
	Terrain     string `yaml:"terrain,omitempty"`
	BlocksLight *bool  `yaml:"blocks_light,omitempty"`
}

type yamlEdge struct {
	From          yamlPoint `yaml:"from"`
	To            yamlPoint `yaml:"to"`
	Bidirectional *bool     `yaml:"bidirectional,omitempty"`
}

type yamlConditionalEdge struct {
	From          yamlPoint `yaml:"from"`
	To            yamlPoint `yaml:"to"`
	Bidirectional *bool     `yaml:"bidirectional,omitempty"`
	Locked        *bool     `yaml:"locked,omitempty"`
}

type yamlRail struct {
	Path              []yamlPoint `yaml:"path"`
	LockUntilComplete *bool       `yaml:"lock_until_complete,omitempty"`
}

type yamlSite struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Label string `yaml:"label"`
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// ParseYAML parses and validates a world definition file.
func ParseYAML(data []byte) (*World, error) {
	var yw yamlWorld
	if err := yaml.Unmarshal(data, &yw); err != nil {
		return nil, fmt.Errorf("world: yaml unmarshal: %w", err)
	}

	heading := core.HeadingN
	if yw.Heading != "" {
		h, ok := core.ParseHeading(yw.Heading)
		if !ok {
			return nil, fmt.Errorf("world %s: unknown heading %q", yw.ID, yw.Heading)
		}
		heading = h
	}

	w := &World{
		ID:      yw.ID,
		Title:   yw.Title,
		Origin:  yw.Origin.point(),
		Heading: heading,
		Ruleset: explore.Ruleset{
			PathingLocked: boolOr(yw.PathingLocked, true),
		},
		Sites: make(map[core.Point]Site, len(yw.Sites)),
	}

	for _, c := range yw.BlockedCells {
		terrain := c.Terrain
		if terrain == "" {
			terrain = "mountain"
		}
		w.Ruleset.BlockedCells = append(w.Ruleset.BlockedCells, explore.BlockedCell{
			X:           c.X,
			Y:           c.Y,
			Terrain:     terrain,
			BlocksLight: boolOr(c.BlocksLight, true),
		})
	}
	for _, e := range yw.BlockedEdges {
		w.Ruleset.BlockedEdges = append(w.Ruleset.BlockedEdges, explore.BlockedEdge{
			From:          e.From.point(),
			To:            e.To.point(),
			Bidirectional: boolOr(e.Bidirectional, true),
		})
	}
	for _, e := range yw.ConditionalEdges {
		w.Ruleset.ConditionalEdges = append(w.Ruleset.ConditionalEdges, explore.ConditionalEdge{
			From:          e.From.point(),
			To:            e.To.point(),
			Bidirectional: boolOr(e.Bidirectional, true),
			Locked:        boolOr(e.Locked, true),
		})
	}
	if yw.Rail != nil {
		rail := explore.ForcedRail{
			LockUntilComplete: boolOr(yw.Rail.LockUntilComplete, true),
		}
		for _, p := range yw.Rail.Path {
			rail.Path = append(rail.Path, p.point())
		}
		w.Ruleset.Rail = rail
	}
	for _, s := range yw.Sites {
		w.Sites[core.P(s.X, s.Y)] = Site{Label: s.Label}
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}
