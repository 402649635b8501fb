package worlds

import (
	"github.com/vovakirdan/tui-wayfarer/internal/core"
	"github.com/vovakirdan/tui-wayfarer/internal/explore"
	"github.com/vovakirdan/tui-wayfarer/internal/registry"
	"github.com/vovakirdan/tui-wayfarer/internal/world"
)

func init() {
	registry.Register(Tidelocks)
}

// Tidelocks is a chain of walled basins separated by lock gates:
// conditional edges that open once the site on their near side is
// resolved, plus a one-way spillway that cannot be climbed back up.
func Tidelocks() *world.World {
	var cells []explore.BlockedCell
	wall := func(x, y int) {
		cells = append(cells, explore.BlockedCell{X: x, Y: y, Terrain: "wall", BlocksLight: true})
	}

	// Three basins in a row, separated by walls with gate gaps at y=0.
	for y := -2; y <= 2; y++ {
		if y != 0 {
			wall(2, y)
			wall(5, y)
		}
	}
	// Outer walls above and below the basin row.
	for x := -1; x <= 8; x++ {
		wall(x, -3)
		wall(x, 3)
	}

	return &world.World{
		ID:      "tidelocks",
		Title:   "The Tide Locks",
		Origin:  core.P(0, 0),
		Heading: core.HeadingE,
		Ruleset: explore.Ruleset{
			PathingLocked: true,
			BlockedCells:  cells,
			ConditionalEdges: []explore.ConditionalEdge{
				// Gates open from either side once the near site is
				// resolved; one shared lock per gate.
				{From: core.P(1, 0), To: core.P(2, 0), Bidirectional: true, Locked: true},
				{From: core.P(4, 0), To: core.P(5, 0), Bidirectional: true, Locked: true},
			},
			BlockedEdges: []explore.BlockedEdge{
				// The spillway at the southern rim drops one way.
				{From: core.P(7, 2), To: core.P(7, 1), Bidirectional: false},
			},
		},
		Sites: map[core.Point]world.Site{
			core.P(1, 0): {Label: "First Lock"},
			core.P(4, 0): {Label: "Second Lock"},
			core.P(7, 0): {Label: "Harbor Gate"},
		},
	}
}
