package worlds

import (
	"github.com/vovakirdan/tui-wayfarer/internal/core"
	"github.com/vovakirdan/tui-wayfarer/internal/explore"
	"github.com/vovakirdan/tui-wayfarer/internal/registry"
	"github.com/vovakirdan/tui-wayfarer/internal/world"
)

func init() {
	registry.Register(Causeway)
}

// Causeway is a rail world: a narrow stone path across open water. The
// forced rail drives the crossing step by step; once the far shore is
// reached movement is free again.
func Causeway() *world.World {
	var cells []explore.BlockedCell
	water := func(x, y int) {
		cells = append(cells, explore.BlockedCell{X: x, Y: y, Terrain: "water", BlocksLight: false})
	}

	// The strait: two bands of water with the causeway threading through.
	for x := -1; x <= 7; x++ {
		for y := -2; y <= 2; y++ {
			if onCauseway(core.P(x, y)) {
				continue
			}
			water(x, y)
		}
	}

	return &world.World{
		ID:      "causeway",
		Title:   "The Causeway",
		Origin:  core.P(-2, 0),
		Heading: core.HeadingE,
		Ruleset: explore.Ruleset{
			PathingLocked: true,
			BlockedCells:  cells,
			Rail: explore.ForcedRail{
				Path:              causewayPath(),
				LockUntilComplete: true,
			},
		},
		Sites: map[core.Point]world.Site{
			core.P(-2, 0): {Label: "Near Shore"},
			core.P(8, 0):  {Label: "Far Shore"},
		},
	}
}

// causewayPath is the mandatory crossing, including the shore tiles at
// both ends.
func causewayPath() []core.Point {
	return []core.Point{
		core.P(-2, 0), core.P(-1, 0), core.P(0, 0), core.P(1, 0),
		core.P(1, 1), core.P(2, 1), core.P(3, 1), core.P(3, 0),
		core.P(4, 0), core.P(5, 0), core.P(6, 0), core.P(7, 0), core.P(8, 0),
	}
}

func onCauseway(p core.Point) bool {
	for _, c := range causewayPath() {
		if c == p {
			return true
		}
	}
	return false
}
