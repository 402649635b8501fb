// Package worlds contains the built-in world definitions. Each world
// registers itself with the registry in init(), mirroring how external
// world files are added at startup.
package worlds

import (
	"github.com/vovakirdan/tui-wayfarer/internal/core"
	"github.com/vovakirdan/tui-wayfarer/internal/explore"
	"github.com/vovakirdan/tui-wayfarer/internal/registry"
	"github.com/vovakirdan/tui-wayfarer/internal/world"
)

func init() {
	registry.Register(Highlands)
}

// Highlands is an open map dominated by mountain massifs: pure
// blocked-cell terrain, including a crater ring enclosing an
// unreachable hollow.
func Highlands() *world.World {
	var cells []explore.BlockedCell

	mountain := func(x, y int) {
		cells = append(cells, explore.BlockedCell{X: x, Y: y, Terrain: "mountain", BlocksLight: true})
	}

	// Northern ridge.
	for x := -2; x <= 4; x++ {
		mountain(x, -4)
	}
	mountain(-2, -3)
	mountain(4, -3)

	// Crater ring east of the origin: a 3x3 massif with a hollow center.
	for y := -1; y <= 1; y++ {
		for x := 6; x <= 8; x++ {
			if x == 7 && y == 0 {
				continue
			}
			mountain(x, y)
		}
	}

	// Scattered foothills.
	mountain(-4, 2)
	mountain(-3, 2)
	mountain(-4, 3)
	mountain(2, 4)

	return &world.World{
		ID:      "highlands",
		Title:   "The Highlands",
		Origin:  core.P(0, 0),
		Heading: core.HeadingN,
		Ruleset: explore.Ruleset{
			PathingLocked: true,
			BlockedCells:  cells,
		},
		Sites: map[core.Point]world.Site{
			core.P(0, -2): {Label: "Ridge Camp"},
			core.P(5, 0):  {Label: "Crater Watch"},
			core.P(-3, 4): {Label: "Foothill Shrine"},
		},
	}
}
