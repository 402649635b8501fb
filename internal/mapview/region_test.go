package mapview

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-wayfarer/internal/core"
	"github.com/vovakirdan/tui-wayfarer/internal/explore"
)

func cellsAt(pts ...core.Point) []explore.BlockedCell {
	out := make([]explore.BlockedCell, len(pts))
	for i, p := range pts {
		out[i] = explore.BlockedCell{X: p.X, Y: p.Y, Terrain: "mountain"}
	}
	return out
}

func TestExtractRegionsEmpty(t *testing.T) {
	if got := ExtractRegions(nil); got != nil {
		t.Errorf("ExtractRegions(nil) = %v, expected nil", got)
	}
}

func TestExtractRegionsSingleCell(t *testing.T) {
	regions := ExtractRegions(cellsAt(core.P(2, 3)))
	if len(regions) != 1 {
		t.Fatalf("regions = %d, expected 1", len(regions))
	}
	r := regions[0]
	if len(r.Loops) != 1 {
		t.Fatalf("loops = %d, expected 1", len(r.Loops))
	}
	if len(r.Loops[0]) != 4 {
		t.Errorf("loop points = %d, expected 4", len(r.Loops[0]))
	}
	if math.Abs(r.Area()-1) > 1e-9 {
		t.Errorf("area = %v, expected 1", r.Area())
	}

	// Corner world positions sit at ±0.5 offsets from the cell center.
	wx, wy := r.Loops[0][0].World()
	if wx != 1.5 || wy != 2.5 {
		t.Errorf("first corner at (%v, %v), expected (1.5, 2.5)", wx, wy)
	}
}

func TestExtractRegionsComponents(t *testing.T) {
	// Two diagonal cells are separate components: diagonal adjacency
	// does not connect.
	regions := ExtractRegions(cellsAt(core.P(0, 0), core.P(1, 1)))
	if len(regions) != 2 {
		t.Fatalf("regions = %d, expected 2 (no diagonal adjacency)", len(regions))
	}

	// An L-tromino is one component.
	regions = ExtractRegions(cellsAt(core.P(0, 0), core.P(0, 1), core.P(1, 1)))
	if len(regions) != 1 {
		t.Fatalf("regions = %d, expected 1", len(regions))
	}
	if math.Abs(regions[0].Area()-3) > 1e-9 {
		t.Errorf("L-tromino area = %v, expected 3", regions[0].Area())
	}
}

func TestExtractRegionsRingWithHole(t *testing.T) {
	// 3x3 block with the center removed: one region, two loops (outer
	// boundary and hole boundary), combined enclosed area 8.
	var pts []core.Point
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				continue
			}
			pts = append(pts, core.P(x, y))
		}
	}

	regions := ExtractRegions(cellsAt(pts...))
	if len(regions) != 1 {
		t.Fatalf("regions = %d, expected 1", len(regions))
	}
	r := regions[0]
	if len(r.Loops) != 2 {
		t.Fatalf("loops = %d, expected 2 (outer + hole)", len(r.Loops))
	}
	if math.Abs(r.Area()-8) > 1e-9 {
		t.Errorf("combined enclosed area = %v, expected 8", r.Area())
	}

	// One loop positive (outer), one negative (hole).
	a0, a1 := r.Loops[0].SignedArea(), r.Loops[1].SignedArea()
	if a0*a1 >= 0 {
		t.Errorf("loop areas %v and %v, expected opposite signs", a0, a1)
	}
}

func TestExtractRegionsAreaMatchesFootprint(t *testing.T) {
	shapes := []struct {
		name string
		pts  []core.Point
	}{
		{"bar", []core.Point{core.P(0, 0), core.P(1, 0), core.P(2, 0), core.P(3, 0)}},
		{"square", []core.Point{core.P(0, 0), core.P(1, 0), core.P(0, 1), core.P(1, 1)}},
		{"plus", []core.Point{core.P(1, 0), core.P(0, 1), core.P(1, 1), core.P(2, 1), core.P(1, 2)}},
		{"zigzag", []core.Point{core.P(0, 0), core.P(1, 0), core.P(1, 1), core.P(2, 1), core.P(2, 2)}},
	}

	for _, tc := range shapes {
		t.Run(tc.name, func(t *testing.T) {
			regions := ExtractRegions(cellsAt(tc.pts...))
			total := 0.0
			for _, r := range regions {
				total += r.Area()
			}
			if math.Abs(total-float64(len(tc.pts))) > 1e-9 {
				t.Errorf("enclosed area = %v, expected %d", total, len(tc.pts))
			}
		})
	}
}

func TestRegionIDStable(t *testing.T) {
	// The same footprint must yield the same id regardless of input
	// order; a different footprint must not.
	a := ExtractRegions(cellsAt(core.P(0, 0), core.P(1, 0)))
	b := ExtractRegions(cellsAt(core.P(1, 0), core.P(0, 0)))
	if a[0].ID != b[0].ID {
		t.Errorf("ids differ for identical footprints: %q vs %q", a[0].ID, b[0].ID)
	}

	c := ExtractRegions(cellsAt(core.P(0, 0), core.P(0, 1)))
	if c[0].ID == a[0].ID {
		t.Errorf("distinct footprints share id %q", a[0].ID)
	}
}

func TestRegionBounds(t *testing.T) {
	regions := ExtractRegions(cellsAt(core.P(1, 1), core.P(2, 1)))
	if len(regions) != 1 {
		t.Fatalf("regions = %d, expected 1", len(regions))
	}
	b := regions[0].Bounds
	if b.X != 0.5 || b.Y != 0.5 || b.Right() != 2.5 || b.Bottom() != 1.5 {
		t.Errorf("bounds = %+v, expected [0.5,0.5 .. 2.5,1.5]", b)
	}
}

func TestExtractorMemoizes(t *testing.T) {
	var e Extractor
	cells := cellsAt(core.P(0, 0), core.P(1, 0))

	first := e.Regions(cells)
	second := e.Regions(cellsAt(core.P(1, 0), core.P(0, 0))) // Same set, different order
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("unexpected region counts %d, %d", len(first), len(second))
	}
	if &first[0] != &second[0] {
		t.Error("extractor recomputed for an unchanged cell set")
	}

	third := e.Regions(cellsAt(core.P(0, 0)))
	if len(third) != 1 || third[0].ID == first[0].ID {
		t.Error("extractor did not recompute for a changed cell set")
	}
}
