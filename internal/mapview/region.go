package mapview

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/vovakirdan/tui-wayfarer/internal/core"
	"github.com/vovakirdan/tui-wayfarer/internal/explore"
)

// Corner is a point on the cell-corner lattice. Corner (cx, cy) sits at
// world position (cx-0.5, cy-0.5): the top-left corner of cell (x, y)
// is corner (x, y) and its bottom-right corner is (x+1, y+1).
type Corner struct {
	X, Y int
}

// World returns the corner's world-space position.
func (c Corner) World() (float64, float64) {
	return float64(c.X) - 0.5, float64(c.Y) - 0.5
}

// Loop is a closed boundary polyline on the corner lattice. The last
// point connects back to the first implicitly.
type Loop []Corner

// SignedArea returns the loop's shoelace area. With y growing downward,
// outer boundaries traced with the filled side on the right come out
// positive and hole boundaries negative.
func (l Loop) SignedArea() float64 {
	if len(l) < 3 {
		return 0
	}
	sum := 0
	for i, a := range l {
		b := l[(i+1)%len(l)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return float64(sum) / 2
}

// Region is one maximal 4-connected cluster of blocked cells with its
// boundary loops. Regions are derived data: recomputed from the blocked
// cell set, never stored.
type Region struct {
	// ID is derived from the sorted cell list, so the same obstacle
	// shape always gets the same id across recomputation. Rendering
	// layers use it to seed per-region pseudo-random detail.
	ID     string
	Cells  []core.Point // Sorted by (y, x)
	Loops  []Loop
	Bounds core.Rect // World-space bounding box of the footprint
}

// Area returns the total enclosed area of the region's loops in cells.
func (r Region) Area() float64 {
	total := 0.0
	for _, l := range r.Loops {
		total += l.SignedArea()
	}
	return total
}

// ExtractRegions partitions blocked cells into 4-connected regions and
// computes each region's closed boundary loops. For any non-empty input
// every component yields at least one loop, and the loops' combined
// enclosed area equals the cell footprint exactly.
func ExtractRegions(cells []explore.BlockedCell) []Region {
	if len(cells) == 0 {
		return nil
	}

	occupied := make(map[core.Point]bool, len(cells))
	for _, c := range cells {
		occupied[c.Coord()] = true
	}

	// Deterministic seed order for the BFS so region ordering is stable.
	seeds := make([]core.Point, 0, len(occupied))
	for p := range occupied {
		seeds = append(seeds, p)
	}
	sortPoints(seeds)

	visited := make(map[core.Point]bool, len(occupied))
	var regions []Region
	for _, seed := range seeds {
		if visited[seed] {
			continue
		}
		component := floodComponent(seed, occupied, visited)
		regions = append(regions, buildRegion(component))
	}
	return regions
}

// floodComponent consumes one 4-connected component via breadth-first
// search starting at seed.
func floodComponent(seed core.Point, occupied, visited map[core.Point]bool) []core.Point {
	var component []core.Point
	queue := []core.Point{seed}
	visited[seed] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		component = append(component, p)

		for _, d := range [4]core.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}} {
			n := p.Add(d.X, d.Y)
			if occupied[n] && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return component
}

// segment is a directed unit-length boundary edge on the corner lattice,
// oriented so the filled area lies on its right-hand side (y-down).
type segment struct {
	from, to Corner
}

func buildRegion(cells []core.Point) Region {
	sortPoints(cells)

	inRegion := make(map[core.Point]bool, len(cells))
	for _, p := range cells {
		inRegion[p] = true
	}

	// Emit one directed segment per cell side that does not border
	// another cell of the region. Orientation per side keeps the
	// interior on the right: top west->east, right north->south,
	// bottom east->west, left south->north.
	var segments []segment
	for _, p := range cells {
		tl := Corner{p.X, p.Y}
		tr := Corner{p.X + 1, p.Y}
		br := Corner{p.X + 1, p.Y + 1}
		bl := Corner{p.X, p.Y + 1}

		if !inRegion[p.Add(0, -1)] {
			segments = append(segments, segment{tl, tr})
		}
		if !inRegion[p.Add(1, 0)] {
			segments = append(segments, segment{tr, br})
		}
		if !inRegion[p.Add(0, 1)] {
			segments = append(segments, segment{br, bl})
		}
		if !inRegion[p.Add(-1, 0)] {
			segments = append(segments, segment{bl, tl})
		}
	}

	bounds := core.NewRect(float64(cells[0].X)-0.5, float64(cells[0].Y)-0.5, 1, 1)
	for _, p := range cells[1:] {
		bounds = bounds.Expand(float64(p.X)-0.5, float64(p.Y)-0.5)
		bounds = bounds.Expand(float64(p.X)+0.5, float64(p.Y)+0.5)
	}

	return Region{
		ID:     regionID(cells),
		Cells:  cells,
		Loops:  stitchLoops(segments),
		Bounds: bounds,
	}
}

// stitchLoops chains directed segments into closed loops: from an unused
// segment, repeatedly follow a segment starting at the current end
// corner until the loop closes. An unterminated chain (malformed input)
// is kept only if it reached at least 4 points; shorter fragments are
// discarded rather than rendered.
func stitchLoops(segments []segment) []Loop {
	byStart := make(map[Corner][]int, len(segments))
	for i, s := range segments {
		byStart[s.from] = append(byStart[s.from], i)
	}
	used := make([]bool, len(segments))

	takeFrom := func(c Corner) (segment, bool) {
		for _, i := range byStart[c] {
			if !used[i] {
				used[i] = true
				return segments[i], true
			}
		}
		return segment{}, false
	}

	var loops []Loop
	for i, s := range segments {
		if used[i] {
			continue
		}
		used[i] = true

		loop := Loop{s.from, s.to}
		cur := s.to
		closed := false
		for {
			next, ok := takeFrom(cur)
			if !ok {
				break
			}
			if next.to == loop[0] {
				closed = true
				break
			}
			loop = append(loop, next.to)
			cur = next.to
		}

		if closed || len(loop) >= 4 {
			loops = append(loops, loop)
		}
	}
	return loops
}

// regionID hashes the sorted cell list so identical footprints map to
// identical ids across recomputation.
func regionID(sorted []core.Point) string {
	h := fnv.New64a()
	for _, p := range sorted {
		fmt.Fprintf(h, "%d,%d;", p.X, p.Y)
	}
	return fmt.Sprintf("region-%016x", h.Sum64())
}

func sortPoints(pts []core.Point) {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
}

// Extractor memoizes region extraction on a content-derived key so the
// work reruns only when the blocked cell set actually changes.
// Correctness does not depend on the caching.
type Extractor struct {
	key     string
	regions []Region
}

// Regions returns the regions for the given blocked cells, recomputing
// only when the cell set differs from the previous call.
func (e *Extractor) Regions(cells []explore.BlockedCell) []Region {
	pts := make([]core.Point, len(cells))
	for i, c := range cells {
		pts[i] = c.Coord()
	}
	sortPoints(pts)
	key := regionID(pts)

	if key != e.key || e.regions == nil {
		e.key = key
		e.regions = ExtractRegions(cells)
	}
	return e.regions
}
