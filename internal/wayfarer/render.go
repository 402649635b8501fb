package wayfarer

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-wayfarer/internal/core"
	"github.com/vovakirdan/tui-wayfarer/internal/mapview"
)

// Render draws the expedition map to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < 20 || dst.Height() < hudHeight+4 {
		g.renderHUD(dst)
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	proj := g.projection()

	g.renderRegions(dst, proj)
	g.renderRail(dst, proj)
	g.renderEdges(dst, proj)
	g.renderTrail(dst, proj)
	g.renderNodes(dst, proj)
	g.renderHover(dst, proj)
	g.renderPlayer(dst, proj)

	g.renderHUD(dst)
	g.renderStatus(dst)

	switch {
	case g.completed:
		g.renderOverlay(dst, "Expedition complete!",
			fmt.Sprintf("%d locations charted — press R to set out again", len(g.session.Graph().Nodes())))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// plot places a rune at a projection-unit position. One character row
// spans two vertical units, matching Game.toUnits.
func (g *Game) plot(dst *core.Screen, ux, uy float64, r rune, c core.Color) {
	x := int(math.Round(ux))
	y := hudHeight + int(math.Round(uy/2))
	if y < hudHeight {
		return
	}
	dst.SetCell(x, y, r, c)
}

// drawSegment draws a straight line between two unit-space points.
func (g *Game) drawSegment(dst *core.Screen, x1, y1, x2, y2 float64, r rune, c core.Color) {
	dx, dy := x2-x1, y2-y1
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)/2)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		g.plot(dst, x1+dx*t, y1+dy*t, r, c)
	}
}

// terrainStyle returns the fill rune and color for a terrain kind.
func terrainStyle(terrain string) (rune, core.Color) {
	switch terrain {
	case "mountain":
		return '^', core.ColorGray
	case "water":
		return '~', core.ColorCyan
	case "wall":
		return '#', core.ColorWhite
	default:
		return '%', core.ColorGray
	}
}

// renderRegions draws obstacle clusters: a fill rune per blocked cell
// plus the extracted boundary loops. The region id seeds the visual
// jitter so a region looks the same every frame and every session.
func (g *Game) renderRegions(dst *core.Screen, proj mapview.Projection) {
	rules := g.session.Rules()
	regions := g.extractor.Regions(rules.Source.BlockedCells)

	for _, region := range regions {
		rng := rand.New(rand.NewSource(g.seed ^ int64(regionSeed(region.ID))))

		for _, cell := range region.Cells {
			blocked, ok := rules.BlockedAt(cell)
			if !ok {
				continue
			}
			r, c := terrainStyle(blocked.Terrain)
			// Occasional alternate rune so large fields do not tile.
			if blocked.Terrain == "mountain" && rng.Intn(4) == 0 {
				r = 'A'
			}
			ux, uy := proj.ProjectPoint(cell)
			g.plot(dst, ux, uy, r, c)
		}

		for _, loop := range region.Loops {
			edge := '·'
			if loop.SignedArea() < 0 {
				edge = '∘' // Hole boundary
			}
			for i, corner := range loop {
				next := loop[(i+1)%len(loop)]
				x1, y1 := proj.WorldToScreen(corner.World())
				nx, ny := next.World()
				x2, y2 := proj.WorldToScreen(nx, ny)
				g.drawSegment(dst, x1, y1, x2, y2, edge, core.ColorGray)
			}
		}
	}
}

// renderRail draws the forced path when one is active.
func (g *Game) renderRail(dst *core.Screen, proj mapview.Projection) {
	rail := g.session.Rules().Source.Rail
	if !rail.Active() {
		return
	}
	for i := 1; i < len(rail.Path); i++ {
		x1, y1 := proj.ProjectPoint(rail.Path[i-1])
		x2, y2 := proj.ProjectPoint(rail.Path[i])
		g.drawSegment(dst, x1, y1, x2, y2, '┄', core.ColorMagenta)
	}
}

// renderEdges draws every traversed link.
func (g *Game) renderEdges(dst *core.Screen, proj mapview.Projection) {
	graph := g.session.Graph()
	for _, e := range graph.Edges() {
		from := graph.Node(e.From)
		to := graph.Node(e.To)
		if from == nil || to == nil {
			continue
		}
		x1, y1 := proj.ProjectPoint(from.Coord())
		x2, y2 := proj.ProjectPoint(to.Coord())
		g.drawSegment(dst, x1, y1, x2, y2, '.', core.ColorGray)
	}
}

// renderTrail highlights the breadcrumb path back to the origin.
func (g *Game) renderTrail(dst *core.Screen, proj mapview.Projection) {
	graph := g.session.Graph()
	trail := graph.Trail()
	for i := 1; i < len(trail); i++ {
		from := graph.Node(trail[i-1])
		to := graph.Node(trail[i])
		if from == nil || to == nil {
			continue
		}
		x1, y1 := proj.ProjectPoint(from.Coord())
		x2, y2 := proj.ProjectPoint(to.Coord())
		g.drawSegment(dst, x1, y1, x2, y2, '·', core.ColorYellow)
	}
}

// depthColor shades nodes by depth tier: recent discoveries bright,
// old ones dim.
func depthColor(z, tierCap int) core.Color {
	if tierCap <= 0 {
		return core.ColorWhite
	}
	switch {
	case z*3 < tierCap:
		return core.ColorBrightWhite
	case z*3 < tierCap*2:
		return core.ColorWhite
	default:
		return core.ColorGray
	}
}

// renderNodes draws every discovered location.
func (g *Game) renderNodes(dst *core.Screen, proj mapview.Projection) {
	tierCap := g.session.Graph().DepthTierCap()
	for _, n := range g.session.Graph().Nodes() {
		coord := n.Coord()
		r := 'o'
		c := depthColor(n.Z, tierCap)
		if _, ok := g.world.SiteAt(coord); ok {
			if n.Cleared {
				r, c = '*', core.ColorBrightGreen
			} else {
				r, c = '?', core.ColorBrightYellow
			}
		}
		ux, uy := proj.ProjectPoint(coord)
		g.plot(dst, ux, uy, r, c)
	}
}

// renderHover marks the cell under the idle pointer.
func (g *Game) renderHover(dst *core.Screen, proj mapview.Projection) {
	if g.hover == nil {
		return
	}
	ux, uy := proj.ProjectPoint(*g.hover)
	g.plot(dst, ux-1, uy, '[', core.ColorBrightCyan)
	g.plot(dst, ux+1, uy, ']', core.ColorBrightCyan)
}

// renderPlayer draws the current position marker on top of everything.
func (g *Game) renderPlayer(dst *core.Screen, proj mapview.Projection) {
	ux, uy := proj.ProjectPoint(g.session.Coord())
	g.plot(dst, ux, uy, '@', core.ColorBrightWhite)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	mode := "guided"
	if !g.cfg.Session.PathingLocked {
		mode = "freeroam"
	}
	hud := fmt.Sprintf(" %s [%s] — Charted: %d  Steps: %d  Sites: %d/%d  Zoom: %.2f  %s",
		g.world.Title, mode,
		len(g.session.Graph().Nodes()), g.steps,
		len(g.resolved), g.world.SiteCount(),
		g.camera.Zoom, g.alignment)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderStatus draws the bottom feedback line: the site label under the
// player or pointer, or the reason the last move was denied.
func (g *Game) renderStatus(dst *core.Screen) {
	y := dst.Height() - 1

	if v := g.lastVerdict; !v.Allowed && v.Reason != "" {
		dst.DrawTextColor(1, y, v.Reason, core.ColorBrightRed)
		return
	}
	if site, ok := g.world.SiteAt(g.session.Coord()); ok {
		label := site.Label
		if g.resolved[g.session.Coord()] {
			label += " (resolved)"
		} else {
			label += " — press E to resolve"
		}
		dst.DrawTextColor(1, y, label, core.ColorBrightYellow)
		return
	}
	if g.hover != nil {
		if site, ok := g.world.SiteAt(*g.hover); ok {
			dst.DrawTextColor(1, y, site.Label, core.ColorYellow)
		}
	}
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// regionSeed derives a stable numeric seed from a region id.
func regionSeed(id string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return h.Sum64()
}
