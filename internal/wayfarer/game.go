// Package wayfarer implements the exploration game: a player walks an
// unbounded grid, the visited graph grows behind them, and an
// interactive map camera lets them inspect where they have been.
package wayfarer

import (
	"github.com/vovakirdan/tui-wayfarer/internal/config"
	"github.com/vovakirdan/tui-wayfarer/internal/core"
	"github.com/vovakirdan/tui-wayfarer/internal/explore"
	"github.com/vovakirdan/tui-wayfarer/internal/mapview"
	"github.com/vovakirdan/tui-wayfarer/internal/world"
)

const hudHeight = 2

// clickSlop is the maximum pointer travel (in screen units) between
// press and release for the gesture to count as a click instead of a
// drag.
const clickSlop = 1.5

// Game implements one expedition through a single world.
type Game struct {
	world *world.World
	cfg   config.WayfarerConfig
	seed  int64

	session   *explore.Session
	camera    *mapview.Camera
	extractor mapview.Extractor

	alignment mapview.Alignment
	hover     *core.Point // Cell under the idle pointer, if any

	steps       int // Committed moves, step-backs included
	resolved    map[core.Point]bool
	lastVerdict explore.Verdict

	// Pointer gesture state: press position for click-vs-drag telling.
	pressX, pressY float64
	pressed        bool

	screenW, screenH int
	paused           bool
	completed        bool
}

// New creates a game for the given world and configuration.
func New(w *world.World, cfg config.WayfarerConfig) *Game {
	return &Game{
		world: w,
		cfg:   cfg,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "wayfarer:" + g.world.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.world.Title
}

// World returns the authored world this expedition runs in.
func (g *Game) World() *world.World {
	return g.world
}

// Reset initializes/restarts the expedition.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.seed = rc.Seed
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	g.session = g.world.NewSession(g.cfg.Session.PathingLocked, g.cfg.Map.DepthTierCap)

	g.camera = mapview.NewCamera()
	g.camera.ZoomMin = g.cfg.View.ZoomMin
	g.camera.ZoomMax = g.cfg.View.ZoomMax
	g.camera.ZoomStep = g.cfg.View.ZoomStep

	g.alignment = mapview.AlignNorthUp
	if g.cfg.Map.DefaultAlignment == "heading-up" {
		g.alignment = mapview.AlignHeadingUp
	}

	g.hover = nil
	g.steps = 0
	g.resolved = make(map[core.Point]bool)
	g.lastVerdict = explore.Verdict{}
	g.pressed = false
	g.paused = false
	g.completed = false
}

// Resize updates the screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Session exposes the expedition state for the platform layer.
func (g *Game) Session() *explore.Session {
	return g.session
}

// Step processes one input event. There is no tick: the game state only
// changes in response to input.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{Seed: g.seed, ScreenW: g.screenW, ScreenH: g.screenH})
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.stepView(input)
	if p := input.Pointer; p != nil {
		g.stepPointer(*p)
	}

	if g.completed {
		return core.StepResult{State: g.State()}
	}

	if h, ok := input.Move(); ok {
		g.commit(g.session.Coord(), g.session.Advance(h))
	}
	if input.Has(core.ActionStepBack) {
		if _, ok := g.session.StepBack(); ok {
			g.steps++
			g.lastVerdict = explore.Verdict{}
		}
	}
	if input.Has(core.ActionResolve) {
		g.resolveHere()
	}

	return core.StepResult{State: g.State()}
}

// stepView handles camera and alignment actions, which stay live even
// after the expedition completes.
func (g *Game) stepView(input core.InputFrame) {
	if input.Has(core.ActionToggleAlignment) {
		if g.alignment == mapview.AlignNorthUp {
			g.alignment = mapview.AlignHeadingUp
		} else {
			g.alignment = mapview.AlignNorthUp
		}
	}

	proj := g.projection()
	if input.Has(core.ActionZoomIn) {
		g.camera.ZoomCentered(proj.ViewW/2, proj.ViewH/2, true)
	}
	if input.Has(core.ActionZoomOut) {
		g.camera.ZoomCentered(proj.ViewW/2, proj.ViewH/2, false)
	}
	if input.Has(core.ActionRecenter) {
		g.camera.Recenter()
	}
	if input.Has(core.ActionResetView) {
		g.camera.Reset()
	}
}

// stepPointer handles a single pointer gesture event. Press starts a
// potential drag; release within the slop distance of the press lands
// as a click-to-travel on the cell under the pointer.
func (g *Game) stepPointer(p core.PointerEvent) {
	x, y := g.toUnits(p.X, p.Y)
	proj := g.projection()

	switch p.Kind {
	case core.PointerPress:
		g.pressed = true
		g.pressX, g.pressY = x, y
		g.camera.StartDrag(x, y)
		g.hover = nil

	case core.PointerMove:
		if g.camera.Dragging() {
			g.camera.DragTo(x, y)
			return
		}
		if cell, err := proj.Pick(x, y); err == nil {
			g.hover = &cell
		}

	case core.PointerRelease:
		g.camera.EndDrag()
		if !g.pressed {
			return
		}
		g.pressed = false
		dx, dy := x-g.pressX, y-g.pressY
		if dx*dx+dy*dy > clickSlop*clickSlop {
			return
		}
		if g.completed {
			return
		}
		if cell, err := proj.Pick(x, y); err == nil {
			g.commit(g.session.Coord(), g.session.Teleport(cell))
		}

	case core.PointerWheelUp:
		g.camera.ZoomAt(x, y, proj.ViewW/2, proj.ViewH/2, true)
	case core.PointerWheelDown:
		g.camera.ZoomAt(x, y, proj.ViewW/2, proj.ViewH/2, false)
	}
}

// commit records the outcome of a movement request. An in-place
// teleport is an allowed no-op and does not count as a step.
func (g *Game) commit(from core.Point, res explore.MoveResult) {
	g.lastVerdict = res.Verdict
	if res.Verdict.Allowed && res.Coord != from {
		g.steps++
	}
}

// resolveHere resolves the site at the current location, if any.
func (g *Game) resolveHere() {
	coord := g.session.Coord()
	if _, ok := g.world.SiteAt(coord); !ok {
		return
	}
	g.session.Resolve()
	g.resolved[coord] = true
	if len(g.resolved) >= g.world.SiteCount() && g.world.SiteCount() > 0 {
		g.completed = true
	}
}

// ResolvedSites returns how many authored sites have been resolved.
func (g *Game) ResolvedSites() int {
	return len(g.resolved)
}

// Steps returns the number of committed moves.
func (g *Game) Steps() int {
	return g.steps
}

// mapRows returns the number of character rows available to the map.
func (g *Game) mapRows() int {
	rows := g.screenH - hudHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// toUnits converts a pointer position in character cells to projection
// units. Terminal character cells are roughly twice as tall as wide, so
// one row counts as two vertical units to keep the map isotropic.
func (g *Game) toUnits(cx, cy float64) (float64, float64) {
	return cx, (cy - hudHeight) * 2
}

// projection builds the current frame's world<->screen mapping.
func (g *Game) projection() mapview.Projection {
	return mapview.Projection{
		Origin:   g.session.Coord(),
		CellSize: g.cfg.View.CellSize,
		Zoom:     g.camera.Zoom,
		PanX:     g.camera.PanX,
		PanY:     g.camera.PanY,
		Rotation: mapview.RotationFor(g.session.Heading(), g.alignment),
		ViewW:    float64(g.screenW),
		ViewH:    float64(g.mapRows() * 2),
	}
}

// State returns the current expedition state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    len(g.session.Graph().Nodes()),
		GameOver: g.completed,
		Paused:   g.paused,
	}
}
