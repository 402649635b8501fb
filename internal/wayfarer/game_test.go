package wayfarer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-wayfarer/internal/config"
	"github.com/vovakirdan/tui-wayfarer/internal/core"
	"github.com/vovakirdan/tui-wayfarer/internal/explore"
	"github.com/vovakirdan/tui-wayfarer/internal/world"
)

// testWorld is a tiny map: open plains, one mountain north of the
// origin, and two sites.
func testWorld() *world.World {
	return &world.World{
		ID:      "test-isle",
		Title:   "Test Isle",
		Origin:  core.P(0, 0),
		Heading: core.HeadingN,
		Ruleset: explore.Ruleset{
			PathingLocked: true,
			BlockedCells: []explore.BlockedCell{
				{X: 0, Y: -1, Terrain: "mountain", BlocksLight: true},
			},
		},
		Sites: map[core.Point]world.Site{
			core.P(0, 0): {Label: "Trailhead"},
			core.P(2, 0): {Label: "Old Beacon"},
		},
	}
}

func newTestGame(t *testing.T, w *world.World) *Game {
	t.Helper()
	g := New(w, config.DefaultWayfarerConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return g.Step(f)
}

func pointer(g *Game, kind core.PointerKind, x, y float64) core.StepResult {
	f := core.NewInputFrame()
	f.SetPointer(kind, x, y)
	return g.Step(f)
}

func TestResetStartsAtOrigin(t *testing.T) {
	g := newTestGame(t, testWorld())

	snap := g.Snapshot()
	if snap.Coord != core.P(0, 0) {
		t.Errorf("start coord = %s, want (0, 0)", snap.Coord)
	}
	if snap.Heading != core.HeadingN {
		t.Errorf("start heading = %s, want N", snap.Heading)
	}
	if snap.Nodes != 1 || snap.Edges != 0 || snap.TrailLen != 1 {
		t.Errorf("fresh graph = %d nodes %d edges trail %d, want 1/0/1",
			snap.Nodes, snap.Edges, snap.TrailLen)
	}
	if snap.Zoom != 1 || snap.PanX != 0 || snap.PanY != 0 {
		t.Errorf("fresh camera = zoom %v pan (%v, %v), want identity", snap.Zoom, snap.PanX, snap.PanY)
	}
}

func TestMoveGrowsGraph(t *testing.T) {
	g := newTestGame(t, testWorld())

	press(g, core.ActionMoveE)

	snap := g.Snapshot()
	if snap.Coord != core.P(1, 0) {
		t.Fatalf("coord after E = %s, want (1, 0)", snap.Coord)
	}
	if snap.Nodes != 2 || snap.Edges != 1 || snap.Steps != 1 {
		t.Errorf("after one move: %d nodes %d edges %d steps, want 2/1/1",
			snap.Nodes, snap.Edges, snap.Steps)
	}
}

func TestOutAndBackRecordsBothDirections(t *testing.T) {
	g := newTestGame(t, testWorld())

	press(g, core.ActionMoveE)
	press(g, core.ActionMoveW)

	snap := g.Snapshot()
	if snap.Coord != core.P(0, 0) {
		t.Fatalf("coord after E then W = %s, want (0, 0)", snap.Coord)
	}
	if snap.Nodes != 2 {
		t.Errorf("nodes = %d, want 2 (revisit must not duplicate)", snap.Nodes)
	}
	if snap.Edges != 2 {
		t.Errorf("edges = %d, want 2 (opposite directions are distinct)", snap.Edges)
	}
	if snap.TrailLen != 3 {
		t.Errorf("trail length = %d, want 3", snap.TrailLen)
	}
	if n := g.session.Graph().NodeAt(core.P(0, 0)); n.Visits != 2 {
		t.Errorf("origin visits = %d, want 2", n.Visits)
	}
}

func TestDeniedMoveLeavesStateUntouched(t *testing.T) {
	g := newTestGame(t, testWorld())
	before := g.Snapshot()

	press(g, core.ActionMoveN) // Mountain at (0, -1)

	after := g.Snapshot()
	if after.LastRule != explore.RuleBlockedCell {
		t.Fatalf("last rule = %s, want blocked-cell", after.LastRule)
	}
	after.LastRule = before.LastRule
	if after != before {
		t.Errorf("denied move changed state:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestStepBackRetracesWithoutNewEdges(t *testing.T) {
	g := newTestGame(t, testWorld())

	press(g, core.ActionMoveE)
	press(g, core.ActionStepBack)

	snap := g.Snapshot()
	if snap.Coord != core.P(0, 0) {
		t.Fatalf("coord after step back = %s, want (0, 0)", snap.Coord)
	}
	if snap.TrailLen != 1 {
		t.Errorf("trail length = %d, want 1", snap.TrailLen)
	}
	if snap.Edges != 1 {
		t.Errorf("edges = %d, want 1 (step back records no traversal)", snap.Edges)
	}

	// At the floor a further step back is a no-op.
	before := g.Snapshot()
	press(g, core.ActionStepBack)
	if got := g.Snapshot(); got != before {
		t.Errorf("step back at trail floor changed state")
	}
}

func TestResolveCompletesExpedition(t *testing.T) {
	g := newTestGame(t, testWorld())

	press(g, core.ActionResolve) // Trailhead at origin
	if g.Snapshot().Completed {
		t.Fatal("completed after 1 of 2 sites")
	}

	press(g, core.ActionMoveE)
	press(g, core.ActionMoveE)
	press(g, core.ActionResolve) // Old Beacon at (2, 0)

	snap := g.Snapshot()
	if snap.Resolved != 2 {
		t.Fatalf("resolved = %d, want 2", snap.Resolved)
	}
	if !snap.Completed {
		t.Error("expedition not completed after resolving every site")
	}
	if state := g.State(); !state.GameOver {
		t.Error("State().GameOver = false after completion")
	}
}

func TestResolveOffSiteIsIgnored(t *testing.T) {
	g := newTestGame(t, testWorld())

	press(g, core.ActionMoveS) // (0, 1) has no site
	press(g, core.ActionResolve)

	if got := g.Snapshot().Resolved; got != 0 {
		t.Errorf("resolved = %d after resolving on a plain cell, want 0", got)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	g := newTestGame(t, testWorld())

	press(g, core.ActionResolve)
	press(g, core.ActionResolve)

	if got := g.Snapshot().Resolved; got != 1 {
		t.Errorf("resolved = %d after double resolve, want 1", got)
	}
}

// Cell (1, 0) projects one cell east of the viewport center. With the
// default cell size 6 and an 80x24 screen that is character (46, 13).
const (
	cellEastX = 46
	cellEastY = 13
)

func TestClickTravelsToPickedCell(t *testing.T) {
	g := newTestGame(t, testWorld())

	pointer(g, core.PointerPress, cellEastX, cellEastY)
	pointer(g, core.PointerRelease, cellEastX, cellEastY)

	snap := g.Snapshot()
	if snap.Coord != core.P(1, 0) {
		t.Fatalf("coord after click = %s, want (1, 0)", snap.Coord)
	}
	if snap.Heading != core.HeadingE {
		t.Errorf("heading after eastward click = %s, want E", snap.Heading)
	}
	if snap.Nodes != 2 || snap.Steps != 1 {
		t.Errorf("after click travel: %d nodes %d steps, want 2/1", snap.Nodes, snap.Steps)
	}
}

func TestDragPansInsteadOfTraveling(t *testing.T) {
	g := newTestGame(t, testWorld())

	pointer(g, core.PointerPress, cellEastX, cellEastY)
	pointer(g, core.PointerMove, cellEastX+14, cellEastY)
	pointer(g, core.PointerRelease, cellEastX+14, cellEastY)

	snap := g.Snapshot()
	if snap.Coord != core.P(0, 0) {
		t.Fatalf("drag must not travel, coord = %s", snap.Coord)
	}
	if snap.PanX != 14 {
		t.Errorf("PanX = %v after 14-unit drag, want 14", snap.PanX)
	}
	if snap.Steps != 0 {
		t.Errorf("steps = %d after drag, want 0", snap.Steps)
	}
}

func TestWheelZoomsAndKeysZoom(t *testing.T) {
	g := newTestGame(t, testWorld())

	pointer(g, core.PointerWheelUp, 40, 13)
	if got := g.Snapshot().Zoom; got < 1.19 || got > 1.21 {
		t.Errorf("zoom after wheel up = %v, want 1.2", got)
	}

	press(g, core.ActionResetView)
	if got := g.Snapshot(); got.Zoom != 1 || got.PanX != 0 || got.PanY != 0 {
		t.Errorf("view not reset: %+v", got)
	}

	press(g, core.ActionZoomOut)
	if got := g.Snapshot().Zoom; got > 0.84 {
		t.Errorf("zoom after key zoom out = %v, want 1/1.2", got)
	}
}

func TestToggleAlignment(t *testing.T) {
	g := newTestGame(t, testWorld())

	if got := g.Snapshot().Alignment; got != "north-up" {
		t.Fatalf("default alignment = %s, want north-up", got)
	}
	press(g, core.ActionToggleAlignment)
	if got := g.Snapshot().Alignment; got != "heading-up" {
		t.Errorf("alignment after toggle = %s, want heading-up", got)
	}
	press(g, core.ActionToggleAlignment)
	if got := g.Snapshot().Alignment; got != "north-up" {
		t.Errorf("alignment after second toggle = %s, want north-up", got)
	}
}

func TestPauseBlocksMovement(t *testing.T) {
	g := newTestGame(t, testWorld())

	press(g, core.ActionPause)
	press(g, core.ActionMoveE)
	if snap := g.Snapshot(); snap.Nodes != 1 || !snap.Paused {
		t.Fatalf("paused game moved: %+v", snap)
	}

	press(g, core.ActionPause)
	press(g, core.ActionMoveE)
	if snap := g.Snapshot(); snap.Nodes != 2 || snap.Paused {
		t.Errorf("unpaused game did not move: %+v", snap)
	}
}

func TestRestartResetsExpedition(t *testing.T) {
	g := newTestGame(t, testWorld())

	press(g, core.ActionMoveE)
	press(g, core.ActionResolve)
	press(g, core.ActionZoomIn)
	press(g, core.ActionRestart)

	snap := g.Snapshot()
	if snap.Coord != core.P(0, 0) || snap.Nodes != 1 || snap.Steps != 0 || snap.Zoom != 1 {
		t.Errorf("restart did not reset: %+v", snap)
	}
}

func TestFreeroamIgnoresTerrain(t *testing.T) {
	cfg := config.DefaultWayfarerConfig()
	config.ApplyMode(&cfg, config.ModeFreeroam)

	g := New(testWorld(), cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	press(g, core.ActionMoveN) // Into the mountain

	snap := g.Snapshot()
	if snap.Coord != core.P(0, -1) {
		t.Fatalf("freeroam move denied, coord = %s", snap.Coord)
	}
	if snap.LastRule != explore.RuleUnlocked {
		t.Errorf("last rule = %s, want unlocked", snap.LastRule)
	}
}

func TestRenderShowsPlayerAndHUD(t *testing.T) {
	g := newTestGame(t, testWorld())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Test Isle") {
		t.Errorf("HUD missing world title: %q", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "@") {
		t.Error("player marker not rendered")
	}
	if !strings.Contains(screen.Row(23), "Trailhead") {
		t.Errorf("status line missing site label: %q", screen.Row(23))
	}
}

func TestRenderTooSmallShowsOverlay(t *testing.T) {
	g := newTestGame(t, testWorld())
	g.Resize(18, 8)

	screen := core.NewScreen(18, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "small") {
		t.Error("expected window-too-small overlay")
	}
}
