// Package mapview turns world-space geometry into screen-space geometry:
// coordinate projection, interactive camera state and obstacle region
// boundary extraction. It holds no game state and knows nothing about
// the terminal.
package mapview

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-wayfarer/internal/core"
)

// Alignment selects the map rotation mode.
type Alignment int

const (
	// AlignNorthUp keeps true north at the top of the screen.
	AlignNorthUp Alignment = iota
	// AlignHeadingUp rotates the map so the player's facing points up.
	AlignHeadingUp
)

// String returns the alignment mode name.
func (a Alignment) String() string {
	if a == AlignHeadingUp {
		return "heading-up"
	}
	return "north-up"
}

// RotationFor returns the map rotation in radians for a heading under an
// alignment mode. North-up is always zero; heading-up rotates by
// -(index * 45°) so the facing points toward the top of the screen.
func RotationFor(h core.Heading, a Alignment) float64 {
	if a == AlignNorthUp {
		return 0
	}
	return -float64(h.Index()) * math.Pi / 4
}

// Projection is a pure world<->screen mapping parameterized by the
// camera. It maintains no state: build one per frame (or per camera
// change) and use it for every point.
type Projection struct {
	Origin     core.Point // Camera origin, usually the current node
	CellSize   float64    // Screen units per world cell at zoom 1
	Zoom       float64
	PanX, PanY float64
	Rotation   float64 // Radians; see RotationFor
	ViewW      float64 // Viewport size in screen units
	ViewH      float64
}

// WorldToScreen maps a world-space position (fractional cells allowed,
// e.g. region corner points) to screen units.
func (p Projection) WorldToScreen(x, y float64) (float64, float64) {
	dx := (x - float64(p.Origin.X)) * p.CellSize * p.Zoom
	dy := (y - float64(p.Origin.Y)) * p.CellSize * p.Zoom

	sin, cos := math.Sincos(p.Rotation)
	rx := dx*cos - dy*sin
	ry := dx*sin + dy*cos

	return rx + p.PanX + p.ViewW/2, ry + p.PanY + p.ViewH/2
}

// ScreenToWorld is the exact inverse of WorldToScreen.
func (p Projection) ScreenToWorld(px, py float64) (float64, float64) {
	rx := px - p.PanX - p.ViewW/2
	ry := py - p.PanY - p.ViewH/2

	sin, cos := math.Sincos(-p.Rotation)
	dx := rx*cos - ry*sin
	dy := rx*sin + ry*cos

	scale := p.CellSize * p.Zoom
	return dx/scale + float64(p.Origin.X), dy/scale + float64(p.Origin.Y)
}

// Pick maps a pointer position to the grid cell under it. Non-finite
// input is rejected at the boundary so downstream graph operations only
// ever see well-defined integer coordinates.
func (p Projection) Pick(px, py float64) (core.Point, error) {
	if !isFinite(px) || !isFinite(py) {
		return core.Point{}, fmt.Errorf("mapview: non-finite pointer position (%v, %v)", px, py)
	}
	wx, wy := p.ScreenToWorld(px, py)
	if !isFinite(wx) || !isFinite(wy) {
		return core.Point{}, fmt.Errorf("mapview: projection produced non-finite world position")
	}
	return core.P(int(math.Round(wx)), int(math.Round(wy))), nil
}

// ProjectPoint maps a grid coordinate (cell center) to screen units.
func (p Projection) ProjectPoint(pt core.Point) (float64, float64) {
	return p.WorldToScreen(float64(pt.X), float64(pt.Y))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
