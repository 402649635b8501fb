package mapview

import "github.com/vovakirdan/tui-wayfarer/internal/core"

// Default camera limits, overridable via configuration.
const (
	DefaultZoomMin  = 0.05
	DefaultZoomMax  = 5.0
	DefaultZoomStep = 1.2
)

// Camera owns interactive zoom/pan state. It is a synchronous state
// machine: every mutation happens in direct response to a discrete
// input event, and idle/hover and dragging are mutually exclusive.
type Camera struct {
	Zoom       float64
	PanX, PanY float64

	ZoomMin  float64
	ZoomMax  float64
	ZoomStep float64 // Wheel factor, > 1

	dragging     bool
	lastX, lastY float64
}

// NewCamera creates a camera at identity (zoom 1, no pan).
func NewCamera() *Camera {
	return &Camera{
		Zoom:     1,
		ZoomMin:  DefaultZoomMin,
		ZoomMax:  DefaultZoomMax,
		ZoomStep: DefaultZoomStep,
	}
}

// Dragging reports whether a drag gesture is in progress.
func (c *Camera) Dragging() bool {
	return c.dragging
}

// StartDrag begins a drag gesture at a screen position.
func (c *Camera) StartDrag(x, y float64) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

// DragTo accumulates the screen-space delta since the previous pointer
// position into the pan, 1:1 and independent of zoom. Ignored when no
// drag is in progress.
func (c *Camera) DragTo(x, y float64) {
	if !c.dragging {
		return
	}
	c.PanX += x - c.lastX
	c.PanY += y - c.lastY
	c.lastX, c.lastY = x, y
}

// EndDrag releases the drag gesture (pointer up, cancel or leave).
func (c *Camera) EndDrag() {
	c.dragging = false
}

// ZoomAt multiplies the zoom by the wheel factor (or its reciprocal for
// zoom-out), clamped to [ZoomMin, ZoomMax], and adjusts pan so the world
// point under the cursor stays under the cursor.
func (c *Camera) ZoomAt(cursorX, cursorY, centerX, centerY float64, in bool) {
	factor := c.ZoomStep
	if !in {
		factor = 1 / factor
	}
	newZoom := core.ClampF(c.Zoom*factor, c.ZoomMin, c.ZoomMax)
	if newZoom == c.Zoom {
		return
	}

	ratio := newZoom / c.Zoom
	cx := cursorX - centerX
	cy := cursorY - centerY
	c.PanX = cx - (cx-c.PanX)*ratio
	c.PanY = cy - (cy-c.PanY)*ratio
	c.Zoom = newZoom
}

// ZoomCentered zooms anchored at the viewport center (keyboard zoom).
func (c *Camera) ZoomCentered(centerX, centerY float64, in bool) {
	c.ZoomAt(centerX, centerY, centerX, centerY, in)
}

// Reset restores zoom 1 and zero pan.
func (c *Camera) Reset() {
	c.Zoom = 1
	c.PanX, c.PanY = 0, 0
}

// Recenter zeroes the pan while preserving zoom ("center on player").
func (c *Camera) Recenter() {
	c.PanX, c.PanY = 0, 0
}
