package canvasim

import "image/color"

// HandleRingWidth is the stroke width, in pixels, of a hovered handle ring.
const HandleRingWidth = 1

// Handle is a circular hit target bound to a transform owned by an element.
// Radius is in world units. Owner is resolved through the [Store]; a handle
// never keeps its element alive.
type Handle struct {
	Transform *Transform
	Radius    float64
	Owner     ElementID
}

// NewHandle returns a handle at t owned by the element with the given id.
func NewHandle(t *Transform, radius float64, owner ElementID) *Handle {
	return &Handle{Transform: t, Radius: radius, Owner: owner}
}

// Position returns the handle's world position.
func (h *Handle) Position() Vec2 { return h.Transform.Pos }

// SetPosition moves the transform the handle is bound to.
func (h *Handle) SetPosition(p Vec2) { h.Transform.Pos = p }

// HitTest reports whether world lies strictly within Radius of the handle.
func (h *Handle) HitTest(world Vec2) bool {
	return world.Sub(h.Transform.Pos).Len() < h.Radius
}

// Draw strokes the handle ring. The radius follows the zoom level.
func (h *Handle) Draw(s Surface, world Transform, c color.Color) {
	s.StrokeCircle(world.MapPoint(h.Transform.Pos), h.Radius*world.Scale, HandleRingWidth, c)
}
