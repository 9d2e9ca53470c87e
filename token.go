package canvasim

import "math"

// TokenElement is a fixed-size image centred on its anchor. It has a single
// handle covering the image, with radius half its larger dimension.
type TokenElement struct {
	elementBase
	Image   Image
	handles []*Handle
}

// NewToken creates a token showing img centred on the world point pos.
func NewToken(img Image, pos Vec2) *TokenElement {
	t := &TokenElement{elementBase: newElementBase(pos), Image: img}
	w, h := ImageSize(img)
	t.handles = []*Handle{NewHandle(&t.anchor, math.Max(float64(w), float64(h))/2, t.id)}
	return t
}

// Handles returns the token's single handle.
func (t *TokenElement) Handles() []*Handle { return t.handles }

// HitTest uses the token's handle, so a token is picked by its circle rather
// than its image rectangle.
func (t *TokenElement) HitTest(world Vec2) bool {
	return t.handles[0].HitTest(world)
}

// Bounds returns the image rectangle in world space.
func (t *TokenElement) Bounds() Rect {
	w, h := ImageSize(t.Image)
	return Rect{
		X:      t.anchor.Pos.X - float64(w)/2,
		Y:      t.anchor.Pos.Y - float64(h)/2,
		Width:  float64(w),
		Height: float64(h),
	}
}

// Draw scales the image by the combined world and anchor scale and draws it
// centred on the mapped anchor. Nothing is drawn once the image rounds down
// to zero pixels.
func (t *TokenElement) Draw(s Surface, world Transform) {
	screen := world.Map(t.anchor)
	w, h := ImageSize(t.Image)
	sw := int(math.Round(float64(w) * screen.Scale))
	sh := int(math.Round(float64(h) * screen.Scale))
	if sw <= 0 || sh <= 0 {
		return
	}
	topLeft := screen.Pos.Sub(Vec2{float64(sw) / 2, float64(sh) / 2})
	if !surfaceRect(s).Intersects(Rect{X: topLeft.X, Y: topLeft.Y, Width: float64(sw), Height: float64(sh)}) {
		return
	}
	scaled := s.ScaleImage(t.Image, t.Image.Bounds(), sw, sh)
	s.DrawImage(scaled, topLeft)
}
