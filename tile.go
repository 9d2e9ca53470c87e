package canvasim

import (
	"image"
	"math"
)

// SurfaceTile is a large image whose top-left corner sits on its anchor. Only
// the part of the image inside the surface is extracted and rescaled, and the
// result is reused until the view changes.
type SurfaceTile struct {
	elementBase
	Image Image

	cache    tileCache
	rebuilds int
}

// tileCache holds the last extracted region. The key is compared by value;
// an empty region is cached as a nil image.
type tileCache struct {
	valid bool

	world   Transform
	anchor  Vec2
	surface Surface
	screenW int
	screenH int

	image Image
	pos   Vec2
}

func (c *tileCache) matches(world Transform, anchor Vec2, s Surface, w, h int) bool {
	return c.valid && c.world.Equal(world) && c.anchor == anchor &&
		c.surface == s && c.screenW == w && c.screenH == h
}

// NewSurfaceTile creates a tile with its top-left corner at pos.
func NewSurfaceTile(img Image, pos Vec2) *SurfaceTile {
	return &SurfaceTile{elementBase: newElementBase(pos), Image: img}
}

// HitTest reports whether world lies inside the image rectangle.
func (t *SurfaceTile) HitTest(world Vec2) bool {
	return t.Bounds().Contains(world)
}

// Bounds returns the image rectangle in world space.
func (t *SurfaceTile) Bounds() Rect {
	w, h := ImageSize(t.Image)
	return Rect{X: t.anchor.Pos.X, Y: t.anchor.Pos.Y, Width: float64(w), Height: float64(h)}
}

// Draw draws the visible part of the tile, recomputing it only when the
// world transform, the tile position or the surface changed since last time.
func (t *SurfaceTile) Draw(s Surface, world Transform) {
	sw, sh := s.Size()
	if !t.cache.matches(world, t.anchor.Pos, s, sw, sh) {
		t.rebuild(s, world, sw, sh)
	}
	if t.cache.image == nil {
		return
	}
	s.DrawImage(t.cache.image, t.cache.pos)
}

func (t *SurfaceTile) rebuild(s Surface, world Transform, sw, sh int) {
	t.rebuilds++
	t.cache = tileCache{
		valid:   true,
		world:   world,
		anchor:  t.anchor.Pos,
		surface: s,
		screenW: sw,
		screenH: sh,
	}
	src, dw, dh, pos, ok := visibleRegion(t.Image.Bounds(), t.anchor.Pos, world, sw, sh)
	if !ok {
		return
	}
	t.cache.image = s.ScaleImage(t.Image, src, dw, dh)
	t.cache.pos = pos
}

// visibleRegion works out which source pixels of an image anchored at anchor
// land on a sw x sh surface. It returns the source rectangle (in the image's
// own coordinates), the scaled size and the screen position to draw it at.
// ok is false when nothing is visible.
func visibleRegion(bounds image.Rectangle, anchor Vec2, world Transform, sw, sh int) (src image.Rectangle, dw, dh int, pos Vec2, ok bool) {
	iw, ih := bounds.Dx(), bounds.Dy()
	scale := world.Scale
	screen := world.MapPoint(anchor)

	visL := math.Max(0, -screen.X)
	visT := math.Max(0, -screen.Y)
	visR := math.Min(float64(iw)*scale, float64(sw)-screen.X)
	visB := math.Min(float64(ih)*scale, float64(sh)-screen.Y)
	if visL >= visR || visT >= visB {
		return image.Rectangle{}, 0, 0, Vec2{}, false
	}

	srcL := clampInt(int(math.Floor(visL/scale)), 0, iw)
	srcT := clampInt(int(math.Floor(visT/scale)), 0, ih)
	srcR := clampInt(int(math.Ceil(visR/scale)), 0, iw)
	srcB := clampInt(int(math.Ceil(visB/scale)), 0, ih)
	if srcR-srcL <= 0 || srcB-srcT <= 0 {
		return image.Rectangle{}, 0, 0, Vec2{}, false
	}

	dw = int(math.Round(float64(srcR-srcL) * scale))
	dh = int(math.Round(float64(srcB-srcT) * scale))
	if dw <= 0 || dh <= 0 {
		return image.Rectangle{}, 0, 0, Vec2{}, false
	}

	pos = screen.Add(Vec2{float64(srcL) * scale, float64(srcT) * scale})
	src = image.Rect(srcL, srcT, srcR, srcB).Add(bounds.Min)
	return src, dw, dh, pos, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
