// Package raster renders a canvas on the CPU into an *image.RGBA. It is used
// for headless snapshots and tests.
package raster

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/phanxgames/canvasim"
)

// Surface implements canvasim.Surface over an *image.RGBA. Shapes are
// filled with an anti-aliasing rasterizer; strokes are built as filled
// outlines.
type Surface struct {
	dst   *image.RGBA
	clips []image.Rectangle
	z     vector.Rasterizer
	// Scaler resamples images for ScaleImage.
	Scaler xdraw.Scaler
}

// NewSurface returns a surface drawing into dst.
func NewSurface(dst *image.RGBA) *Surface {
	return &Surface{dst: dst, Scaler: xdraw.ApproxBiLinear}
}

// New allocates a w x h image and returns a surface over it.
func New(w, h int) *Surface {
	return NewSurface(image.NewRGBA(image.Rect(0, 0, w, h)))
}

// Image returns the image being drawn into.
func (s *Surface) Image() *image.RGBA { return s.dst }

// Size implements canvasim.Surface.
func (s *Surface) Size() (w, h int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) clip() image.Rectangle {
	if len(s.clips) == 0 {
		return s.dst.Bounds()
	}
	return s.clips[len(s.clips)-1]
}

// path collects subpaths for one fill.
type path struct {
	contours [][]canvasim.Vec2
}

func (p *path) add(pts []canvasim.Vec2) {
	if len(pts) >= 3 {
		p.contours = append(p.contours, pts)
	}
}

// fill rasterizes p with non-zero accumulation, clipped to the current clip.
func (s *Surface) fill(p *path, c color.Color) {
	r := s.clip()
	if r.Empty() || len(p.contours) == 0 {
		return
	}
	off := canvasim.Vec2{X: float64(r.Min.X), Y: float64(r.Min.Y)}
	s.z.Reset(r.Dx(), r.Dy())
	s.z.DrawOp = xdraw.Over
	for _, pts := range p.contours {
		first := pts[0].Sub(off)
		s.z.MoveTo(float32(first.X), float32(first.Y))
		for _, pt := range pts[1:] {
			q := pt.Sub(off)
			s.z.LineTo(float32(q.X), float32(q.Y))
		}
		s.z.ClosePath()
	}
	s.z.Draw(s.dst, r, image.NewUniform(c), image.Point{})
}

func rectContour(r canvasim.Rect) []canvasim.Vec2 {
	return []canvasim.Vec2{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

func reversed(pts []canvasim.Vec2) []canvasim.Vec2 {
	out := make([]canvasim.Vec2, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// circleContour approximates a circle with enough segments that each is
// about two pixels long.
func circleContour(center canvasim.Vec2, radius float64) []canvasim.Vec2 {
	n := int(math.Ceil(2 * math.Pi * radius / 2))
	n = max(16, min(n, 256))
	pts := make([]canvasim.Vec2, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = canvasim.Vec2{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return pts
}

// segmentContour is the quad covering a line of the given width. It is
// empty for zero-length segments.
func segmentContour(a, b canvasim.Vec2, width float64) []canvasim.Vec2 {
	d := b.Sub(a)
	l := d.Len()
	if l == 0 {
		return nil
	}
	n := canvasim.Vec2{X: -d.Y / l, Y: d.X / l}.Mul(width / 2)
	return []canvasim.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
}

func strokeWidth(w float64) float64 {
	if w <= 0 {
		return 1
	}
	return w
}

// FillRect implements canvasim.Surface.
func (s *Surface) FillRect(r canvasim.Rect, c color.Color) {
	var p path
	p.add(rectContour(r))
	s.fill(&p, c)
}

// StrokeRect implements canvasim.Surface. The stroke is centred on the
// rectangle edge.
func (s *Surface) StrokeRect(r canvasim.Rect, width float64, c color.Color) {
	hw := strokeWidth(width) / 2
	outer := canvasim.Rect{X: r.X - hw, Y: r.Y - hw, Width: r.Width + 2*hw, Height: r.Height + 2*hw}
	var p path
	p.add(rectContour(outer))
	if r.Width > 2*hw && r.Height > 2*hw {
		inner := canvasim.Rect{X: r.X + hw, Y: r.Y + hw, Width: r.Width - 2*hw, Height: r.Height - 2*hw}
		p.add(reversed(rectContour(inner)))
	}
	s.fill(&p, c)
}

// FillCircle implements canvasim.Surface.
func (s *Surface) FillCircle(center canvasim.Vec2, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	var p path
	p.add(circleContour(center, radius))
	s.fill(&p, c)
}

// StrokeCircle implements canvasim.Surface.
func (s *Surface) StrokeCircle(center canvasim.Vec2, radius, width float64, c color.Color) {
	if radius <= 0 {
		return
	}
	hw := strokeWidth(width) / 2
	var p path
	p.add(circleContour(center, radius+hw))
	if radius > hw {
		p.add(reversed(circleContour(center, radius-hw)))
	}
	s.fill(&p, c)
}

// FillPolygon implements canvasim.Surface.
func (s *Surface) FillPolygon(points []canvasim.Vec2, c color.Color) {
	var p path
	p.add(points)
	s.fill(&p, c)
}

// StrokePolygon implements canvasim.Surface as one quad per closed edge.
func (s *Surface) StrokePolygon(points []canvasim.Vec2, width float64, c color.Color) {
	if len(points) < 2 {
		return
	}
	w := strokeWidth(width)
	var p path
	for i := range points {
		p.add(segmentContour(points[i], points[(i+1)%len(points)], w))
	}
	s.fill(&p, c)
}

// Line implements canvasim.Surface.
func (s *Surface) Line(a, b canvasim.Vec2, width float64, c color.Color) {
	var p path
	p.add(segmentContour(a, b, strokeWidth(width)))
	s.fill(&p, c)
}

// ScaleImage implements canvasim.Surface. img must be an image.Image; the
// result is a new *image.RGBA of size w x h.
func (s *Surface) ScaleImage(img canvasim.Image, src image.Rectangle, w, h int) canvasim.Image {
	out := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	si, ok := img.(image.Image)
	if !ok || w <= 0 || h <= 0 || src.Empty() {
		return out
	}
	s.Scaler.Scale(out, out.Bounds(), si, src, xdraw.Src, nil)
	return out
}

// DrawImage implements canvasim.Surface. Positions are rounded to whole
// pixels.
func (s *Surface) DrawImage(img canvasim.Image, pos canvasim.Vec2) {
	si, ok := img.(image.Image)
	if !ok {
		return
	}
	b := si.Bounds()
	at := image.Pt(int(math.Round(pos.X)), int(math.Round(pos.Y)))
	r := image.Rectangle{Min: at, Max: at.Add(b.Size())}.Intersect(s.clip())
	if r.Empty() {
		return
	}
	xdraw.Draw(s.dst, r, si, b.Min.Add(r.Min.Sub(at)), xdraw.Over)
}

// PushClip implements canvasim.Surface.
func (s *Surface) PushClip(r image.Rectangle) {
	s.clips = append(s.clips, r.Intersect(s.clip()))
}

// PopClip implements canvasim.Surface.
func (s *Surface) PopClip() {
	if len(s.clips) > 0 {
		s.clips = s.clips[:len(s.clips)-1]
	}
}

// Render draws one frame of c into a new w x h image.
func Render(c *canvasim.Canvas, w, h int) *image.RGBA {
	s := New(w, h)
	c.Draw(s)
	return s.dst
}
