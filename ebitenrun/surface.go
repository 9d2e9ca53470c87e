package ebitenrun

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/canvasim"
	"github.com/phanxgames/canvasim/internal/imgcache"
)

// ConvertedImageFrames is how many frames a GPU copy of a plain image
// survives without being drawn.
const ConvertedImageFrames = 300

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface draws onto an *ebiten.Image. Clipping is done with sub-images,
// which keep the parent's coordinate space.
type Surface struct {
	target *ebiten.Image
	clips  []image.Rectangle

	// converted holds GPU copies of plain image.Image values, keyed by the
	// source image.
	converted *imgcache.Cache[image.Image, *ebiten.Image]
	vertices  []ebiten.Vertex
	indices   []uint16

	// AntiAlias enables anti-aliased vector drawing.
	AntiAlias bool
}

// NewSurface returns a surface drawing onto target.
func NewSurface(target *ebiten.Image) *Surface {
	return &Surface{
		target:    target,
		converted: imgcache.New[image.Image](ConvertedImageFrames, (*ebiten.Image).Deallocate),
		AntiAlias: true,
	}
}

// Reset points the surface at a new frame target and drops any clips. GPU
// copies of images that have not been drawn for ConvertedImageFrames frames
// are released.
func (s *Surface) Reset(target *ebiten.Image) {
	s.target = target
	s.clips = s.clips[:0]
	s.converted.Frame()
}

func (s *Surface) dst() *ebiten.Image {
	if len(s.clips) == 0 {
		return s.target
	}
	return s.target.SubImage(s.clips[len(s.clips)-1]).(*ebiten.Image)
}

// Size implements canvasim.Surface.
func (s *Surface) Size() (w, h int) {
	b := s.target.Bounds()
	return b.Dx(), b.Dy()
}

func f32(v float64) float32 { return float32(v) }

// FillRect implements canvasim.Surface.
func (s *Surface) FillRect(r canvasim.Rect, c color.Color) {
	vector.DrawFilledRect(s.dst(), f32(r.X), f32(r.Y), f32(r.Width), f32(r.Height), c, s.AntiAlias)
}

// StrokeRect implements canvasim.Surface.
func (s *Surface) StrokeRect(r canvasim.Rect, width float64, c color.Color) {
	vector.StrokeRect(s.dst(), f32(r.X), f32(r.Y), f32(r.Width), f32(r.Height), f32(width), c, s.AntiAlias)
}

// FillCircle implements canvasim.Surface.
func (s *Surface) FillCircle(center canvasim.Vec2, radius float64, c color.Color) {
	vector.DrawFilledCircle(s.dst(), f32(center.X), f32(center.Y), f32(radius), c, s.AntiAlias)
}

// StrokeCircle implements canvasim.Surface.
func (s *Surface) StrokeCircle(center canvasim.Vec2, radius, width float64, c color.Color) {
	vector.StrokeCircle(s.dst(), f32(center.X), f32(center.Y), f32(radius), f32(width), c, s.AntiAlias)
}

// Line implements canvasim.Surface.
func (s *Surface) Line(a, b canvasim.Vec2, width float64, c color.Color) {
	vector.StrokeLine(s.dst(), f32(a.X), f32(a.Y), f32(b.X), f32(b.Y), f32(width), c, s.AntiAlias)
}

func polygonPath(points []canvasim.Vec2) *vector.Path {
	var p vector.Path
	p.MoveTo(f32(points[0].X), f32(points[0].Y))
	for _, pt := range points[1:] {
		p.LineTo(f32(pt.X), f32(pt.Y))
	}
	p.Close()
	return &p
}

// FillPolygon implements canvasim.Surface.
func (s *Surface) FillPolygon(points []canvasim.Vec2, c color.Color) {
	if len(points) < 3 {
		return
	}
	s.vertices, s.indices = polygonPath(points).AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.drawTriangles(c, ebiten.FillRuleNonZero)
}

// StrokePolygon implements canvasim.Surface.
func (s *Surface) StrokePolygon(points []canvasim.Vec2, width float64, c color.Color) {
	if len(points) < 2 {
		return
	}
	opts := &vector.StrokeOptions{Width: f32(width), LineJoin: vector.LineJoinMiter, MiterLimit: 4}
	s.vertices, s.indices = polygonPath(points).AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], opts)
	s.drawTriangles(c, ebiten.FillRuleFillAll)
}

func (s *Surface) drawTriangles(c color.Color, rule ebiten.FillRule) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return
	}
	// Vertex colors are straight alpha.
	cr := float32(r) / float32(a)
	cg := float32(g) / float32(a)
	cb := float32(b) / float32(a)
	ca := float32(a) / 0xffff
	for i := range s.vertices {
		v := &s.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = cr, cg, cb, ca
	}
	s.dst().DrawTriangles(s.vertices, s.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: s.AntiAlias,
		FillRule:  rule,
	})
}

// scaledImage is a deferred rescale of a source region, applied by
// DrawImage through the GPU. It keeps the source rather than its GPU copy,
// which may be released and recreated while the scaled image is cached.
type scaledImage struct {
	img    canvasim.Image
	src    image.Rectangle
	w, h   int
	sx, sy float64
}

func (i *scaledImage) Bounds() image.Rectangle { return image.Rect(0, 0, i.w, i.h) }

func (s *Surface) ebitenImage(img canvasim.Image) *ebiten.Image {
	switch img := img.(type) {
	case *ebiten.Image:
		return img
	case image.Image:
		return s.converted.Get(img, func() *ebiten.Image { return ebiten.NewImageFromImage(img) })
	}
	return nil
}

// ScaleImage implements canvasim.Surface. The result is drawn with linear
// filtering when passed to DrawImage.
func (s *Surface) ScaleImage(img canvasim.Image, src image.Rectangle, w, h int) canvasim.Image {
	if s.ebitenImage(img) == nil || w <= 0 || h <= 0 || src.Empty() {
		return &scaledImage{}
	}
	// Plain images were converted with their bounds moved to the origin.
	if _, ok := img.(*ebiten.Image); !ok {
		src = src.Sub(img.Bounds().Min)
	}
	return &scaledImage{
		img: img,
		src: src,
		w:   w,
		h:   h,
		sx:  float64(w) / float64(src.Dx()),
		sy:  float64(h) / float64(src.Dy()),
	}
}

// DrawImage implements canvasim.Surface.
func (s *Surface) DrawImage(img canvasim.Image, pos canvasim.Vec2) {
	op := &ebiten.DrawImageOptions{}
	var src *ebiten.Image
	if si, ok := img.(*scaledImage); ok {
		if si.img == nil {
			return
		}
		src = s.ebitenImage(si.img).SubImage(si.src).(*ebiten.Image)
		b := src.Bounds()
		op.GeoM.Translate(-float64(b.Min.X), -float64(b.Min.Y))
		op.GeoM.Scale(si.sx, si.sy)
		op.Filter = ebiten.FilterLinear
	} else {
		src = s.ebitenImage(img)
		if src == nil {
			return
		}
		b := src.Bounds()
		op.GeoM.Translate(-float64(b.Min.X), -float64(b.Min.Y))
	}
	op.GeoM.Translate(math.Round(pos.X), math.Round(pos.Y))
	s.dst().DrawImage(src, op)
}

// PushClip implements canvasim.Surface.
func (s *Surface) PushClip(r image.Rectangle) {
	cur := s.target.Bounds()
	if len(s.clips) > 0 {
		cur = s.clips[len(s.clips)-1]
	}
	s.clips = append(s.clips, r.Intersect(cur))
}

// PopClip implements canvasim.Surface.
func (s *Surface) PopClip() {
	if len(s.clips) > 0 {
		s.clips = s.clips[:len(s.clips)-1]
	}
}
