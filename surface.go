package canvasim

import (
	"image"
	"image/color"
)

// Image is a fixed-size pixel buffer. *ebiten.Image and every image.Image
// satisfy it; a Surface only accepts images of its own backend.
type Image interface {
	Bounds() image.Rectangle
}

// ImageSize returns the width and height of img.
func ImageSize(img Image) (w, h int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// Surface is the drawing target for a frame. All coordinates are screen
// pixels. Widths are stroke widths in pixels.
type Surface interface {
	// Size returns the drawable area in pixels.
	Size() (w, h int)

	FillRect(r Rect, c color.Color)
	StrokeRect(r Rect, width float64, c color.Color)
	FillCircle(center Vec2, radius float64, c color.Color)
	StrokeCircle(center Vec2, radius, width float64, c color.Color)
	FillPolygon(points []Vec2, c color.Color)
	StrokePolygon(points []Vec2, width float64, c color.Color)
	Line(a, b Vec2, width float64, c color.Color)

	// ScaleImage extracts src (in img's pixel coordinates) and rescales it
	// to w x h pixels. The result can be drawn with DrawImage any number of
	// times.
	ScaleImage(img Image, src image.Rectangle, w, h int) Image
	// DrawImage draws img unscaled with its top-left corner at pos.
	DrawImage(img Image, pos Vec2)

	// PushClip restricts drawing to r intersected with the current clip.
	PushClip(r image.Rectangle)
	// PopClip restores the clip active before the matching PushClip.
	PopClip()
}

// surfaceRect returns the full pixel bounds of s as a Rect.
func surfaceRect(s Surface) Rect {
	w, h := s.Size()
	return Rect{Width: float64(w), Height: float64(h)}
}
