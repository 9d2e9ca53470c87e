package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/phanxgames/canvasim"
)

var red = canvasim.Color{R: 1, A: 1}

func rgbaAt(s *Surface, x, y int) color.RGBA {
	return s.Image().RGBAAt(x, y)
}

func TestFillRect(t *testing.T) {
	s := New(20, 20)
	s.FillRect(canvasim.Rect{X: 5, Y: 5, Width: 10, Height: 10}, red)

	if got := rgbaAt(s, 10, 10); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("inside = %v, want opaque red", got)
	}
	if got := rgbaAt(s, 1, 1); got.A != 0 {
		t.Errorf("outside = %v, want transparent", got)
	}
}

func TestPushClipRestrictsDrawing(t *testing.T) {
	s := New(20, 20)
	s.PushClip(image.Rect(0, 0, 8, 20))
	s.FillRect(canvasim.Rect{Width: 20, Height: 20}, red)

	if got := rgbaAt(s, 4, 4); got.A != 255 {
		t.Errorf("inside clip alpha = %d, want 255", got.A)
	}
	if got := rgbaAt(s, 12, 4); got.A != 0 {
		t.Errorf("outside clip alpha = %d, want 0", got.A)
	}

	s.PopClip()
	s.FillRect(canvasim.Rect{Width: 20, Height: 20}, red)
	if got := rgbaAt(s, 12, 4); got.A != 255 {
		t.Errorf("after PopClip alpha = %d, want 255", got.A)
	}
}

func TestNestedClipIntersects(t *testing.T) {
	s := New(20, 20)
	s.PushClip(image.Rect(0, 0, 10, 10))
	s.PushClip(image.Rect(5, 5, 20, 20))
	s.FillRect(canvasim.Rect{Width: 20, Height: 20}, red)
	if rgbaAt(s, 7, 7).A != 255 || rgbaAt(s, 12, 12).A != 0 || rgbaAt(s, 2, 2).A != 0 {
		t.Error("nested clips should intersect")
	}
}

func TestStrokeCircleLeavesCentreEmpty(t *testing.T) {
	s := New(40, 40)
	s.StrokeCircle(canvasim.Vec2{X: 20, Y: 20}, 10, 2, red)
	if got := rgbaAt(s, 20, 20); got.A != 0 {
		t.Errorf("centre = %v, want transparent", got)
	}
	if got := rgbaAt(s, 30, 20); got.A == 0 {
		t.Error("ring should cover the point on the circle")
	}
}

func TestFillPolygon(t *testing.T) {
	s := New(40, 40)
	s.FillPolygon([]canvasim.Vec2{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 0, Y: 40}}, red)
	if rgbaAt(s, 5, 5).A != 255 {
		t.Error("point inside the triangle should be filled")
	}
	if rgbaAt(s, 35, 35).A != 0 {
		t.Error("point outside the triangle should be empty")
	}
}

func TestLineAndStrokeRect(t *testing.T) {
	s := New(40, 40)
	s.Line(canvasim.Vec2{X: 0, Y: 10.5}, canvasim.Vec2{X: 40, Y: 10.5}, 1, red)
	if rgbaAt(s, 20, 10).A != 255 {
		t.Error("line pixel should be covered")
	}
	s.StrokeRect(canvasim.Rect{X: 20, Y: 20, Width: 10, Height: 10}, 2, red)
	if rgbaAt(s, 25, 25).A != 0 {
		t.Error("StrokeRect should not fill the interior")
	}
	if rgbaAt(s, 20, 25).A == 0 {
		t.Error("StrokeRect should cover the left edge")
	}
}

func TestScaleAndDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	s := New(20, 20)
	scaled := s.ScaleImage(src, src.Bounds(), 8, 8)
	if w, h := canvasim.ImageSize(scaled); w != 8 || h != 8 {
		t.Fatalf("scaled size = %dx%d, want 8x8", w, h)
	}
	s.DrawImage(scaled, canvasim.Vec2{X: 2, Y: 2})
	if got := rgbaAt(s, 5, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("drawn pixel = %v, want white", got)
	}
	if rgbaAt(s, 12, 12).A != 0 {
		t.Error("pixels past the image should stay empty")
	}
}

func TestRenderCanvasBackground(t *testing.T) {
	c := canvasim.NewCanvas()
	c.ShowGrid, c.ShowAxis = false, false
	img := Render(c, 64, 48)
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Fatalf("size = %v", img.Bounds())
	}
	if got := img.RGBAAt(32, 24); got != (color.RGBA{30, 30, 30, 255}) {
		t.Errorf("background = %v, want {30 30 30 255}", got)
	}
}

func TestRenderCanvasElements(t *testing.T) {
	c := canvasim.NewCanvas()
	c.ShowGrid, c.ShowAxis = false, false
	c.AddElement(canvasim.NewRectangle(red, canvasim.Vec2{X: 10, Y: 10}, canvasim.Vec2{X: 30, Y: 30}))

	tile := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for i := 0; i < len(tile.Pix); i += 4 {
		tile.Pix[i+1], tile.Pix[i+3] = 255, 255
	}
	c.AddElement(canvasim.NewToken(tile, canvasim.Vec2{X: 50, Y: 20}))

	img := Render(c, 64, 48)
	if got := img.RGBAAt(20, 20); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("rectangle pixel = %v, want red", got)
	}
	if got := img.RGBAAt(50, 20); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("token pixel = %v, want green", got)
	}
}
