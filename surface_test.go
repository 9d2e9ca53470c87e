package canvasim

import (
	"image"
	"image/color"
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// fakeImage is a bare Image of a given size.
type fakeImage struct{ w, h int }

func (f fakeImage) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, f.h) }

// drawCall is one recorded Surface call. Only the fields relevant to Op are
// set.
type drawCall struct {
	Op     string
	Rect   Rect
	Points []Vec2
	Center Vec2
	Radius float64
	Src    image.Rectangle
	W, H   int
	Pos    Vec2
}

// recordingSurface records every drawing call instead of drawing.
type recordingSurface struct {
	w, h  int
	calls []drawCall
	clips int
}

func newRecorder(w, h int) *recordingSurface { return &recordingSurface{w: w, h: h} }

func (r *recordingSurface) Size() (int, int) { return r.w, r.h }

func (r *recordingSurface) FillRect(rect Rect, _ color.Color) {
	r.calls = append(r.calls, drawCall{Op: "FillRect", Rect: rect})
}

func (r *recordingSurface) StrokeRect(rect Rect, _ float64, _ color.Color) {
	r.calls = append(r.calls, drawCall{Op: "StrokeRect", Rect: rect})
}

func (r *recordingSurface) FillCircle(c Vec2, radius float64, _ color.Color) {
	r.calls = append(r.calls, drawCall{Op: "FillCircle", Center: c, Radius: radius})
}

func (r *recordingSurface) StrokeCircle(c Vec2, radius, _ float64, _ color.Color) {
	r.calls = append(r.calls, drawCall{Op: "StrokeCircle", Center: c, Radius: radius})
}

func (r *recordingSurface) FillPolygon(pts []Vec2, _ color.Color) {
	r.calls = append(r.calls, drawCall{Op: "FillPolygon", Points: append([]Vec2(nil), pts...)})
}

func (r *recordingSurface) StrokePolygon(pts []Vec2, _ float64, _ color.Color) {
	r.calls = append(r.calls, drawCall{Op: "StrokePolygon", Points: append([]Vec2(nil), pts...)})
}

func (r *recordingSurface) Line(a, b Vec2, _ float64, _ color.Color) {
	r.calls = append(r.calls, drawCall{Op: "Line", Points: []Vec2{a, b}})
}

func (r *recordingSurface) ScaleImage(_ Image, src image.Rectangle, w, h int) Image {
	r.calls = append(r.calls, drawCall{Op: "ScaleImage", Src: src, W: w, H: h})
	return fakeImage{w, h}
}

func (r *recordingSurface) DrawImage(img Image, pos Vec2) {
	w, h := ImageSize(img)
	r.calls = append(r.calls, drawCall{Op: "DrawImage", W: w, H: h, Pos: pos})
}

func (r *recordingSurface) PushClip(image.Rectangle) { r.clips++ }
func (r *recordingSurface) PopClip()                 { r.clips-- }

func (r *recordingSurface) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (r *recordingSurface) ops(op string) []drawCall {
	var out []drawCall
	for _, c := range r.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (r *recordingSurface) reset() { r.calls = r.calls[:0] }
