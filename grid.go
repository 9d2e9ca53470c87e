package canvasim

import "math"

// Grid pitch limits, in screen pixels.
const (
	gridMinPitch = 50
	gridMaxPitch = 200
)

// AxisLength is the world length of the drawn x and y axes.
const AxisLength = 100

// GridPitch returns the world spacing of grid lines for a base spacing at
// the given scale. The base is doubled or halved until one cell spans between
// 50 and 200 screen pixels.
func GridPitch(base, scale float64) float64 {
	if base <= 0 || !validScale(scale) {
		return base
	}
	pitch := base
	for pitch*scale < gridMinPitch {
		pitch *= 2
	}
	for pitch*scale > gridMaxPitch {
		pitch /= 2
	}
	return pitch
}

// DrawGrid draws world-aligned grid lines across the whole surface.
func DrawGrid(s Surface, world Transform, base float64, c Color) {
	pitch := GridPitch(base, world.Scale)
	if pitch <= 0 {
		return
	}
	w, h := s.Size()
	visible := world.UnmapRect(Rect{Width: float64(w), Height: float64(h)})
	lo, hi := visible.Min(), visible.Max()

	for _, x := range gridLines(lo.X, hi.X, pitch, w) {
		sx := (x - world.Pos.X) * world.Scale
		s.Line(Vec2{sx, 0}, Vec2{sx, float64(h)}, 1, c)
	}
	for _, y := range gridLines(lo.Y, hi.Y, pitch, h) {
		sy := (y - world.Pos.Y) * world.Scale
		s.Line(Vec2{0, sy}, Vec2{float64(w), sy}, 1, c)
	}
}

// gridLines returns the multiples of pitch in [lo, hi]. Lines are counted
// rather than stepped to, since far from the origin x+pitch can equal x. The
// count never exceeds what fits in span screen pixels at the minimum pitch.
func gridLines(lo, hi, pitch float64, span int) []float64 {
	first := math.Floor(lo / pitch)
	n := math.Floor(hi/pitch) - first + 1
	if !(n > 0) {
		return nil
	}
	n = math.Min(n, float64(span/gridMinPitch+2))
	lines := make([]float64, int(n))
	for i := range lines {
		lines[i] = (first + float64(i)) * pitch
	}
	return lines
}

// DrawAxis draws the world x axis in xc and the y axis in yc, each
// AxisLength world units long from the origin.
func DrawAxis(s Surface, world Transform, xc, yc Color) {
	o := world.MapPoint(Vec2{})
	s.Line(o.Add(Vec2{1, 0}), world.MapPoint(Vec2{AxisLength, 0}), 1, xc)
	s.Line(o.Add(Vec2{0, 1}), world.MapPoint(Vec2{0, AxisLength}), 1, yc)
}
