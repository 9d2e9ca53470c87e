package canvasim

import "math"

// DefaultHandleRadius is the world-space radius of point handles.
const DefaultHandleRadius = 10

// Polygon is an ordered list of world-space points, each draggable through
// its own handle. It is invisible until it has at least three points.
type Polygon struct {
	elementBase
	Color        Color
	HandleRadius float64

	points  []*Transform
	handles []*Handle
}

// NewPolygon creates a polygon from the given world points.
func NewPolygon(c Color, points ...Vec2) *Polygon {
	p := &Polygon{elementBase: newElementBase(Vec2{}), Color: c, HandleRadius: DefaultHandleRadius}
	for _, pt := range points {
		p.AddPoint(pt)
	}
	return p
}

// AddPoint appends a world point with its own handle.
func (p *Polygon) AddPoint(pt Vec2) {
	t := At(pt)
	tp := &t
	p.points = append(p.points, tp)
	p.handles = append(p.handles, NewHandle(tp, p.HandleRadius, p.id))
}

// Len returns the number of points.
func (p *Polygon) Len() int { return len(p.points) }

// Points returns a copy of the point positions.
func (p *Polygon) Points() []Vec2 {
	out := make([]Vec2, len(p.points))
	for i, t := range p.points {
		out[i] = t.Pos
	}
	return out
}

// Handles returns one handle per point, in point order.
func (p *Polygon) Handles() []*Handle { return p.handles }

// Anchor returns the first point's transform, or the polygon's own anchor
// while it has no points.
func (p *Polygon) Anchor() *Transform {
	if len(p.points) > 0 {
		return p.points[0]
	}
	return &p.anchor
}

// Position returns the first point.
func (p *Polygon) Position() Vec2 { return p.Anchor().Pos }

// SetPosition moves the first point to pos and every other point with it.
func (p *Polygon) SetPosition(pos Vec2) {
	d := pos.Sub(p.Position())
	p.anchor.Pos = p.anchor.Pos.Add(d)
	for _, t := range p.points {
		t.Pos = t.Pos.Add(d)
	}
}

// HitTest uses the even-odd rule, so concave outlines pick correctly.
func (p *Polygon) HitTest(world Vec2) bool {
	n := len(p.points)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.points[i].Pos, p.points[j].Pos
		if (a.Y > world.Y) != (b.Y > world.Y) &&
			world.X < (b.X-a.X)*(world.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// Bounds returns the bounding box of the points.
func (p *Polygon) Bounds() Rect {
	if len(p.points) == 0 {
		return Rect{X: p.anchor.Pos.X, Y: p.anchor.Pos.Y}
	}
	lo, hi := p.points[0].Pos, p.points[0].Pos
	for _, t := range p.points[1:] {
		lo = Vec2{math.Min(lo.X, t.Pos.X), math.Min(lo.Y, t.Pos.Y)}
		hi = Vec2{math.Max(hi.X, t.Pos.X), math.Max(hi.Y, t.Pos.Y)}
	}
	return RectFromCorners(lo, hi)
}

// Draw fills the polygon once it has three or more points.
func (p *Polygon) Draw(s Surface, world Transform) {
	if len(p.points) < 3 {
		return
	}
	s.FillPolygon(p.screenPoints(world), p.Color)
}

func (p *Polygon) screenPoints(world Transform) []Vec2 {
	pts := make([]Vec2, len(p.points))
	for i, t := range p.points {
		pts[i] = world.MapPoint(t.Pos)
	}
	return pts
}
