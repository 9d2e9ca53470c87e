package canvasim

// Rectangle is an axis-aligned filled box. Its anchor is always the top-left
// corner and Size is never negative.
type Rectangle struct {
	elementBase
	Size  Vec2
	Color Color

	handles []*Handle
}

// NewRectangle creates the rectangle spanned by two opposite corners given in
// any order.
func NewRectangle(c Color, a, b Vec2) *Rectangle {
	r := RectFromCorners(a, b)
	rect := &Rectangle{
		elementBase: newElementBase(r.Min()),
		Size:        Vec2{r.Width, r.Height},
		Color:       c,
	}
	rect.handles = []*Handle{NewHandle(&rect.anchor, DefaultHandleRadius, rect.id)}
	return rect
}

// Rect returns the rectangle in world space.
func (r *Rectangle) Rect() Rect {
	return Rect{X: r.anchor.Pos.X, Y: r.anchor.Pos.Y, Width: r.Size.X, Height: r.Size.Y}
}

// Handles returns the top-left corner handle.
func (r *Rectangle) Handles() []*Handle { return r.handles }

// HitTest reports whether world lies inside the rectangle, edges included.
func (r *Rectangle) HitTest(world Vec2) bool { return r.Rect().Contains(world) }

// Bounds returns the rectangle in world space.
func (r *Rectangle) Bounds() Rect { return r.Rect() }

// Draw fills the rectangle mapped through the world transform.
func (r *Rectangle) Draw(s Surface, world Transform) {
	s.FillRect(world.MapRect(r.Rect()), r.Color)
}
