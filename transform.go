package canvasim

import (
	"fmt"
	"math"
)

// Transform is a position + uniform scale mapping between two coordinate
// spaces. Scale must be positive and finite; construct with NewTransform,
// Identity or At rather than the zero value.
//
// Pos is the origin of the child space expressed in the parent space, and
// Scale is the number of child units per parent unit in the forward
// direction. For the world transform of a [Viewport], Pos is the world point
// shown at the top-left pixel and Scale is pixels per world unit.
type Transform struct {
	Pos   Vec2
	Scale float64
}

// Identity returns the transform that maps every point to itself.
func Identity() Transform {
	return Transform{Scale: 1}
}

// At returns a unit-scale transform positioned at p.
func At(p Vec2) Transform {
	return Transform{Pos: p, Scale: 1}
}

// NewTransform returns a transform at pos with the given scale. It returns
// ErrInvalidScale if scale is not a positive finite number.
func NewTransform(pos Vec2, scale float64) (Transform, error) {
	if !validScale(scale) {
		return Transform{}, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	return Transform{Pos: pos, Scale: scale}, nil
}

// MustTransform is like NewTransform but panics on an invalid scale.
func MustTransform(pos Vec2, scale float64) Transform {
	t, err := NewTransform(pos, scale)
	if err != nil {
		panic(err)
	}
	return t
}

func validScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}

// SetScale replaces the scale, rejecting non-positive or non-finite values
// with ErrInvalidScale and leaving t unchanged.
func (t *Transform) SetScale(s float64) error {
	if !validScale(s) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, s)
	}
	t.Scale = s
	return nil
}

// Map carries o, expressed in t's child space, into t's parent space:
//
//	Pos   = (o.Pos - t.Pos) * t.Scale
//	Scale = t.Scale * o.Scale
func (t Transform) Map(o Transform) Transform {
	return Transform{
		Pos:   o.Pos.Sub(t.Pos).Mul(t.Scale),
		Scale: t.Scale * o.Scale,
	}
}

// Unmap is the inverse of Map: t.Unmap(t.Map(o)) == o.
//
//	Pos   = o.Pos / t.Scale + t.Pos
//	Scale = o.Scale / t.Scale
func (t Transform) Unmap(o Transform) Transform {
	return Transform{
		Pos:   o.Pos.Div(t.Scale).Add(t.Pos),
		Scale: o.Scale / t.Scale,
	}
}

// MapPoint maps a single point forward (world to screen for a viewport).
func (t Transform) MapPoint(p Vec2) Vec2 {
	return p.Sub(t.Pos).Mul(t.Scale)
}

// UnmapPoint maps a single point back (screen to world for a viewport).
func (t Transform) UnmapPoint(p Vec2) Vec2 {
	return p.Div(t.Scale).Add(t.Pos)
}

// MapRect maps an axis-aligned rectangle forward.
func (t Transform) MapRect(r Rect) Rect {
	p := t.MapPoint(r.Min())
	return Rect{X: p.X, Y: p.Y, Width: r.Width * t.Scale, Height: r.Height * t.Scale}
}

// UnmapRect maps an axis-aligned rectangle back.
func (t Transform) UnmapRect(r Rect) Rect {
	p := t.UnmapPoint(r.Min())
	return Rect{X: p.X, Y: p.Y, Width: r.Width / t.Scale, Height: r.Height / t.Scale}
}

// Equal reports value equality of position and scale.
func (t Transform) Equal(o Transform) bool {
	return t.Pos == o.Pos && t.Scale == o.Scale
}
