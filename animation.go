package canvasim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 3 float64 fields simultaneously. Create one via
// TweenTransform or TweenPosition and call Update(dt) each frame. When the
// tweens finish, the fields are set to the exact target values, since the
// tweens themselves run in float32.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	fields [3]*float64
	to     [3]float64
	after  func()
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if allDone {
		for i := 0; i < g.count; i++ {
			*g.fields[i] = g.to[i]
		}
	}
	g.Done = allDone

	if g.after != nil {
		g.after()
	}
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.to[g.count] = to
	g.count++
}

// TweenTransform creates a TweenGroup that animates t's position and scale to
// those of to over duration seconds. Easing curves that overshoot never drive
// the scale to zero or below; the previous positive scale is kept instead.
func TweenTransform(t *Transform, to Transform, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&t.Pos.X, to.Pos.X, duration, fn)
	g.add(&t.Pos.Y, to.Pos.Y, duration, fn)
	last := t.Scale
	g.add(&t.Scale, to.Scale, duration, fn)
	g.after = func() {
		if !validScale(t.Scale) {
			t.Scale = last
		}
		last = t.Scale
	}
	return g
}

// TweenPosition creates a TweenGroup that moves d to the world point to.
func TweenPosition(d Draggable, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	pos := d.Position()
	g := &TweenGroup{}
	g.add(&pos.X, to.X, duration, fn)
	g.add(&pos.Y, to.Y, duration, fn)
	g.after = func() { d.SetPosition(pos) }
	return g
}
