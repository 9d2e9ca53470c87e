package canvasim

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenTransformReachesTarget(t *testing.T) {
	tr := Identity()
	to := MustTransform(Vec2{100, 200}, 3)

	g := TweenTransform(&tr, to, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	if g.Done {
		t.Fatal("Done after half the duration")
	}
	if math.Abs(tr.Pos.X-50) > 0.5 || math.Abs(tr.Scale-2) > 0.01 {
		t.Errorf("halfway = %v, want ~{50 100} scale ~2", tr)
	}
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if tr != to {
		t.Errorf("final = %v, want exactly %v", tr, to)
	}
}

func TestTweenTransformNeverInvalidatesScale(t *testing.T) {
	tr := MustTransform(Vec2{}, 1)
	// OutBack overshoots the target, which would drive the scale negative
	// on the way to a small value.
	g := TweenTransform(&tr, MustTransform(Vec2{}, 0.01), 1.0, ease.OutBack)
	for range 19 {
		g.Update(0.05)
		if !validScale(tr.Scale) {
			t.Fatalf("scale became %v mid-tween", tr.Scale)
		}
	}
	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done")
	}
	assertNear(t, "final scale", tr.Scale, 0.01)
}

func TestTweenPositionMovesDraggable(t *testing.T) {
	p := NewPolygon(ColorWhite, Vec2{0, 0}, Vec2{10, 0}, Vec2{10, 10})

	g := TweenPosition(p, Vec2{100, 50}, 0.5, ease.OutCubic)
	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	want := []Vec2{{100, 50}, {110, 50}, {110, 60}}
	for i, got := range p.Points() {
		assertVec(t, "point", got, want[i])
	}
}

func TestTweenGroupDoneIsSticky(t *testing.T) {
	tr := Identity()
	g := TweenTransform(&tr, At(Vec2{10, 0}), 0.1, ease.Linear)
	g.Update(1)
	if !g.Done {
		t.Fatal("expected Done")
	}
	tr.Pos.X = 99
	g.Update(1)
	assertNear(t, "x", tr.Pos.X, 99)
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	a, b := Identity(), Identity()
	ga := TweenTransform(&a, At(Vec2{100, 0}), 1, ease.Linear)
	gb := TweenTransform(&b, At(Vec2{100, 0}), 1, ease.InQuad)
	ga.Update(0.5)
	gb.Update(0.5)
	if math.Abs(a.Pos.X-b.Pos.X) < 1 {
		t.Errorf("linear %v and in-quad %v should differ at the midpoint", a.Pos.X, b.Pos.X)
	}
}
