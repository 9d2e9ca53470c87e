package canvasim

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestTransformMap(t *testing.T) {
	world := MustTransform(Vec2{10, 20}, 2)
	got := world.Map(MustTransform(Vec2{15, 30}, 3))
	want := Transform{Pos: Vec2{10, 20}, Scale: 6}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformUnmap(t *testing.T) {
	world := MustTransform(Vec2{10, 20}, 2)
	got := world.Unmap(Transform{Pos: Vec2{10, 20}, Scale: 6})
	want := Transform{Pos: Vec2{15, 30}, Scale: 3}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Unmap mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformInverseLaw(t *testing.T) {
	as := []Transform{
		Identity(),
		MustTransform(Vec2{-3.5, 7}, 0.25),
		MustTransform(Vec2{1e4, -2e4}, 37),
		MustTransform(Vec2{0.1, 0.2}, 1e-3),
	}
	bs := []Transform{
		Identity(),
		{Pos: Vec2{5, -5}, Scale: 2},
		{Pos: Vec2{-123.456, 789.01}, Scale: 0.5},
		{Pos: Vec2{1e6, 1e-6}, Scale: 10},
	}
	for _, a := range as {
		for _, b := range bs {
			got := a.Unmap(a.Map(b))
			// Cancellation in (B.Pos-A.Pos)*s/s + A.Pos loses absolute
			// precision in proportion to the coordinates involved.
			margin := math.Max(1e-9, 1e-12*math.Max(a.Pos.Len(), b.Pos.Len()))
			opt := cmpopts.EquateApprox(1e-9, margin)
			if diff := cmp.Diff(b, got, opt); diff != "" {
				t.Errorf("A=%v B=%v: Unmap(Map(B)) mismatch (-want +got):\n%s", a, b, diff)
			}
		}
	}
}

func TestTransformPointRoundtrip(t *testing.T) {
	tr := MustTransform(Vec2{-40, 12}, 1.75)
	p := Vec2{3, 99}
	assertVec(t, "roundtrip", tr.UnmapPoint(tr.MapPoint(p)), p)
	assertVec(t, "map", tr.MapPoint(p), Vec2{(3 + 40) * 1.75, (99 - 12) * 1.75})
}

func TestTransformMapRect(t *testing.T) {
	tr := MustTransform(Vec2{10, 10}, 2)
	r := Rect{X: 20, Y: 30, Width: 5, Height: 6}
	got := tr.MapRect(r)
	if diff := cmp.Diff(Rect{X: 20, Y: 40, Width: 10, Height: 12}, got, approx); diff != "" {
		t.Errorf("MapRect mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(r, tr.UnmapRect(got), approx); diff != "" {
		t.Errorf("UnmapRect mismatch (-want +got):\n%s", diff)
	}
}

func TestNewTransformRejectsInvalidScale(t *testing.T) {
	for _, s := range []float64{0, -1, math.Inf(1), math.NaN()} {
		if _, err := NewTransform(Vec2{}, s); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("NewTransform(scale=%v) err = %v, want ErrInvalidScale", s, err)
		}
	}
	if _, err := NewTransform(Vec2{1, 2}, 0.5); err != nil {
		t.Errorf("NewTransform(0.5) err = %v", err)
	}
}

func TestSetScaleKeepsOldValueOnError(t *testing.T) {
	tr := At(Vec2{1, 1})
	if err := tr.SetScale(-2); !errors.Is(err, ErrInvalidScale) {
		t.Fatalf("SetScale(-2) err = %v, want ErrInvalidScale", err)
	}
	assertNear(t, "scale", tr.Scale, 1)
	if err := tr.SetScale(4); err != nil {
		t.Fatal(err)
	}
	assertNear(t, "scale", tr.Scale, 4)
}

func TestMustTransformPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero scale")
		}
	}()
	MustTransform(Vec2{}, 0)
}

func TestRectFromCornersNormalizes(t *testing.T) {
	got := RectFromCorners(Vec2{200, 400}, Vec2{100, 100})
	want := Rect{X: 100, Y: 100, Width: 100, Height: 300}
	if got != want {
		t.Errorf("RectFromCorners = %v, want %v", got, want)
	}
}
