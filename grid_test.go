package canvasim

import "testing"

func TestGridPitch(t *testing.T) {
	tests := []struct {
		base, scale, want float64
	}{
		{100, 1, 100},
		{100, 0.5, 100},
		{100, 0.1, 800},
		{100, 5, 25},
		{100, 2, 100},
		{100, 2.5, 50},
		{0, 1, 0},
	}
	for _, tt := range tests {
		got := GridPitch(tt.base, tt.scale)
		if got != tt.want {
			t.Errorf("GridPitch(%v, %v) = %v, want %v", tt.base, tt.scale, got, tt.want)
		}
		if tt.base > 0 {
			px := got * tt.scale
			if px < gridMinPitch || px > gridMaxPitch {
				t.Errorf("GridPitch(%v, %v): %v px out of range", tt.base, tt.scale, px)
			}
		}
	}
}

func TestDrawGridLinesAreAligned(t *testing.T) {
	s := newRecorder(300, 200)
	world := At(Vec2{-50, -50})
	DrawGrid(s, world, 100, ColorWhite)

	var xs, ys []float64
	for _, c := range s.ops("Line") {
		if c.Points[0].X == c.Points[1].X {
			xs = append(xs, c.Points[0].X)
		} else {
			ys = append(ys, c.Points[0].Y)
		}
	}
	// World x = -100, 0, 100, 200 land on screen x = -50, 50, 150, 250.
	wantX := []float64{-50, 50, 150, 250}
	if len(xs) != len(wantX) {
		t.Fatalf("vertical lines at %v, want %v", xs, wantX)
	}
	for i := range xs {
		assertNear(t, "x", xs[i], wantX[i])
	}
	wantY := []float64{-50, 50, 150}
	if len(ys) != len(wantY) {
		t.Fatalf("horizontal lines at %v, want %v", ys, wantY)
	}
}

func TestDrawGridFarFromOrigin(t *testing.T) {
	tests := []struct {
		name  string
		world Transform
	}{
		{"beyond float step", At(Vec2{1e22, -1e22})},
		{"large and zoomed out", MustTransform(Vec2{-3e18, 5e17}, 0.01)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRecorder(300, 200)
			DrawGrid(s, tt.world, 100, ColorWhite)
			// At least 50 px per cell: at most 300/50+2 plus 200/50+2 lines.
			if got := s.count("Line"); got > 14 {
				t.Errorf("Line calls = %d, want at most 14", got)
			}
		})
	}
}

func TestDrawAxis(t *testing.T) {
	s := newRecorder(300, 200)
	DrawAxis(s, MustTransform(Vec2{-10, -10}, 2), ColorWhite, ColorBlack)
	lines := s.ops("Line")
	if len(lines) != 2 {
		t.Fatalf("axis lines = %d, want 2", len(lines))
	}
	assertVec(t, "x end", lines[0].Points[1], Vec2{220, 20})
	assertVec(t, "y end", lines[1].Points[1], Vec2{20, 220})
}
