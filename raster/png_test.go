package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/canvasim"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := SanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("SanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{64, 0, 32, 128})
	src.SetRGBA(1, 0, color.RGBA{10, 20, 30, 255})

	got := Unpremultiply(src)
	if c := got.NRGBAAt(0, 0); c != (color.NRGBA{127, 0, 63, 128}) {
		t.Errorf("half alpha = %v, want {127 0 63 128}", c)
	}
	if c := got.NRGBAAt(1, 0); c != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("opaque = %v, want unchanged", c)
	}
}

func TestSnapshotWritesPNG(t *testing.T) {
	c := canvasim.NewCanvas()
	c.ShowGrid, c.ShowAxis = false, false
	path := filepath.Join(t.TempDir(), "shots", "frame.png")

	if err := Snapshot(c, 32, 16, path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("size = %v, want 32x16", b)
	}
}
