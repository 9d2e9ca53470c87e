package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoaderDecodesAndCaches(t *testing.T) {
	fsys := fstest.MapFS{
		"tokens/orc.png": {Data: encodePNG(t, 12, 7)},
	}
	l := NewLoader(fsys)

	a, err := l.Load("tokens/orc.png")
	if err != nil {
		t.Fatal(err)
	}
	if b := a.Bounds(); b.Dx() != 12 || b.Dy() != 7 {
		t.Errorf("size = %v, want 12x7", b)
	}
	b, err := l.Load("tokens/orc.png")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("second load should return the cached image")
	}
	if l.Len() != 1 {
		t.Errorf("Len = %d, want 1", l.Len())
	}
}

func TestLoaderErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.png": {Data: []byte("definitely not a png")},
	}
	l := NewLoader(fsys)
	if _, err := l.Load("missing.png"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := l.Load("broken.png"); err == nil {
		t.Error("expected error for undecodable file")
	}
	if l.Len() != 0 {
		t.Errorf("failed loads should not be cached, Len = %d", l.Len())
	}

	if _, err := NewLoader(nil).Load("x.png"); err == nil {
		t.Error("expected error without a file system")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.png")
	if err := os.WriteFile(path, encodePNG(t, 3, 5), 0o644); err != nil {
		t.Fatal(err)
	}
	img, err := NewLoader(nil).LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 5 {
		t.Errorf("size = %v, want 3x5", b)
	}
}

func TestPlaceholder(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	img := Placeholder(16, 16, c)
	if got := img.RGBAAt(0, 0); got != c {
		t.Errorf("(0,0) = %v, want %v", got, c)
	}
	want := color.RGBA{R: 100, G: 50, B: 25, A: 255}
	if got := img.RGBAAt(8, 0); got != want {
		t.Errorf("(8,0) = %v, want %v", got, want)
	}
	if got := img.RGBAAt(8, 8); got != c {
		t.Errorf("(8,8) = %v, want %v", got, c)
	}
}
