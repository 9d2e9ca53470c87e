// Package assets loads images for canvas elements. PNG, JPEG, GIF, BMP, TIFF
// and WebP are recognised.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Loader decodes images and caches them by path, so a picture used by many
// tokens is decoded once.
type Loader struct {
	fsys fs.FS
	log  *slog.Logger

	mu    sync.Mutex
	cache map[string]image.Image
}

// NewLoader returns a loader reading names relative to fsys. fsys may be nil
// when only LoadFile is used.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, log: slog.Default(), cache: make(map[string]image.Image)}
}

// SetLogger replaces the logger used for load reports.
func (l *Loader) SetLogger(log *slog.Logger) {
	if log != nil {
		l.log = log
	}
}

// Load decodes the named image from the loader's file system.
func (l *Loader) Load(name string) (image.Image, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("load %s: no file system", name)
	}
	return l.load("fs:"+name, func() ([]byte, error) { return fs.ReadFile(l.fsys, name) })
}

// LoadFile decodes an image from a path on the host file system.
func (l *Loader) LoadFile(path string) (image.Image, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return l.load("os:"+abs, func() ([]byte, error) { return os.ReadFile(abs) })
}

func (l *Loader) load(key string, read func() ([]byte, error)) (image.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.cache[key]; ok {
		return img, nil
	}
	data, err := read()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key[3:], err)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", key[3:], err)
	}
	l.cache[key] = img
	b := img.Bounds()
	l.log.Debug("image loaded", "path", key[3:], "format", format, "width", b.Dx(), "height", b.Dy())
	return img, nil
}

// Len returns the number of cached images.
func (l *Loader) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.cache)
}

// Placeholder returns a w x h checkerboard of c and a darker shade, used when
// no picture is supplied.
func Placeholder(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	dark := color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
	const cell = 8
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, c)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}
	return img
}
