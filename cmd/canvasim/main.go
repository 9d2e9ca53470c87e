// Command canvasim is a pan/zoom canvas editor for image tokens, background
// tiles, polygons and rectangles.
//
// Usage:
//
//	canvasim [-config file] [-background img] [-token img]... [-tokens N]
//	         [-script steps.json] [-snapshot out.png]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"

	"github.com/phanxgames/canvasim"
	"github.com/phanxgames/canvasim/assets"
	"github.com/phanxgames/canvasim/ebitenrun"
	"github.com/phanxgames/canvasim/internal/config"
	applog "github.com/phanxgames/canvasim/internal/log"
	"github.com/phanxgames/canvasim/raster"
)

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string     { return strings.Join(*l, ",") }
func (l *stringList) Set(s string) error { *l = append(*l, s); return nil }

type options struct {
	configPath string
	initConfig bool
	background string
	tokens     stringList
	scatter    int
	seed       uint64
	script     string
	snapshot   string
	shotDir    string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("canvasim", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", defaultConfigPath(), "path to the YAML config file")
	fs.BoolVar(&o.initConfig, "init-config", false, "write the default config to -config and exit")
	fs.StringVar(&o.background, "background", "", "image placed as a background tile at the origin")
	fs.Var(&o.tokens, "token", "image added as a token (repeatable)")
	fs.IntVar(&o.scatter, "tokens", 0, "scatter N placeholder tokens at random positions")
	fs.Uint64Var(&o.seed, "seed", 1, "random seed for -tokens")
	fs.StringVar(&o.script, "script", "", "JSON input script to replay")
	fs.StringVar(&o.snapshot, "snapshot", "", "render one frame to this PNG without opening a window")
	fs.StringVar(&o.shotDir, "snapshot-dir", "snapshots", "directory for script snapshots")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.scatter < 0 {
		return o, fmt.Errorf("-tokens must not be negative, got %d", o.scatter)
	}
	return o, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "canvasim.yaml"
	}
	return filepath.Join(dir, "canvasim", "config.yaml")
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "canvasim:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	if o.initConfig {
		return config.Save(o.configPath, config.Defaults())
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	closer := applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	defer closer.Close()
	log := applog.WithComponent("main")

	c := canvasim.NewCanvas()
	c.SetLogger(applog.WithComponent("canvas"))
	if err := cfg.Apply(c); err != nil {
		return err
	}

	loader := assets.NewLoader(nil)
	loader.SetLogger(applog.WithComponent("assets"))
	if err := populate(c, loader, o); err != nil {
		return err
	}
	c.Bind(canvasim.KeyO, func(c *canvasim.Canvas) { openToken(c, loader) })
	log.Info("scene ready", "elements", c.Store().Len(), "config", o.configPath)

	if o.snapshot != "" {
		if err := raster.Snapshot(c, cfg.Window.Width, cfg.Window.Height, o.snapshot); err != nil {
			return err
		}
		log.Info("snapshot written", "path", o.snapshot)
		return nil
	}

	rc := ebitenrun.RunConfig{
		Title:       cfg.Window.Title,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		Resizable:   cfg.Window.Resizable,
		TPS:         cfg.Window.TPS,
		ShowHUD:     cfg.Window.HUD,
		SnapshotDir: o.shotDir,
		Logger:      applog.WithComponent("ebiten"),
	}
	if o.script != "" {
		data, err := os.ReadFile(o.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		rc.Script, err = canvasim.LoadScript(data)
		if err != nil {
			return fmt.Errorf("script %s: %w", o.script, err)
		}
	}
	return ebitenrun.Run(c, rc)
}

// populate adds the command-line elements: the background tile first so it
// draws underneath, then tokens in a row along the x axis, then the scatter.
func populate(c *canvasim.Canvas, loader *assets.Loader, o options) error {
	if o.background != "" {
		img, err := loader.LoadFile(o.background)
		if err != nil {
			return err
		}
		c.AddElement(canvasim.NewSurfaceTile(img, canvasim.Vec2{}))
	}

	x := 0.0
	for _, path := range o.tokens {
		img, err := loader.LoadFile(path)
		if err != nil {
			return err
		}
		w := float64(img.Bounds().Dx())
		c.AddElement(canvasim.NewToken(img, canvasim.Vec2{X: x + w/2, Y: 0}))
		x += w + 16
	}

	if o.scatter > 0 {
		rng := rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15))
		imgs := []image.Image{
			assets.Placeholder(48, 48, color.RGBA{R: 200, G: 80, B: 80, A: 255}),
			assets.Placeholder(64, 64, color.RGBA{R: 80, G: 160, B: 220, A: 255}),
			assets.Placeholder(32, 56, color.RGBA{R: 90, G: 200, B: 120, A: 255}),
		}
		for i := 0; i < o.scatter; i++ {
			pos := canvasim.Vec2{X: rng.Float64()*2000 - 1000, Y: rng.Float64()*2000 - 1000}
			c.AddElement(canvasim.NewToken(imgs[rng.IntN(len(imgs))], pos))
		}
	}
	return nil
}

// openToken asks for an image file and adds it as a token under the cursor.
// The dialog blocks the frame loop until it closes.
func openToken(c *canvasim.Canvas, loader *assets.Loader) {
	log := applog.WithComponent("open")
	path, err := dialog.File().
		Filter("Images", "png", "jpg", "jpeg", "gif", "bmp", "tiff", "webp").
		Title("Add token").
		Load()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			log.Debug("open cancelled")
			return
		}
		log.Error("open dialog", "err", err)
		return
	}
	img, err := loader.LoadFile(path)
	if err != nil {
		log.Error("load token", "err", err)
		return
	}
	pos := c.Viewport().ScreenToWorld(c.Cursor())
	c.AddElement(canvasim.NewToken(img, pos))
	log.Info("token added", "path", path, "x", pos.X, "y", pos.Y)
}
