// Package ebitenrun runs a canvasim.Canvas in an Ebitengine window.
package ebitenrun

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/canvasim"
	"github.com/phanxgames/canvasim/raster"
)

// RunConfig configures the window and loop for Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// TPS is the update rate. Zero keeps Ebitengine's default of 60.
	TPS int
	// ShowHUD draws frame rate and editor state over the canvas.
	ShowHUD bool
	// Script, when set, replaces live input until it is done.
	Script *canvasim.ScriptRunner
	// SnapshotDir receives PNG files for script snapshot steps.
	SnapshotDir string
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Game adapts a Canvas to ebiten.Game. Run uses it; embed it to add
// behaviour around the canvas.
type Game struct {
	canvas  *canvasim.Canvas
	cfg     RunConfig
	surface *Surface
	input   poller
	hud     *hud
	log     *slog.Logger

	snapshots []string
	// OnFrame, if set, is called every tick after input and before Step.
	OnFrame func(c *canvasim.Canvas)
}

// NewGame returns a Game driving c.
func NewGame(c *canvasim.Canvas, cfg RunConfig) *Game {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	g := &Game{canvas: c, cfg: cfg, log: log}
	if cfg.ShowHUD {
		g.hud = newHUD()
	}
	if cfg.Script != nil {
		cfg.Script.OnSnapshot = func(label string) { g.snapshots = append(g.snapshots, label) }
	}
	return g
}

// Run opens a window and runs c until it quits or the window closes.
func Run(c *canvasim.Canvas, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 720
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGame(NewGame(c, cfg))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	events := g.input.poll()
	if g.cfg.Script != nil && !g.cfg.Script.Done() {
		for _, ev := range events {
			if ev.Type == canvasim.EventQuit {
				g.canvas.HandleEvent(ev)
			}
		}
		g.cfg.Script.Step(g.canvas)
	} else {
		for _, ev := range events {
			g.canvas.HandleEvent(ev)
		}
	}

	if g.OnFrame != nil {
		g.OnFrame(g.canvas)
	}
	g.canvas.Step(float32(dt))
	if g.hud != nil {
		g.hud.update(dt, g.canvas)
	}

	if g.canvas.Quit() {
		g.log.Info("quit requested")
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.surface == nil {
		g.surface = NewSurface(screen)
	} else {
		g.surface.Reset(screen)
	}
	g.canvas.Draw(g.surface)
	if g.hud != nil {
		g.hud.draw(screen)
	}
	g.flushSnapshots(screen)
}

// Layout implements ebiten.Game. The canvas always fills the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// flushSnapshots writes the rendered frame for every queued label.
func (g *Game) flushSnapshots(screen *ebiten.Image) {
	if len(g.snapshots) == 0 {
		return
	}
	defer func() { g.snapshots = g.snapshots[:0] }()

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := raster.Unpremultiply(&image.RGBA{Pix: pixels, Stride: 4 * b.Dx(), Rect: image.Rect(0, 0, b.Dx(), b.Dy())})

	stamp := time.Now().Format("20060102_150405")
	for _, label := range g.snapshots {
		path := filepath.Join(g.cfg.SnapshotDir, fmt.Sprintf("%s_%s.png", stamp, raster.SanitizeLabel(label)))
		if err := raster.WritePNG(path, img); err != nil {
			g.log.Error("snapshot failed", "label", label, "err", err)
			continue
		}
		g.log.Info("snapshot written", "path", path)
	}
}
