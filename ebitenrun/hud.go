package ebitenrun

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/canvasim"
)

// hud shows frame rate and editor state in the top-left corner. The text is
// refreshed about every half second.
type hud struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newHUD() *hud {
	// 220x64 fits four lines of debug font text.
	return &hud{img: ebiten.NewImage(220, 64), lastUpdate: 0.5}
}

func (h *hud) update(dt float64, c *canvasim.Canvas) {
	h.lastUpdate += dt
	if h.lastUpdate < 0.5 {
		return
	}
	h.lastUpdate = 0

	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})

	world := c.Viewport().ScreenToWorld(c.Cursor())
	ebitenutil.DebugPrint(h.img, fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\ntool: %s  mode: %s\nzoom: %.3f  elements: %d\ncursor: %.1f, %.1f",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		canvasim.ToolName(c.Tool()), c.Viewport().Mode,
		c.World().Scale, c.Store().Len(),
		world.X, world.Y,
	))
}

func (h *hud) draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(4, 4)
	screen.DrawImage(h.img, op)
}
