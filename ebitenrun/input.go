package ebitenrun

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/canvasim"
)

var mouseButtons = [...]struct {
	eb ebiten.MouseButton
	cv canvasim.MouseButton
}{
	{ebiten.MouseButtonLeft, canvasim.MouseButtonLeft},
	{ebiten.MouseButtonRight, canvasim.MouseButtonRight},
	{ebiten.MouseButtonMiddle, canvasim.MouseButtonMiddle},
}

// poller turns Ebitengine's polled input state into the canvas event stream.
type poller struct {
	prevCursor canvasim.Vec2
	started    bool

	keys  []ebiten.Key
	chars []rune
	out   []canvasim.Event
}

// modifiers reads the current modifier state.
func modifiers() canvasim.KeyModifiers {
	var mods canvasim.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= canvasim.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= canvasim.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= canvasim.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= canvasim.ModMeta
	}
	return mods
}

// poll returns this tick's events. Motion comes first so presses and wheel
// events see the current cursor.
func (p *poller) poll() []canvasim.Event {
	p.out = p.out[:0]
	mods := modifiers()

	mx, my := ebiten.CursorPosition()
	cur := canvasim.Vec2{X: float64(mx), Y: float64(my)}
	if !p.started {
		p.prevCursor = cur
		p.started = true
	}
	if cur != p.prevCursor {
		p.out = append(p.out, canvasim.MouseMotion(cur, cur.Sub(p.prevCursor)))
		p.prevCursor = cur
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			ev := canvasim.MouseDown(b.cv, cur)
			ev.Mods = mods
			p.out = append(p.out, ev)
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			ev := canvasim.MouseUp(b.cv, cur)
			ev.Mods = mods
			p.out = append(p.out, ev)
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		p.out = append(p.out, canvasim.MouseWheel(cur, wy))
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if ck := translateKey(k); ck != canvasim.KeyUnknown {
			p.out = append(p.out, canvasim.KeyDown(ck, mods))
		}
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if ck := translateKey(k); ck != canvasim.KeyUnknown {
			p.out = append(p.out, canvasim.KeyUp(ck, mods))
		}
	}

	p.chars = ebiten.AppendInputChars(p.chars[:0])
	if len(p.chars) > 0 {
		p.out = append(p.out, canvasim.TextInput(string(p.chars)))
	}

	if ebiten.IsWindowBeingClosed() {
		p.out = append(p.out, canvasim.Event{Type: canvasim.EventQuit})
	}
	return p.out
}
