package ebitenrun

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/canvasim"
)

// keyMap translates the Ebitengine keys the editor understands.
var keyMap = map[ebiten.Key]canvasim.Key{
	ebiten.KeyA:           canvasim.KeyA,
	ebiten.KeyB:           canvasim.KeyB,
	ebiten.KeyC:           canvasim.KeyC,
	ebiten.KeyD:           canvasim.KeyD,
	ebiten.KeyE:           canvasim.KeyE,
	ebiten.KeyF:           canvasim.KeyF,
	ebiten.KeyG:           canvasim.KeyG,
	ebiten.KeyH:           canvasim.KeyH,
	ebiten.KeyI:           canvasim.KeyI,
	ebiten.KeyJ:           canvasim.KeyJ,
	ebiten.KeyK:           canvasim.KeyK,
	ebiten.KeyL:           canvasim.KeyL,
	ebiten.KeyM:           canvasim.KeyM,
	ebiten.KeyN:           canvasim.KeyN,
	ebiten.KeyO:           canvasim.KeyO,
	ebiten.KeyP:           canvasim.KeyP,
	ebiten.KeyQ:           canvasim.KeyQ,
	ebiten.KeyR:           canvasim.KeyR,
	ebiten.KeyS:           canvasim.KeyS,
	ebiten.KeyT:           canvasim.KeyT,
	ebiten.KeyU:           canvasim.KeyU,
	ebiten.KeyV:           canvasim.KeyV,
	ebiten.KeyW:           canvasim.KeyW,
	ebiten.KeyX:           canvasim.KeyX,
	ebiten.KeyY:           canvasim.KeyY,
	ebiten.KeyZ:           canvasim.KeyZ,
	ebiten.KeyDigit0:      canvasim.Key0,
	ebiten.KeyDigit1:      canvasim.Key1,
	ebiten.KeyDigit2:      canvasim.Key2,
	ebiten.KeyDigit3:      canvasim.Key3,
	ebiten.KeyDigit4:      canvasim.Key4,
	ebiten.KeyDigit5:      canvasim.Key5,
	ebiten.KeyDigit6:      canvasim.Key6,
	ebiten.KeyDigit7:      canvasim.Key7,
	ebiten.KeyDigit8:      canvasim.Key8,
	ebiten.KeyDigit9:      canvasim.Key9,
	ebiten.KeyEnter:       canvasim.KeyEnter,
	ebiten.KeyNumpadEnter: canvasim.KeyKPEnter,
	ebiten.KeyEscape:      canvasim.KeyEscape,
	ebiten.KeyBackspace:   canvasim.KeyBackspace,
	ebiten.KeyDelete:      canvasim.KeyDelete,
	ebiten.KeyTab:         canvasim.KeyTab,
	ebiten.KeySpace:       canvasim.KeySpace,
	ebiten.KeyArrowLeft:   canvasim.KeyArrowLeft,
	ebiten.KeyArrowRight:  canvasim.KeyArrowRight,
	ebiten.KeyArrowUp:     canvasim.KeyArrowUp,
	ebiten.KeyArrowDown:   canvasim.KeyArrowDown,
	ebiten.KeyHome:        canvasim.KeyHome,
	ebiten.KeyEnd:         canvasim.KeyEnd,
}

// translateKey returns the canvas key for k, or KeyUnknown.
func translateKey(k ebiten.Key) canvasim.Key {
	return keyMap[k]
}
