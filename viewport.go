package canvasim

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Zoom defaults.
const (
	DefaultZoomStep = 1.1
	DefaultMinScale = 0.01
	DefaultMaxScale = 100
)

// SelectMode chooses what the select tool hovers and picks.
type SelectMode uint8

const (
	SelectHandles  SelectMode = iota // pick individual handles (default)
	SelectElements                   // pick whole elements
)

func (m SelectMode) String() string {
	if m == SelectElements {
		return "elements"
	}
	return "handles"
}

// Viewport owns the world transform and the hover and selection state over a
// [Store]. World maps world space to screen pixels: World.Pos is the world
// point shown at the top-left pixel and World.Scale is pixels per world unit.
type Viewport struct {
	World *Transform

	// ZoomStep is the scale multiplier of one wheel notch.
	ZoomStep float64
	// MinScale and MaxScale bound the scale reachable by zooming.
	MinScale, MaxScale float64
	// Mode selects between handle and element picking.
	Mode SelectMode

	store    *Store
	selected map[ElementID]struct{}

	hoveredHandle  *Handle
	hoveredElement ElementID

	anim *TweenGroup
}

// NewViewport returns a viewport over store that reads and writes world.
func NewViewport(world *Transform, store *Store) *Viewport {
	return &Viewport{
		World:    world,
		ZoomStep: DefaultZoomStep,
		MinScale: DefaultMinScale,
		MaxScale: DefaultMaxScale,
		store:    store,
		selected: make(map[ElementID]struct{}),
	}
}

// Store returns the scene the viewport looks at.
func (v *Viewport) Store() *Store { return v.store }

// ScreenToWorld converts a screen pixel position to world space.
func (v *Viewport) ScreenToWorld(p Vec2) Vec2 { return v.World.UnmapPoint(p) }

// WorldToScreen converts a world position to screen pixels.
func (v *Viewport) WorldToScreen(p Vec2) Vec2 { return v.World.MapPoint(p) }

// VisibleWorld returns the world rectangle covered by a surface of the given
// size.
func (v *Viewport) VisibleWorld(w, h int) Rect {
	return v.World.UnmapRect(Rect{Width: float64(w), Height: float64(h)})
}

// HandleAt returns the first handle under the world point, scanning the store
// from the top element down and each element's handles in declaration order.
func (v *Viewport) HandleAt(world Vec2) *Handle {
	els := v.store.Elements()
	for i := len(els) - 1; i >= 0; i-- {
		for _, h := range els[i].Handles() {
			if h.HitTest(world) {
				return h
			}
		}
	}
	return nil
}

// ElementAt returns the topmost element whose HitTest accepts the world point.
func (v *Viewport) ElementAt(world Vec2) Element {
	els := v.store.Elements()
	for i := len(els) - 1; i >= 0; i-- {
		if els[i].HitTest(world) {
			return els[i]
		}
	}
	return nil
}

// Zoom scales the view around the screen point cursor. wheelY > 0 zooms in by
// ZoomStep, wheelY < 0 zooms out, zero does nothing. The world point under
// the cursor stays under the cursor. Any running view animation is stopped.
func (v *Viewport) Zoom(cursor Vec2, wheelY float64) {
	if wheelY == 0 {
		return
	}
	before := v.World.UnmapPoint(cursor)
	s := v.World.Scale
	if wheelY > 0 {
		s *= v.ZoomStep
	} else {
		s /= v.ZoomStep
	}
	if err := v.World.SetScale(v.clampScale(s)); err != nil {
		return
	}
	v.World.Pos = before.Sub(cursor.Div(v.World.Scale))
	v.anim = nil
}

// Pan moves the view by a screen-space delta, so content follows the pointer
// at one pixel per pixel whatever the zoom. Any running view animation is
// stopped.
func (v *Viewport) Pan(rel Vec2) {
	v.World.Pos = v.World.Pos.Sub(rel.Div(v.World.Scale))
	v.anim = nil
}

func (v *Viewport) clampScale(s float64) float64 {
	return math.Min(math.Max(s, v.MinScale), v.MaxScale)
}

// Step recomputes hover state from the cursor screen position. Call it once
// per frame so hover follows camera motion as well as pointer motion.
func (v *Viewport) Step(cursor Vec2) {
	world := v.ScreenToWorld(cursor)
	v.hoveredHandle = v.HandleAt(world)
	v.hoveredElement = 0
	if e := v.ElementAt(world); e != nil {
		v.hoveredElement = e.ID()
	}
	v.pruneSelection()
}

// HoveredHandle returns the handle under the cursor as of the last Step, or
// nil if there is none or its element has since been removed.
func (v *Viewport) HoveredHandle() *Handle {
	if v.hoveredHandle == nil || !v.store.Contains(v.hoveredHandle.Owner) {
		return nil
	}
	return v.hoveredHandle
}

// HoveredElement returns the element under the cursor as of the last Step,
// or nil.
func (v *Viewport) HoveredElement() Element {
	if v.hoveredElement == 0 {
		return nil
	}
	e, ok := v.store.Get(v.hoveredElement)
	if !ok {
		return nil
	}
	return e
}

// Select marks an element selected. Unless additive, the previous selection
// is replaced. It returns ErrUnknownElement for ids not in the store.
func (v *Viewport) Select(id ElementID, additive bool) error {
	if !v.store.Contains(id) {
		return fmt.Errorf("%w: %d", ErrUnknownElement, id)
	}
	if !additive {
		clear(v.selected)
	}
	v.selected[id] = struct{}{}
	return nil
}

// Deselect removes id from the selection.
func (v *Viewport) Deselect(id ElementID) {
	delete(v.selected, id)
}

// ClearSelection empties the selection.
func (v *Viewport) ClearSelection() {
	clear(v.selected)
}

// IsSelected reports whether id is selected.
func (v *Viewport) IsSelected(id ElementID) bool {
	_, ok := v.selected[id]
	return ok
}

// Selected returns the selected elements in draw order.
func (v *Viewport) Selected() []Element {
	var out []Element
	for _, e := range v.store.Elements() {
		if v.IsSelected(e.ID()) {
			out = append(out, e)
		}
	}
	return out
}

// RemoveSelected deletes every selected element from the store and returns
// how many were removed.
func (v *Viewport) RemoveSelected() int {
	n := 0
	for _, e := range v.Selected() {
		if v.store.Remove(e.ID()) == nil {
			n++
		}
	}
	clear(v.selected)
	return n
}

// pruneSelection forgets selected ids whose elements were removed.
func (v *Viewport) pruneSelection() {
	for id := range v.selected {
		if !v.store.Contains(id) {
			delete(v.selected, id)
		}
	}
}

// AnimateTo tweens the world transform to target over duration seconds. The
// target scale is clamped to the zoom range. Pan and Zoom cancel the
// animation.
func (v *Viewport) AnimateTo(target Transform, duration float32, easeFn ease.TweenFunc) {
	target.Scale = v.clampScale(target.Scale)
	if duration <= 0 {
		*v.World = target
		v.anim = nil
		return
	}
	v.anim = TweenTransform(v.World, target, duration, easeFn)
}

// Animating reports whether a view animation is running.
func (v *Viewport) Animating() bool { return v.anim != nil }

// Update advances the view animation by dt seconds.
func (v *Viewport) Update(dt float32) {
	if v.anim == nil {
		return
	}
	v.anim.Update(dt)
	if v.anim.Done {
		v.anim = nil
	}
}

// FrameRect returns the transform that centres r on a w x h surface and fits
// it inside with margin pixels to spare on every side. A rectangle with no
// area keeps the current scale.
func (v *Viewport) FrameRect(r Rect, w, h int, margin float64) Transform {
	aw := math.Max(float64(w)-2*margin, 1)
	ah := math.Max(float64(h)-2*margin, 1)
	scale := v.World.Scale
	switch {
	case r.Width > 0 && r.Height > 0:
		scale = math.Min(aw/r.Width, ah/r.Height)
	case r.Width > 0:
		scale = aw / r.Width
	case r.Height > 0:
		scale = ah / r.Height
	}
	scale = v.clampScale(scale)
	half := Vec2{float64(w) / 2, float64(h) / 2}
	return Transform{Pos: r.Center().Sub(half.Div(scale)), Scale: scale}
}
