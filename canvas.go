package canvasim

import (
	"log/slog"
	"time"

	"github.com/tanema/gween/ease"
)

// ToolFactory builds a tool for a hot key.
type ToolFactory func(v *Viewport) Tool

// Style holds the colors a canvas draws with.
type Style struct {
	Background Color
	Grid       Color
	AxisX      Color
	AxisY      Color
	Selection  Color
	Hover      Color
	Preview    Color
}

// DefaultStyle returns the dark editor palette.
func DefaultStyle() Style {
	return Style{
		Background: RGB8(30, 30, 30),
		Grid:       RGB8(60, 60, 60),
		AxisX:      RGB8(255, 0, 0),
		AxisY:      RGB8(0, 255, 0),
		Selection:  RGB8(255, 200, 0),
		Hover:      ColorWhite,
		Preview:    ColorWhite,
	}
}

// Canvas is an editing session: the scene, the view onto it and the active
// tool. Feed it events with HandleEvent, then call Step and Draw once per
// frame.
type Canvas struct {
	Style Style
	// ShowGrid and ShowAxis toggle the background grid and the world axes.
	ShowGrid bool
	ShowAxis bool
	// GridBase is the world spacing the adaptive grid starts from.
	GridBase float64
	// QuitKey ends the session when pressed. KeyUnknown disables it.
	QuitKey Key

	world    Transform
	store    *Store
	view     *Viewport
	tool     Tool
	bindings map[Key]func(*Canvas)

	cursor  Vec2
	screenW int
	screenH int
	quit    bool

	log   *slog.Logger
	debug bool
	stats FrameStats
}

// NewCanvas returns an empty canvas at identity view with the select tool
// active.
func NewCanvas() *Canvas {
	c := &Canvas{
		Style:    DefaultStyle(),
		ShowGrid: true,
		ShowAxis: true,
		GridBase: 100,
		QuitKey:  KeyEscape,
		world:    Identity(),
		store:    NewStore(),
		bindings: make(map[Key]func(*Canvas)),
		log:      slog.Default(),
	}
	c.view = NewViewport(&c.world, c.store)
	c.tool = &SelectTool{}
	return c
}

// SetLogger replaces the logger used for debug output. nil restores
// slog.Default.
func (c *Canvas) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	c.log = l
}

// SetDebug enables per-frame stats logging at debug level.
func (c *Canvas) SetDebug(enabled bool) { c.debug = enabled }

// Stats returns the counters of the last Draw.
func (c *Canvas) Stats() FrameStats { return c.stats }

// Viewport returns the canvas viewport.
func (c *Canvas) Viewport() *Viewport { return c.view }

// Store returns the scene.
func (c *Canvas) Store() *Store { return c.store }

// World returns the current world transform.
func (c *Canvas) World() Transform { return c.world }

// Cursor returns the last known pointer position in screen pixels.
func (c *Canvas) Cursor() Vec2 { return c.cursor }

// ScreenSize returns the size of the surface last drawn to.
func (c *Canvas) ScreenSize() (w, h int) { return c.screenW, c.screenH }

// Tool returns the active tool.
func (c *Canvas) Tool() Tool { return c.tool }

// SetTool replaces the active tool without running any completion logic of
// the current one. nil selects the select tool.
func (c *Canvas) SetTool(t Tool) {
	if t == nil {
		t = &SelectTool{}
	}
	c.logTransition(c.tool, t)
	c.tool = t
}

// Quit reports whether the session was asked to end.
func (c *Canvas) Quit() bool { return c.quit }

// RequestQuit ends the session at the next frame.
func (c *Canvas) RequestQuit() { c.quit = true }

// AddElement appends e on top of the scene.
func (c *Canvas) AddElement(e Element) {
	c.store.Add(e)
	c.log.Debug("element added", "id", e.ID(), "count", c.store.Len())
	c.debugCheckElementCount()
}

// RemoveElement deletes an element from the scene.
func (c *Canvas) RemoveElement(id ElementID) error {
	if err := c.store.Remove(id); err != nil {
		return err
	}
	c.view.Deselect(id)
	c.log.Debug("element removed", "id", id, "count", c.store.Len())
	return nil
}

// AssignTool binds key to a tool factory. Pressing the key replaces the
// active tool outright; the key never reaches the tool.
func (c *Canvas) AssignTool(key Key, factory ToolFactory) {
	c.Bind(key, func(c *Canvas) { c.SetTool(factory(c.view)) })
}

// Bind runs fn when key is pressed, ahead of the active tool.
func (c *Canvas) Bind(key Key, fn func(*Canvas)) {
	c.bindings[key] = fn
}

// Unbind removes the binding of key.
func (c *Canvas) Unbind(key Key) {
	delete(c.bindings, key)
}

// HandleEvent processes one input event: quit requests, hot keys, wheel zoom
// and finally the active tool.
func (c *Canvas) HandleEvent(ev Event) {
	if ev.isPointer() {
		c.cursor = ev.Pos
	}

	switch ev.Type {
	case EventQuit:
		c.quit = true
		return
	case EventKeyDown:
		if c.QuitKey != KeyUnknown && ev.Key == c.QuitKey {
			c.quit = true
			return
		}
		if fn, ok := c.bindings[ev.Key]; ok {
			fn(c)
			return
		}
	case EventMouseWheel:
		c.view.Zoom(ev.Pos, ev.WheelY)
	}

	next := Transition(c.view, c.tool, ev)
	if next != c.tool {
		c.logTransition(c.tool, next)
		c.tool = next
	}
}

func (c *Canvas) logTransition(from, to Tool) {
	c.log.Debug("tool transition", "from", ToolName(from), "to", ToolName(to))
}

// Step advances view animations by dt seconds and refreshes hover state from
// the cursor.
func (c *Canvas) Step(dt float32) {
	c.view.Update(dt)
	c.view.Step(c.cursor)
	StepTool(c.view, c.tool, c.cursor)
}

// Draw renders the frame: background, grid and axes, the visible elements,
// selection outlines and the tool overlay.
func (c *Canvas) Draw(s Surface) {
	start := time.Now()
	c.screenW, c.screenH = s.Size()
	full := surfaceRect(s)

	s.FillRect(full, c.Style.Background)
	if c.ShowGrid {
		DrawGrid(s, c.world, c.GridBase, c.Style.Grid)
	}
	if c.ShowAxis {
		DrawAxis(s, c.world, c.Style.AxisX, c.Style.AxisY)
	}

	stats := FrameStats{Elements: c.store.Len()}
	visible := c.view.VisibleWorld(c.screenW, c.screenH)
	for _, e := range c.store.Elements() {
		if !visible.Intersects(e.Bounds()) {
			stats.Culled++
			continue
		}
		e.Draw(s, c.world)
		stats.Drawn++
	}

	for _, e := range c.view.Selected() {
		s.StrokeRect(c.world.MapRect(e.Bounds()), 1, c.Style.Selection)
		stats.Selected++
	}

	DrawTool(s, c.world, c.tool, ToolStyle{Hover: c.Style.Hover, Preview: c.Style.Preview})

	stats.DrawTime = time.Since(start)
	c.stats = stats
	c.debugLog(stats)
}

// ResetView animates back to the identity view.
func (c *Canvas) ResetView(duration float32) {
	c.view.AnimateTo(Identity(), duration, ease.OutCubic)
}

// FrameSelection animates the view to fit the selected elements, or every
// element when nothing is selected. It does nothing on an empty scene or
// before the first Draw.
func (c *Canvas) FrameSelection(duration float32) {
	els := c.view.Selected()
	if len(els) == 0 {
		els = c.store.Elements()
	}
	if len(els) == 0 || c.screenW == 0 || c.screenH == 0 {
		return
	}
	r := els[0].Bounds()
	for _, e := range els[1:] {
		r = r.Union(e.Bounds())
	}
	c.view.AnimateTo(c.view.FrameRect(r, c.screenW, c.screenH, 40), duration, ease.OutCubic)
}

// ToggleSelectMode switches between handle and element picking.
func (c *Canvas) ToggleSelectMode() {
	if c.view.Mode == SelectHandles {
		c.view.Mode = SelectElements
	} else {
		c.view.Mode = SelectHandles
	}
	c.log.Debug("select mode", "mode", c.view.Mode)
}
