package canvasim

// Tool is the active interpretation of pointer and keyboard input. The set of
// tools is closed: *SelectTool, *DragTool, *HandTool, *PolygonTool and
// *RectangleTool. A transition replaces the tool value; an event a tool does
// not handle leaves the very same pointer in place.
type Tool interface {
	isTool()
}

// SelectTool is the idle tool. It tracks what is under the cursor and starts
// drags and pans.
type SelectTool struct {
	// Hovered is the handle or element under the cursor as of the last step,
	// depending on the viewport's select mode.
	Hovered Draggable
}

// DragTool moves Target with the pointer, keeping the offset captured when
// the drag started. When Target moves its whole element, the rest of the
// selection in Group follows at fixed offsets from that element.
type DragTool struct {
	Target Draggable
	Owner  ElementID
	Offset Vec2
	Group  []GroupMember
}

// GroupMember is a selected element carried along by a drag, Offset away
// from the dragged element's position.
type GroupMember struct {
	Element Element
	Offset  Vec2
}

// HandTool pans the view while the button is held. Moved accumulates the
// screen distance panned so far.
type HandTool struct {
	Moved Vec2
}

// PolygonTool adds a point to Polygon on every click until Enter commits it.
type PolygonTool struct {
	Polygon *Polygon
	// Cursor is the last screen position of the pointer, for the closing
	// preview.
	Cursor Vec2
}

// RectangleTool draws rectangles by dragging from one corner to the other.
// Start and End are world positions of the band being dragged.
type RectangleTool struct {
	Color      Color
	Start, End Vec2
	Active     bool
}

func (*SelectTool) isTool()    {}
func (*DragTool) isTool()      {}
func (*HandTool) isTool()      {}
func (*PolygonTool) isTool()   {}
func (*RectangleTool) isTool() {}

// NewSelectTool returns the idle tool.
func NewSelectTool(*Viewport) Tool { return &SelectTool{} }

// NewPolygonTool inserts an empty polygon into the viewport's store right
// away, so it is visible while being built, and returns a tool adding points
// to it.
func NewPolygonTool(v *Viewport, c Color) *PolygonTool {
	p := NewPolygon(c)
	v.Store().Add(p)
	return &PolygonTool{Polygon: p}
}

// NewRectangleTool returns a tool drawing rectangles of color c.
func NewRectangleTool(c Color) *RectangleTool {
	return &RectangleTool{Color: c}
}

// Transition feeds ev to tool and returns the tool active afterwards. It is
// total: an event the tool has no use for returns tool itself.
func Transition(v *Viewport, tool Tool, ev Event) Tool {
	switch t := tool.(type) {
	case *SelectTool:
		return selectTransition(v, t, ev)
	case *DragTool:
		return dragTransition(v, t, ev)
	case *HandTool:
		return handTransition(v, t, ev)
	case *PolygonTool:
		return polygonTransition(v, t, ev)
	case *RectangleTool:
		return rectangleTransition(v, t, ev)
	}
	return tool
}

func isLeft(ev Event, typ EventType) bool {
	return ev.Type == typ && ev.Button == MouseButtonLeft
}

func isCommitKey(ev Event) bool {
	return ev.Type == EventKeyDown && (ev.Key == KeyEnter || ev.Key == KeyKPEnter)
}

func selectTransition(v *Viewport, t *SelectTool, ev Event) Tool {
	switch {
	case isLeft(ev, EventMouseDown):
		additive := ev.Mods&ModShift != 0
		if t.Hovered == nil {
			if !additive {
				v.ClearSelection()
			}
			return &HandTool{}
		}
		owner := ownerOf(t.Hovered)
		if additive || !v.IsSelected(owner) {
			_ = v.Select(owner, additive)
		}
		world := v.ScreenToWorld(ev.Pos)
		return &DragTool{
			Target: t.Hovered,
			Owner:  owner,
			Offset: world.Sub(t.Hovered.Position()),
			Group:  dragGroup(v, t.Hovered, owner),
		}
	case ev.Type == EventKeyDown && (ev.Key == KeyDelete || ev.Key == KeyBackspace):
		if v.RemoveSelected() == 0 {
			return t
		}
		return &SelectTool{}
	}
	return t
}

func ownerOf(d Draggable) ElementID {
	switch d := d.(type) {
	case *Handle:
		return d.Owner
	case Element:
		return d.ID()
	}
	return 0
}

// dragGroup captures the other selected elements when d moves the whole of
// its owner: d is the element itself, or the only handle of it.
func dragGroup(v *Viewport, d Draggable, owner ElementID) []GroupMember {
	main, ok := v.Store().Get(owner)
	if !ok {
		return nil
	}
	switch d := d.(type) {
	case *Handle:
		if len(main.Handles()) != 1 {
			return nil
		}
	case Element:
		if d.ID() != owner {
			return nil
		}
	default:
		return nil
	}
	var group []GroupMember
	for _, e := range v.Selected() {
		if e.ID() == owner {
			continue
		}
		group = append(group, GroupMember{Element: e, Offset: e.Position().Sub(main.Position())})
	}
	return group
}

func dragTransition(v *Viewport, t *DragTool, ev Event) Tool {
	switch {
	case ev.Type == EventMouseMotion:
		t.Target.SetPosition(v.ScreenToWorld(ev.Pos).Sub(t.Offset))
		if len(t.Group) > 0 {
			if main, ok := v.Store().Get(t.Owner); ok {
				for _, m := range t.Group {
					m.Element.SetPosition(main.Position().Add(m.Offset))
				}
			}
		}
		return t
	case isLeft(ev, EventMouseUp):
		return &SelectTool{}
	}
	return t
}

func handTransition(v *Viewport, t *HandTool, ev Event) Tool {
	switch {
	case ev.Type == EventMouseMotion:
		v.Pan(ev.Rel)
		t.Moved = t.Moved.Add(ev.Rel)
		return t
	case isLeft(ev, EventMouseUp):
		return &SelectTool{}
	}
	return t
}

func polygonTransition(v *Viewport, t *PolygonTool, ev Event) Tool {
	switch {
	case isLeft(ev, EventMouseDown):
		t.Polygon.AddPoint(v.ScreenToWorld(ev.Pos))
		return t
	case isCommitKey(ev):
		return &SelectTool{}
	}
	return t
}

func rectangleTransition(v *Viewport, t *RectangleTool, ev Event) Tool {
	switch {
	case isLeft(ev, EventMouseDown):
		w := v.ScreenToWorld(ev.Pos)
		t.Start, t.End, t.Active = w, w, true
		return t
	case ev.Type == EventMouseMotion && t.Active:
		t.End = v.ScreenToWorld(ev.Pos)
		return t
	case isLeft(ev, EventMouseUp) && t.Active:
		t.End = v.ScreenToWorld(ev.Pos)
		t.Active = false
		if r := RectFromCorners(t.Start, t.End); r.Width > 0 && r.Height > 0 {
			v.Store().Add(NewRectangle(t.Color, t.Start, t.End))
		}
		return t
	case isCommitKey(ev):
		return &SelectTool{}
	}
	return t
}

// StepTool runs the per-frame update of the active tool. cursor is the
// pointer's screen position; the viewport must already have been stepped.
func StepTool(v *Viewport, tool Tool, cursor Vec2) {
	switch t := tool.(type) {
	case *SelectTool:
		t.Hovered = nil
		if v.Mode == SelectElements {
			if e := v.HoveredElement(); e != nil {
				t.Hovered = e
			}
		} else if h := v.HoveredHandle(); h != nil {
			t.Hovered = h
		}
	case *PolygonTool:
		t.Cursor = cursor
	}
}

// ToolStyle holds the overlay colors used by DrawTool.
type ToolStyle struct {
	Hover   Color
	Preview Color
}

// DrawTool renders the overlay of the active tool on top of the scene.
func DrawTool(s Surface, world Transform, tool Tool, style ToolStyle) {
	switch t := tool.(type) {
	case *SelectTool:
		if h, ok := t.Hovered.(*Handle); ok {
			h.Draw(s, world, style.Hover)
		}
	case *PolygonTool:
		n := t.Polygon.Len()
		if n == 0 {
			return
		}
		pts := t.Polygon.Points()
		s.StrokePolygon([]Vec2{
			world.MapPoint(pts[n-1]),
			world.MapPoint(pts[0]),
			t.Cursor,
		}, 1, style.Preview)
	case *RectangleTool:
		if t.Active {
			s.StrokeRect(world.MapRect(RectFromCorners(t.Start, t.End)), 1, style.Preview)
		}
	}
}

// ToolName returns a short lowercase name for logging.
func ToolName(tool Tool) string {
	switch tool.(type) {
	case *SelectTool:
		return "select"
	case *DragTool:
		return "drag"
	case *HandTool:
		return "hand"
	case *PolygonTool:
		return "polygon"
	case *RectangleTool:
		return "rectangle"
	}
	return "unknown"
}
