package canvasim

import (
	"fmt"
	"sort"
)

// Default view animation length in seconds.
const viewAnimDuration = 0.35

// Action is a named canvas command that can be bound to a key.
type Action func(c *Canvas)

// Actions are the built-in commands, by name. Polygons and rectangles are
// drawn in DrawColor.
var Actions = map[string]Action{
	"select": func(c *Canvas) { c.SetTool(NewSelectTool(c.view)) },
	"polygon": func(c *Canvas) {
		c.SetTool(NewPolygonTool(c.view, DrawColor))
	},
	"rectangle": func(c *Canvas) {
		c.SetTool(NewRectangleTool(DrawColor))
	},
	"reset-view": func(c *Canvas) { c.ResetView(viewAnimDuration) },
	"frame":      func(c *Canvas) { c.FrameSelection(viewAnimDuration) },
	"grid": func(c *Canvas) {
		c.ShowGrid = !c.ShowGrid
		c.ShowAxis = c.ShowGrid
	},
	"mode": func(c *Canvas) { c.ToggleSelectMode() },
	"delete": func(c *Canvas) {
		c.view.RemoveSelected()
		c.SetTool(nil)
	},
}

// DrawColor is the color new polygons and rectangles get.
var DrawColor = ColorWhite

// DefaultKeys maps action names to their default key names.
func DefaultKeys() map[string]string {
	return map[string]string{
		"select":     "S",
		"polygon":    "P",
		"rectangle":  "R",
		"reset-view": "H",
		"frame":      "F",
		"grid":       "G",
		"mode":       "M",
	}
}

// BindAction binds the named built-in action to the named key.
func (c *Canvas) BindAction(action, key string) error {
	fn, ok := Actions[action]
	if !ok {
		return fmt.Errorf("bind %q: unknown action", action)
	}
	k, ok := ParseKey(key)
	if !ok {
		return fmt.Errorf("bind %q: unknown key %q", action, key)
	}
	c.Bind(k, fn)
	return nil
}

// BindKeys binds every action in keys, in name order, stopping at the first
// error.
func (c *Canvas) BindKeys(keys map[string]string) error {
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := c.BindAction(name, keys[name]); err != nil {
			return err
		}
	}
	return nil
}
