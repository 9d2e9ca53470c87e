// Package canvasim is a 2D world-canvas editor core: a pan and zoom viewport
// over a scene of selectable, draggable elements, with polygon and rectangle
// drawing tools.
//
// The package has no window or GPU dependency. Input arrives as [Event]
// values and frames are drawn onto any [Surface]. The ebitenrun package runs
// a [Canvas] in an [Ebitengine] window; the raster package renders it into
// an image.RGBA.
//
// # Quick start
//
//	c := canvasim.NewCanvas()
//	c.AddElement(canvasim.NewRectangle(canvasim.RGB8(80, 160, 255),
//		canvasim.Vec2{X: 100, Y: 100}, canvasim.Vec2{X: 300, Y: 200}))
//	_ = c.BindKeys(canvasim.DefaultKeys())
//	ebitenrun.Run(c, ebitenrun.RunConfig{Title: "canvas", Width: 1280, Height: 720})
//
// Driving a canvas by hand is three calls per frame:
//
//	for _, ev := range events {
//		c.HandleEvent(ev)
//	}
//	c.Step(dt)
//	c.Draw(surface)
//
// # Coordinates
//
// World space is unbounded; screen space is surface pixels with Y down. The
// world [Transform] of a [Viewport] maps between them: Pos is the world point
// at the top-left pixel and Scale is pixels per world unit.
//
//	screen := view.WorldToScreen(world)
//	world  := view.ScreenToWorld(screen)
//
// # Elements
//
// Scene objects implement [Element]: [TokenElement] (an image centred on a
// point), [SurfaceTile] (a large background image drawn through a cached
// visible region), [Polygon] and [Rectangle]. Elements own their [Handle]
// values; a handle refers back to its element by [ElementID] only.
//
// # Tools
//
// The active [Tool] is one of [SelectTool], [DragTool], [HandTool],
// [PolygonTool] and [RectangleTool]. [Transition] maps the current tool and
// an event to the next tool. Hot keys bound with [Canvas.AssignTool] replace
// the tool directly.
//
// [Ebitengine]: https://ebitengine.org
package canvasim
