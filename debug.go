package canvasim

import "time"

// FrameStats holds per-frame counters from the last Canvas.Draw.
type FrameStats struct {
	Elements int
	Drawn    int
	Culled   int
	Selected int
	DrawTime time.Duration
}

// debugLog reports frame stats at debug level. Only called when the canvas
// is in debug mode.
func (c *Canvas) debugLog(stats FrameStats) {
	if !c.debug {
		return
	}
	c.log.Debug("frame",
		"elements", stats.Elements,
		"drawn", stats.Drawn,
		"culled", stats.Culled,
		"selected", stats.Selected,
		"draw", stats.DrawTime,
		"scale", c.world.Scale,
		"tool", ToolName(c.tool),
	)
}

// debugWarnElementCount warns once the scene grows past a size where the
// linear hit scan starts to show.
const debugMaxElements = 5000

func (c *Canvas) debugCheckElementCount() {
	if c.debug && c.store.Len() == debugMaxElements+1 {
		c.log.Warn("element count exceeds threshold", "count", c.store.Len(), "threshold", debugMaxElements)
	}
}
