package canvasim

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newLoggedCanvas(buf *bytes.Buffer) *Canvas {
	c := NewCanvas()
	c.SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return c
}

func TestDebugModeLogsFrameStats(t *testing.T) {
	var buf bytes.Buffer
	c := newLoggedCanvas(&buf)
	c.AddElement(NewRectangle(ColorWhite, Vec2{}, Vec2{10, 10}))

	c.Draw(newRecorder(100, 100))
	if strings.Contains(buf.String(), "msg=frame") {
		t.Fatal("frame stats logged with debug mode off")
	}

	c.SetDebug(true)
	c.Draw(newRecorder(100, 100))
	out := buf.String()
	for _, want := range []string{"msg=frame", "elements=1", "drawn=1", "culled=0", "tool=select"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestToolTransitionsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	c := newLoggedCanvas(&buf)
	c.HandleEvent(MouseDown(MouseButtonLeft, Vec2{5, 5}))
	if !strings.Contains(buf.String(), "from=select to=hand") {
		t.Errorf("expected a select to hand transition in:\n%s", buf.String())
	}
}

func TestDebugElementCountWarning(t *testing.T) {
	var buf bytes.Buffer
	c := newLoggedCanvas(&buf)
	c.SetDebug(true)
	for range debugMaxElements + 1 {
		c.store.Add(NewPolygon(ColorWhite))
	}
	_ = c.store.Remove(c.store.Elements()[0].ID())
	c.AddElement(NewPolygon(ColorWhite))
	if !strings.Contains(buf.String(), "element count exceeds threshold") {
		t.Error("expected a warning past the element threshold")
	}
}
