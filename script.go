package canvasim

import (
	"encoding/json"
	"fmt"
	"strings"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	Key    string  `json:"key,omitempty"`
	Shift  bool    `json:"shift,omitempty"`
	Text   string  `json:"text,omitempty"`
	Button string  `json:"button,omitempty"`

	key    Key
	button MouseButton
}

// script is the top-level JSON structure of an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a scripted sequence of input events into a Canvas,
// one event per frame, for automated runs. Actions are click, drag, wheel,
// key, text, wait, snapshot and quit.
type ScriptRunner struct {
	// OnSnapshot is called for snapshot steps with the step label.
	OnSnapshot func(label string)

	steps     []scriptStep
	cursor    int
	waitCount int
	queue     []Event
	pointer   Vec2
	done      bool
}

// LoadScript parses a JSON input script and returns a runner for it.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i := range sc.Steps {
		if err := sc.Steps[i].validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

func (st *scriptStep) validate() error {
	switch st.Action {
	case "click", "drag":
		b, err := parseButton(st.Button)
		if err != nil {
			return err
		}
		st.button = b
	case "key":
		k, ok := ParseKey(st.Key)
		if !ok {
			return fmt.Errorf("unknown key %q", st.Key)
		}
		st.key = k
	case "wheel", "text", "wait", "snapshot", "quit":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

func parseButton(name string) (MouseButton, error) {
	switch strings.ToLower(name) {
	case "", "left":
		return MouseButtonLeft, nil
	case "right":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	}
	return 0, fmt.Errorf("unknown button %q", name)
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, delivering at most one event to c.
func (r *ScriptRunner) Step(c *Canvas) {
	if r.done {
		return
	}
	defer r.finishIfIdle()

	if r.deliver(c) {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "snapshot":
		if r.OnSnapshot != nil {
			r.OnSnapshot(st.Label)
		}
	case "click":
		p := Vec2{st.X, st.Y}
		r.move(p)
		r.push(MouseDown(st.button, p), MouseUp(st.button, p))
	case "drag":
		r.queueDrag(st)
	case "wheel":
		p := Vec2{st.X, st.Y}
		r.move(p)
		r.push(MouseWheel(p, st.Delta))
	case "key":
		var mods KeyModifiers
		if st.Shift {
			mods |= ModShift
		}
		r.push(KeyDown(st.key, mods), KeyUp(st.key, mods))
	case "text":
		r.push(TextInput(st.Text))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		r.push(Event{Type: EventQuit})
	}
	r.deliver(c)
}

// finishIfIdle marks the runner done once every step ran and nothing is
// queued or pending.
func (r *ScriptRunner) finishIfIdle() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(r.queue) == 0 {
		r.done = true
	}
}

// queueDrag queues a press, frames-2 interpolated moves and a release.
func (r *ScriptRunner) queueDrag(st scriptStep) {
	frames := st.Frames
	if frames < 2 {
		frames = 2
	}
	from, to := Vec2{st.FromX, st.FromY}, Vec2{st.ToX, st.ToY}
	r.move(from)
	r.push(MouseDown(st.button, from))
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		r.move(from.Add(to.Sub(from).Mul(t)))
	}
	r.move(to)
	r.push(MouseUp(st.button, to))
}

// move queues a motion event to p unless the pointer is already there.
func (r *ScriptRunner) move(p Vec2) {
	if p == r.pointer {
		return
	}
	r.push(MouseMotion(p, p.Sub(r.pointer)))
	r.pointer = p
}

func (r *ScriptRunner) push(evs ...Event) {
	r.queue = append(r.queue, evs...)
}

func (r *ScriptRunner) deliver(c *Canvas) bool {
	if len(r.queue) == 0 {
		return false
	}
	ev := r.queue[0]
	copy(r.queue, r.queue[1:])
	r.queue = r.queue[:len(r.queue)-1]
	c.HandleEvent(ev)
	return true
}
