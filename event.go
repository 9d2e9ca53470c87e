package canvasim

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventMouseDown   EventType = iota // a mouse button was pressed
	EventMouseUp                      // a mouse button was released
	EventMouseMotion                  // the pointer moved
	EventMouseWheel                   // the wheel scrolled; WheelY > 0 is away from the user
	EventKeyDown                      // a key was pressed
	EventKeyUp                        // a key was released
	EventTextInput                    // text was typed
	EventQuit                         // the window was asked to close
)

var eventTypeNames = [...]string{
	EventMouseDown:   "mouse-down",
	EventMouseUp:     "mouse-up",
	EventMouseMotion: "mouse-motion",
	EventMouseWheel:  "mouse-wheel",
	EventKeyDown:     "key-down",
	EventKeyUp:       "key-up",
	EventTextInput:   "text-input",
	EventQuit:        "quit",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event is one input event. Which fields are meaningful depends on Type:
// Button and Pos for mouse buttons, Pos and Rel for motion, Pos and WheelY
// for the wheel, Key and Mods for keys, Text for text input.
// All positions are in screen pixels.
type Event struct {
	Type   EventType
	Button MouseButton
	Pos    Vec2
	Rel    Vec2
	WheelY float64
	Key    Key
	Mods   KeyModifiers
	Text   string
}

// MouseDown returns a press event for button at screen position pos.
func MouseDown(button MouseButton, pos Vec2) Event {
	return Event{Type: EventMouseDown, Button: button, Pos: pos}
}

// MouseUp returns a release event for button at screen position pos.
func MouseUp(button MouseButton, pos Vec2) Event {
	return Event{Type: EventMouseUp, Button: button, Pos: pos}
}

// MouseMotion returns a motion event ending at pos after moving by rel.
func MouseMotion(pos, rel Vec2) Event {
	return Event{Type: EventMouseMotion, Pos: pos, Rel: rel}
}

// MouseWheel returns a wheel event at pos.
func MouseWheel(pos Vec2, wheelY float64) Event {
	return Event{Type: EventMouseWheel, Pos: pos, WheelY: wheelY}
}

// KeyDown returns a key press event.
func KeyDown(key Key, mods KeyModifiers) Event {
	return Event{Type: EventKeyDown, Key: key, Mods: mods}
}

// KeyUp returns a key release event.
func KeyUp(key Key, mods KeyModifiers) Event {
	return Event{Type: EventKeyUp, Key: key, Mods: mods}
}

// TextInput returns a text input event.
func TextInput(text string) Event {
	return Event{Type: EventTextInput, Text: text}
}

// isPointer reports whether the event carries a meaningful cursor position.
func (e Event) isPointer() bool {
	switch e.Type {
	case EventMouseDown, EventMouseUp, EventMouseMotion, EventMouseWheel:
		return true
	}
	return false
}
