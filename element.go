package canvasim

// ElementID uniquely identifies an element for the lifetime of the process.
// Zero is never assigned.
type ElementID uint32

var nextElementID uint32

func newElementID() ElementID {
	nextElementID++
	return ElementID(nextElementID)
}

// Draggable is anything the drag tool can move: a [Handle] or an [Element].
type Draggable interface {
	Position() Vec2
	SetPosition(p Vec2)
}

// Element is a drawable, hit-testable scene object. Implementations are
// TokenElement, SurfaceTile, Polygon and Rectangle.
type Element interface {
	Draggable

	// ID returns the element's identity.
	ID() ElementID
	// Anchor returns the transform describing the element's position in world
	// space. The pointer stays valid for the element's lifetime.
	Anchor() *Transform
	// Handles returns the element's handles in declaration order.
	Handles() []*Handle
	// HitTest reports whether the world point lies on the element.
	HitTest(world Vec2) bool
	// Bounds returns the element's axis-aligned extent in world space.
	Bounds() Rect
	// Draw renders the element through the world transform.
	Draw(s Surface, world Transform)
}

// elementBase carries the identity and anchor shared by every element.
type elementBase struct {
	id     ElementID
	anchor Transform
}

func newElementBase(pos Vec2) elementBase {
	return elementBase{id: newElementID(), anchor: At(pos)}
}

func (b *elementBase) ID() ElementID      { return b.id }
func (b *elementBase) Anchor() *Transform { return &b.anchor }
func (b *elementBase) Position() Vec2     { return b.anchor.Pos }
func (b *elementBase) SetPosition(p Vec2) { b.anchor.Pos = p }
func (b *elementBase) Handles() []*Handle { return nil }
