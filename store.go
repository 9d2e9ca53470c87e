package canvasim

import "fmt"

// Store is the ordered element collection of a scene. Insertion order is draw
// order; hit queries walk it backwards so the most recently added element
// wins.
type Store struct {
	elements []Element
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends e on top of the draw order.
func (s *Store) Add(e Element) {
	s.elements = append(s.elements, e)
}

// Remove deletes the element with the given id, keeping the order of the
// rest. It returns ErrUnknownElement if no such element is stored.
func (s *Store) Remove(id ElementID) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownElement, id)
	}
	copy(s.elements[i:], s.elements[i+1:])
	s.elements[len(s.elements)-1] = nil
	s.elements = s.elements[:len(s.elements)-1]
	return nil
}

// Get returns the element with the given id.
func (s *Store) Get(id ElementID) (Element, bool) {
	i := s.index(id)
	if i < 0 {
		return nil, false
	}
	return s.elements[i], true
}

// Contains reports whether an element with the given id is stored.
func (s *Store) Contains(id ElementID) bool {
	return s.index(id) >= 0
}

// Len returns the number of elements.
func (s *Store) Len() int { return len(s.elements) }

// Elements returns the elements in draw order. The slice is owned by the
// store and must not be modified.
func (s *Store) Elements() []Element { return s.elements }

// Clear removes every element.
func (s *Store) Clear() {
	clear(s.elements)
	s.elements = s.elements[:0]
}

func (s *Store) index(id ElementID) int {
	for i, e := range s.elements {
		if e.ID() == id {
			return i
		}
	}
	return -1
}
