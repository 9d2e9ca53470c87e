package canvasim

import "errors"

var (
	// ErrInvalidScale is returned when a Transform would get a scale that is
	// zero, negative, infinite or NaN.
	ErrInvalidScale = errors.New("canvasim: invalid transform scale")

	// ErrUnknownElement is returned when an element id is not in the store.
	ErrUnknownElement = errors.New("canvasim: unknown element")
)
