package scene

import "errors"

var (
	// ErrUnknownEntity is returned when an Entity is not in the World.
	ErrUnknownEntity = errors.New("scene: unknown entity")

	// ErrParentCycle is returned by SetParent when the link would make an
	// entity its own ancestor.
	ErrParentCycle = errors.New("scene: parent cycle")

	// ErrNoCamera is returned when the World has no camera entity.
	ErrNoCamera = errors.New("scene: no camera")

	// ErrEmptyViewport is returned for a viewport with a zero or negative
	// dimension.
	ErrEmptyViewport = errors.New("scene: empty viewport")
)
