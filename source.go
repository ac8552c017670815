package metaball

import "github.com/soypat/glgl/math/ms3"

// PositionProvider is implemented by anything with a position in world space,
// such as a scene graph node or an animated particle. Field never modifies
// its providers.
type PositionProvider interface {
	Position() ms3.Vec
}

// Point is a source that never moves.
type Point ms3.Vec

// Position returns the point as a vector.
func (p Point) Position() ms3.Vec { return ms3.Vec(p) }

// PositionFunc adapts an ordinary function to a PositionProvider.
type PositionFunc func() ms3.Vec

// Position calls fn().
func (fn PositionFunc) Position() ms3.Vec { return fn() }

// Points returns a PositionProvider for each of the argument positions.
func Points(positions ...ms3.Vec) []PositionProvider {
	providers := make([]PositionProvider, len(positions))
	for i := range positions {
		providers[i] = Point(positions[i])
	}
	return providers
}
