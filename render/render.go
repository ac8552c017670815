// Package render extracts triangle meshes from scalar fields using the
// marching cubes algorithm over a dense lattice.
package render

import (
	"github.com/soypat/glgl/math/ms3"
)

// Field is a scalar field sampled by the Extractor. Its zero level set is the
// extracted surface. F must be a pure function of position for the duration
// of a call to Extract.
type Field interface {
	F(p ms3.Vec) float32
}

// BatchField is a Field that can evaluate many positions per call. Extract
// samples such fields one lattice row at a time. Evaluate must store F(pos[i])
// in dist[i]. userData is passed as nil.
type BatchField interface {
	Field
	Evaluate(pos []ms3.Vec, dist []float32, userData any) error
}

// GradientField is a Field with a closed form gradient, used by the Analytic
// normal method.
type GradientField interface {
	Field
	Gradient(p ms3.Vec) ms3.Vec
}

// Renderer streams triangles. ReadTriangles returns io.EOF once there are
// no more triangles to read.
type Renderer interface {
	ReadTriangles(dst []ms3.Triangle) (int, error)
}

// MeshSink consumes a finished frame. The rendering collaborator implements it.
// SetMesh replaces any previous mesh held by the sink. The slices are only
// valid for the duration of the call and must be copied if retained.
type MeshSink interface {
	SetMesh(vertices, normals []ms3.Vec, indices []uint32)
}
