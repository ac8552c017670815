package render

import (
	"io"

	"github.com/soypat/glgl/math/ms3"
)

// Mesh is an unwelded triangle mesh. Vertices and Normals are index aligned.
// Indices holds three entries per triangle that reference Vertices in
// emission order, so Indices[i] == i for meshes produced by an Extractor.
type Mesh struct {
	Vertices []ms3.Vec
	Normals  []ms3.Vec
	Indices  []uint32
}

// TriangleCount returns the amount of triangles in the mesh.
func (m Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Triangle returns the ith triangle of the mesh.
func (m Mesh) Triangle(i int) ms3.Triangle {
	idx := m.Indices[3*i : 3*i+3]
	return ms3.Triangle{m.Vertices[idx[0]], m.Vertices[idx[1]], m.Vertices[idx[2]]}
}

// Clone returns a deep copy of the mesh.
func (m Mesh) Clone() Mesh {
	return Mesh{
		Vertices: append([]ms3.Vec(nil), m.Vertices...),
		Normals:  append([]ms3.Vec(nil), m.Normals...),
		Indices:  append([]uint32(nil), m.Indices...),
	}
}

// Flip reverses the winding of every triangle and negates every normal in place.
// Extracted meshes face the positive side of the field; a flipped metaball
// mesh faces away from its sources, as mesh file formats expect.
func (m Mesh) Flip() {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		m.Indices[i+1], m.Indices[i+2] = m.Indices[i+2], m.Indices[i+1]
	}
	for i, n := range m.Normals {
		m.Normals[i] = ms3.Scale(-1, n)
	}
}

// Reader returns a Renderer that streams the triangles of the mesh.
func (m Mesh) Reader() Renderer {
	return &meshReader{mesh: m}
}

type meshReader struct {
	mesh Mesh
	next int
}

func (r *meshReader) ReadTriangles(dst []ms3.Triangle) (n int, err error) {
	if len(dst) == 0 {
		return 0, io.ErrShortBuffer
	}
	total := r.mesh.TriangleCount()
	for n < len(dst) && r.next < total {
		dst[n] = r.mesh.Triangle(r.next)
		r.next++
		n++
	}
	if r.next == total {
		return n, io.EOF
	}
	return n, nil
}

// MeshBuffer is a MeshSink that keeps a private copy of the last mesh it received.
type MeshBuffer struct {
	Mesh
	// Updates counts calls to SetMesh.
	Updates int
}

var _ MeshSink = (*MeshBuffer)(nil)

// SetMesh replaces the buffered mesh with a copy of the arguments.
func (b *MeshBuffer) SetMesh(vertices, normals []ms3.Vec, indices []uint32) {
	b.Vertices = append(b.Vertices[:0], vertices...)
	b.Normals = append(b.Normals[:0], normals...)
	b.Indices = append(b.Indices[:0], indices...)
	b.Updates++
}

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like the io.RenderAll implementation.
func RenderAll(r Renderer) ([]ms3.Triangle, error) {
	var err error
	var nt int
	result := make([]ms3.Triangle, 0, 1024)
	buf := make([]ms3.Triangle, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}
