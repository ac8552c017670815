package render

import (
	"math"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/metaball/internal/d3"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	_ kdtree.Interface  = kdVertices{}
	_ kdtree.Bounder    = kdVertices{}
	_ kdtree.Comparable = kdVertex{}
)

// VertexIndex is a spatial index over mesh vertices.
type VertexIndex struct {
	tree kdtree.Tree
}

// NewVertexIndex builds a VertexIndex over vertices. Query results
// reference positions in the vertices slice.
func NewVertexIndex(vertices []ms3.Vec) *VertexIndex {
	if len(vertices) == 0 {
		return &VertexIndex{}
	}
	kd := make(kdVertices, len(vertices))
	for i, v := range vertices {
		kd[i] = kdVertex{V: d3.ToR3(v), I: i}
	}
	return &VertexIndex{tree: *kdtree.New(kd, true)}
}

// Len returns the amount of vertices in the index.
func (vi *VertexIndex) Len() int { return vi.tree.Count }

// Nearest returns the index of the vertex closest to p and its distance to p.
// ok is false if the index is empty.
func (vi *VertexIndex) Nearest(p ms3.Vec) (idx int, dist float32, ok bool) {
	if vi.tree.Root == nil {
		return -1, 0, false
	}
	got, d2 := vi.tree.Nearest(kdVertex{V: d3.ToR3(p)})
	return got.(kdVertex).I, float32(math.Sqrt(d2)), true
}

// Within appends to dst the indices of all vertices no further than tol from p.
func (vi *VertexIndex) Within(dst []int, p ms3.Vec, tol float32) []int {
	if vi.tree.Root == nil {
		return dst
	}
	keep := kdtree.NewDistKeeper(float64(tol) * float64(tol))
	vi.tree.NearestSet(keep, kdVertex{V: d3.ToR3(p)})
	for _, c := range keep.Heap {
		if c.Comparable == nil {
			continue // Sentinel.
		}
		dst = append(dst, c.Comparable.(kdVertex).I)
	}
	return dst
}

// Weld merges vertices of m that lie within tol of each other and returns an
// indexed mesh that shares them between triangles. Each welded normal is the
// normalized sum of the normals it replaces. Triangles that collapse because
// two of their corners were merged are dropped.
func Weld(m Mesh, tol float32) Mesh {
	if len(m.Vertices) == 0 {
		return Mesh{}
	}
	if !(tol > 0) {
		tol = 0 // Only merge coincident vertices.
	}
	index := NewVertexIndex(m.Vertices)
	remap := make([]int32, len(m.Vertices))
	for i := range remap {
		remap[i] = -1
	}
	var (
		welded Mesh
		near   []int
	)
	for i, v := range m.Vertices {
		if remap[i] >= 0 {
			continue
		}
		next := int32(len(welded.Vertices))
		var sum ms3.Vec
		near = index.Within(near[:0], v, tol)
		for _, j := range near {
			if remap[j] >= 0 {
				continue
			}
			remap[j] = next
			if j < len(m.Normals) {
				sum = ms3.Add(sum, m.Normals[j])
			}
		}
		if remap[i] < 0 {
			remap[i] = next
		}
		n, ok := d3.Unit(sum)
		if !ok && i < len(m.Normals) {
			n = m.Normals[i]
		}
		welded.Vertices = append(welded.Vertices, v)
		welded.Normals = append(welded.Normals, n)
	}
	for t := 0; t < m.TriangleCount(); t++ {
		a := remap[m.Indices[3*t]]
		b := remap[m.Indices[3*t+1]]
		c := remap[m.Indices[3*t+2]]
		if a == b || b == c || a == c {
			continue
		}
		welded.Indices = append(welded.Indices, uint32(a), uint32(b), uint32(c))
	}
	return welded
}

type kdVertices []kdVertex

type kdVertex struct {
	V r3.Vec
	// I is the position of the vertex in the indexed slice.
	I int
}

func (k kdVertices) Index(i int) kdtree.Comparable {
	return k[i]
}

// Len returns the length of the list.
func (k kdVertices) Len() int { return len(k) }

// Pivot partitions the list based on the dimension specified.
func (k kdVertices) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: int(d), vertices: k}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (k kdVertices) Slice(start, end int) kdtree.Interface {
	return k[start:end]
}

func (k kdVertices) Bounds() *kdtree.Bounding {
	min := r3.Vec{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}
	max := r3.Vec{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64}
	for _, v := range k {
		min = r3.Vec{X: math.Min(min.X, v.V.X), Y: math.Min(min.Y, v.V.Y), Z: math.Min(min.Z, v.V.Z)}
		max = r3.Vec{X: math.Max(max.X, v.V.X), Y: math.Max(max.Y, v.V.Y), Z: math.Max(max.Z, v.V.Z)}
	}
	return &kdtree.Bounding{
		Min: kdVertex{V: min},
		Max: kdVertex{V: max},
	}
}

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
//
// Given c = a.Compare(b, d):
//
//	c = a_d - b_d
func (a kdVertex) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return kdComp(a, b.(kdVertex), int(d))
}

// Dims returns the number of dimensions described in the Comparable.
func (a kdVertex) Dims() int {
	return 3
}

// Distance returns the squared Euclidean distance between the receiver and
// the parameter.
func (a kdVertex) Distance(b kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(a.V, b.(kdVertex).V))
}

// c = a.dim - b.dim
func kdComp(a, b kdVertex, dim int) (c float64) {
	switch dim {
	case 0:
		c = a.V.X - b.V.X
	case 1:
		c = a.V.Y - b.V.Y
	case 2:
		c = a.V.Z - b.V.Z
	}
	return c
}

type kdPlane struct {
	dim      int
	vertices kdVertices
}

func (p kdPlane) Less(i, j int) bool {
	return kdComp(p.vertices[i], p.vertices[j], p.dim) < 0
}
func (p kdPlane) Swap(i, j int) {
	p.vertices[i], p.vertices[j] = p.vertices[j], p.vertices[i]
}
func (p kdPlane) Len() int {
	return len(p.vertices)
}
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.vertices = p.vertices[start:end]
	return p
}
